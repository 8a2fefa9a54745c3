// Package trend fits overlay models to scatter data by
// Levenberg-Marquardt with numerical Jacobians.
package trend

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// Params holds fitted Lorentzian parameters. Width is the FWHM:
//
//	y = ¼·Amp·Width² / ((x−Center)² + ¼·Width²) + Offset
type Params struct {
	Amp    float64
	Width  float64
	Center float64
	Offset float64
}

// Eval returns the model value at x.
func (p Params) Eval(x float64) float64 {
	return .25*p.Amp*math.Pow(p.Width, 2)/(math.Pow(x-p.Center, 2)+.25*math.Pow(p.Width, 2)) + p.Offset
}

// Lorentzian fits the four-parameter FWHM Lorentzian to the points.
// init seeds the solver as amplitude, width, center, offset; the fitted
// width is reported positive whichever sign the solver lands on.
func Lorentzian(xs, ys []float64, init [4]float64) (Params, error) {
	if len(xs) != len(ys) {
		return Params{}, fmt.Errorf("trend: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) < 4 {
		return Params{}, fmt.Errorf("trend: need at least 4 points for a Lorentzian, got %d", len(xs))
	}

	f := func(dst, guess []float64) {
		amp, wid, cen, c := guess[0], guess[1], guess[2], guess[3]
		for i := range xs {
			dst[i] = .25*amp*math.Pow(wid, 2)/(math.Pow(xs[i]-cen, 2)+(.25*math.Pow(wid, 2))) + c - ys[i]
		}
	}

	jacobian := lm.NumJac{Func: f}

	problem := lm.LMProblem{
		Dim:        4,
		Size:       len(xs),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: init[:],
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return Params{}, fmt.Errorf("trend: lorentzian fit: %w", err)
	}

	return Params{
		Amp:    results.X[0],
		Width:  math.Abs(results.X[1]),
		Center: results.X[2],
		Offset: results.X[3],
	}, nil
}

// PowerLaw fits y = a·x^b. A linear regression of log y on log x seeds
// the solver, then Levenberg-Marquardt refines both parameters against
// the untransformed residuals. Every point must have x > 0 and y > 0.
func PowerLaw(xs, ys []float64) (a, b float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("trend: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("trend: need at least 2 points for a power law, got %d", len(xs))
	}

	logx := make([]float64, len(xs))
	logy := make([]float64, len(ys))
	for i := range xs {
		if xs[i] <= 0 || ys[i] <= 0 {
			return 0, 0, fmt.Errorf("trend: power law needs positive data, got (%g, %g)", xs[i], ys[i])
		}
		logx[i] = math.Log(xs[i])
		logy[i] = math.Log(ys[i])
	}

	alpha, beta := stat.LinearRegression(logx, logy, nil, false)

	f := func(dst, guess []float64) {
		a, b := guess[0], guess[1]
		for i := range xs {
			dst[i] = a*math.Pow(xs[i], b) - ys[i]
		}
	}

	jacobian := lm.NumJac{Func: f}

	problem := lm.LMProblem{
		Dim:        2,
		Size:       len(xs),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: []float64{math.Exp(alpha), beta},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return 0, 0, fmt.Errorf("trend: power law fit: %w", err)
	}

	return results.X[0], results.X[1], nil
}

// Curve samples f at n evenly spaced points over [x0, x1], ready to
// draw as a fitted line. n below 2 is raised to 2.
func Curve(f func(x float64) float64, x0, x1 float64, n int) plotter.XYs {
	n = max(2, n)
	xys := make(plotter.XYs, n)
	for i, x := range floats.Span(make([]float64, n), x0, x1) {
		xys[i] = plotter.XY{X: x, Y: f(x)}
	}
	return xys
}
