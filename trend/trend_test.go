package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestParamsEval(t *testing.T) {
	p := Params{Amp: 2, Width: 1, Center: 0, Offset: 0.5}

	assert.InDelta(t, 2.5, p.Eval(0), 1e-12)
	// Half maximum above the offset at Center ± Width/2.
	assert.InDelta(t, 1.5, p.Eval(0.5), 1e-12)
	assert.InDelta(t, 1.5, p.Eval(-0.5), 1e-12)
}

func TestLorentzianRecoversParams(t *testing.T) {
	truth := Params{Amp: 2, Width: 0.5, Center: 3, Offset: 0.1}

	xs := floats.Span(make([]float64, 101), 1, 5)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = truth.Eval(x)
	}

	got, err := Lorentzian(xs, ys, [4]float64{1.5, 0.8, 2.8, 0})
	require.NoError(t, err)

	assert.InDelta(t, truth.Amp, got.Amp, 1e-3)
	assert.InDelta(t, truth.Width, got.Width, 1e-3)
	assert.InDelta(t, truth.Center, got.Center, 1e-3)
	assert.InDelta(t, truth.Offset, got.Offset, 1e-3)
}

func TestLorentzianWidthPositive(t *testing.T) {
	truth := Params{Amp: 1, Width: 0.4, Center: 0, Offset: 0}

	xs := floats.Span(make([]float64, 81), -2, 2)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = truth.Eval(x)
	}

	// The model is even in the width, so a negative seed converges to
	// the negative root; the fit still reports the width positive.
	got, err := Lorentzian(xs, ys, [4]float64{1, -0.5, 0.1, 0})
	require.NoError(t, err)
	assert.Greater(t, got.Width, 0.0)
	assert.InDelta(t, truth.Width, got.Width, 1e-3)
}

func TestLorentzianErrors(t *testing.T) {
	_, err := Lorentzian([]float64{1, 2, 3}, []float64{1, 2}, [4]float64{})
	require.Error(t, err)

	_, err = Lorentzian([]float64{1, 2, 3}, []float64{1, 2, 3}, [4]float64{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 4 points")
}

func TestPowerLawExact(t *testing.T) {
	xs := []float64{0.5, 1, 2, 4, 8, 16}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 * math.Pow(x, 1.5)
	}

	a, b, err := PowerLaw(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 3, a, 1e-6)
	assert.InDelta(t, 1.5, b, 1e-6)
}

func TestPowerLawErrors(t *testing.T) {
	_, _, err := PowerLaw([]float64{1, 2}, []float64{1})
	require.Error(t, err)

	_, _, err = PowerLaw([]float64{1}, []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 points")

	_, _, err = PowerLaw([]float64{0, 1}, []float64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	_, _, err = PowerLaw([]float64{1, 2}, []float64{1, -2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestCurve(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }

	xys := Curve(f, 0, 10, 11)
	require.Len(t, xys, 11)
	assert.Equal(t, 0.0, xys[0].X)
	assert.Equal(t, 1.0, xys[0].Y)
	assert.Equal(t, 10.0, xys[10].X)
	assert.Equal(t, 21.0, xys[10].Y)
	for i, xy := range xys {
		assert.InDelta(t, float64(i), xy.X, 1e-12)
		assert.InDelta(t, 2*float64(i)+1, xy.Y, 1e-12)
	}

	assert.Len(t, Curve(f, 0, 1, 0), 2)
	assert.Len(t, Curve(f, 0, 1, 1), 2)
}
