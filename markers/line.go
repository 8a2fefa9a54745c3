package markers

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultDensity is the marker sampling rate of a Line, in markers per
// unit of arc length.
const DefaultDensity = 10

// Series style fallbacks: the matplotlib default cycle's first blue and
// a 2 point radius.
var (
	DefaultColor = color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	DefaultSize  = vg.Points(2)
)

// Mode selects how the marker series divide the points among
// themselves.
type Mode int

const (
	// Single interleaves the series point by point.
	Single Mode = iota
	// GroupStart splits the points into one contiguous run per
	// series, the leading runs taking any remainder.
	GroupStart
	// GroupEnd splits into contiguous runs with the trailing runs
	// taking the remainder.
	GroupEnd
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case GroupStart:
		return "group-start"
	case GroupEnd:
		return "group-end"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m == Single || m == GroupStart || m == GroupEnd
}

// indices returns the point indices series i of n owns under m.
func (m Mode) indices(total, n, i int) []int {
	switch m {
	case Single:
		idx := make([]int, 0, total/n+1)
		for j := i; j < total; j += n {
			idx = append(idx, j)
		}
		return idx
	case GroupStart:
		base, rem := total/n, total%n
		start := i*base + min(i, rem)
		end := start + base
		if i < rem {
			end++
		}
		return spanIdx(start, end)
	case GroupEnd:
		base, rem := total/n, total%n
		start := i*base + max(0, i-(n-rem))
		end := start + base
		if i >= n-rem {
			end++
		}
		return spanIdx(start, end)
	}
	return nil
}

func spanIdx(start, end int) []int {
	idx := make([]int, 0, max(0, end-start))
	for j := start; j < end; j++ {
		idx = append(idx, j)
	}
	return idx
}

// Resample spreads points evenly along the polyline (xs, ys), density
// samples per unit of arc length and at least two. A two-point input
// resamples the straight segment; longer polylines are respaced by
// normalized cumulative arc length.
func Resample(xs, ys []float64, density float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("markers: x and y must have the same length, got %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, nil, fmt.Errorf("markers: need at least 2 points, got %d", len(xs))
	}
	if density <= 0 {
		density = DefaultDensity
	}

	if len(xs) == 2 {
		length := math.Hypot(xs[1]-xs[0], ys[1]-ys[0])
		n := max(2, int(density*length))
		return floats.Span(make([]float64, n), xs[0], xs[1]),
			floats.Span(make([]float64, n), ys[0], ys[1]), nil
	}

	// Normalized cumulative arc length.
	ts := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		ts[i] = ts[i-1] + math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
	}
	total := ts[len(ts)-1]
	if total == 0 {
		// Every vertex coincides; there is no length to spread over.
		return []float64{xs[0], xs[0]}, []float64{ys[0], ys[0]}, nil
	}
	floats.Scale(1/total, ts)

	// The interpolators need strictly increasing knots, so zero-length
	// segments collapse onto their first vertex.
	kt := make([]float64, 0, len(ts))
	kx := make([]float64, 0, len(ts))
	ky := make([]float64, 0, len(ts))
	for i := range ts {
		if i > 0 && ts[i] == ts[i-1] {
			continue
		}
		kt = append(kt, ts[i])
		kx = append(kx, xs[i])
		ky = append(ky, ys[i])
	}

	var ix, iy interp.PiecewiseLinear
	if err := ix.Fit(kt, kx); err != nil {
		return nil, nil, fmt.Errorf("markers: %w", err)
	}
	if err := iy.Fit(kt, ky); err != nil {
		return nil, nil, fmt.Errorf("markers: %w", err)
	}

	n := max(2, int(total*density))
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i, t := range floats.Span(make([]float64, n), 0, 1) {
		rx[i] = ix.Predict(t)
		ry[i] = iy.Predict(t)
	}
	return rx, ry, nil
}

// SeriesStyle styles the marker series of a Line. Slices cycle when a
// series index runs past their length; empty slices fall back to the
// package defaults (filled circle, DefaultSize, DefaultColor). The
// number of series is the length of the longest slice.
type SeriesStyle struct {
	Shapes []draw.GlyphDrawer
	Sizes  []vg.Length
	Colors []color.Color

	// Every thins a series to every k-th of its points.
	Every []int
}

func (s SeriesStyle) series() int {
	n := max(len(s.Shapes), len(s.Sizes), len(s.Colors), len(s.Every))
	if n == 0 {
		return 1
	}
	return n
}

func (s SeriesStyle) glyph(i int) draw.GlyphStyle {
	g := draw.GlyphStyle{
		Shape:  draw.CircleGlyph{},
		Radius: DefaultSize,
		Color:  DefaultColor,
	}
	if len(s.Shapes) > 0 {
		g.Shape = s.Shapes[i%len(s.Shapes)]
	}
	if len(s.Sizes) > 0 {
		g.Radius = s.Sizes[i%len(s.Sizes)]
	}
	if len(s.Colors) > 0 {
		g.Color = s.Colors[i%len(s.Colors)]
	}
	return g
}

func (s SeriesStyle) every(i int) int {
	if len(s.Every) == 0 {
		return 1
	}
	k := s.Every[i%len(s.Every)]
	if k < 1 {
		return 1
	}
	return k
}

// LineConfig controls Line.
type LineConfig struct {
	// Density is the sampling rate along the polyline, in markers per
	// unit of arc length. Zero means DefaultDensity.
	Density float64

	// Mode distributes the sampled points among the series.
	Mode Mode

	// SeriesStyle styles the marker series.
	SeriesStyle

	// LineStyle, when set, also strokes the resampled polyline.
	LineStyle *draw.LineStyle

	// Points, when set, overlays further marker series on the
	// original vertices instead of the resampled run.
	Points *PointOverlay
}

// PointOverlay styles the vertex overlay of a marker line.
type PointOverlay struct {
	Mode Mode
	SeriesStyle
}

// Line lays repeating marker series along the polyline (xs, ys): the
// points are respaced evenly by arc length, divided among the series,
// and returned as one scatter per series ready to add to a plot.
func Line(xs, ys []float64, cfg LineConfig) ([]plot.Plotter, error) {
	if !cfg.Mode.valid() {
		return nil, fmt.Errorf("markers: mode must be one of single, group-start, group-end; got %v", cfg.Mode)
	}
	if cfg.Points != nil && !cfg.Points.Mode.valid() {
		return nil, fmt.Errorf("markers: point mode must be one of single, group-start, group-end; got %v", cfg.Points.Mode)
	}

	rx, ry, err := Resample(xs, ys, cfg.Density)
	if err != nil {
		return nil, err
	}

	var out []plot.Plotter
	if cfg.LineStyle != nil {
		xy := make(plotter.XYs, len(rx))
		for i := range rx {
			xy[i] = plotter.XY{X: rx[i], Y: ry[i]}
		}
		ln, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("markers: %w", err)
		}
		ln.LineStyle = *cfg.LineStyle
		out = append(out, ln)
	}

	series, err := scatters(rx, ry, cfg.Mode, cfg.SeriesStyle)
	if err != nil {
		return nil, err
	}
	out = append(out, series...)

	if cfg.Points != nil {
		overlay, err := scatters(xs, ys, cfg.Points.Mode, cfg.Points.SeriesStyle)
		if err != nil {
			return nil, err
		}
		out = append(out, overlay...)
	}
	return out, nil
}

func scatters(xs, ys []float64, mode Mode, sty SeriesStyle) ([]plot.Plotter, error) {
	n := sty.series()
	out := make([]plot.Plotter, 0, n)
	for i := 0; i < n; i++ {
		idx := mode.indices(len(xs), n, i)
		if k := sty.every(i); k > 1 {
			kept := idx[:0]
			for j := 0; j < len(idx); j += k {
				kept = append(kept, idx[j])
			}
			idx = kept
		}
		pts := make(plotter.XYs, len(idx))
		for j, id := range idx {
			pts[j] = plotter.XY{X: xs[id], Y: ys[id]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("markers: %w", err)
		}
		sc.GlyphStyle = sty.glyph(i)
		out = append(out, sc)
	}
	return out, nil
}
