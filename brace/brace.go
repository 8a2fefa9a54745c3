// Package brace builds annotated curly braces between two points of a
// 2D plot, after the MATLAB curlyBrace annotation: four quarter-circle
// arcs joined by two straight runs, with an optional label at the
// summit.
//
// Geometry is laid out in drawing-surface dots so a brace keeps its
// proportions whatever the data aspect ratio, then mapped back to data
// coordinates. Logarithmic axes go through a signed log transform on
// the way in and out.
package brace

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Defaults applied where the corresponding Config or Label field is
// left zero.
const (
	DefaultCurvature = 0.1
	DefaultSamples   = 50
	DefaultLabelPad  = 2
)

// ErrViewport reports a viewport no geometry can be laid out in.
var ErrViewport = errors.New("brace: invalid viewport")

// Point is a location in data coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// AxisScale selects the coordinate transform of one axis.
type AxisScale int

const (
	Linear AxisScale = iota
	Log
)

func (s AxisScale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	}
	return fmt.Sprintf("AxisScale(%d)", int(s))
}

// Forward maps a data value onto the working scale. Linear axes pass
// values through. Log axes apply a signed log: ln(v) for positive v,
// -ln(|v|) for negative v, and zero stays zero. The signed log only
// inverts cleanly for v == 0 or |v| >= 1.
func (s AxisScale) Forward(v float64) float64 {
	if s != Log {
		return v
	}
	switch {
	case v > 0:
		return math.Log(v)
	case v < 0:
		return -math.Log(-v)
	}
	return 0
}

// Inverse maps a working-scale value back to data units, undoing
// Forward.
func (s AxisScale) Inverse(v float64) float64 {
	if s != Log {
		return v
	}
	switch {
	case v > 0:
		return math.Exp(v)
	case v < 0:
		return -math.Exp(-v)
	}
	return 0
}

// Scales holds the per-axis transforms in effect on the target axes.
type Scales struct {
	X, Y AxisScale
}

// Viewport is the drawing area a brace is laid out against: the data
// limits of the axes and their rendered size in dots.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      float64
	Height     float64
}

// Validate returns ErrViewport when v has no usable area.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %g by %g dots", ErrViewport, v.Width, v.Height)
	}
	if v.XMax == v.XMin || v.YMax == v.YMin {
		return fmt.Errorf("%w: empty axis range", ErrViewport)
	}
	return nil
}

// Config controls brace construction.
type Config struct {
	// Curvature sets the arc radius as a fraction of the endpoint
	// distance. Zero means DefaultCurvature. Negative values bow the
	// brace to the other side of the p1-p2 line.
	Curvature float64

	// Scales are the axis transforms of the target axes.
	Scales Scales

	// Samples is the number of points per arc. Values below 2 mean
	// DefaultSamples.
	Samples int

	// EqualAspect skips the dot normalization. Set it when the target
	// axes are drawn with an equal aspect ratio.
	EqualAspect bool
}

// Geometry is a computed brace. The outline runs continuously from p1
// to p2 in the order Arcs[0], Seg1, Arcs[1], Arcs[2], Seg2, Arcs[3],
// with the summit at the join of the two middle arcs.
type Geometry struct {
	Arcs   [4][]Point
	Seg1   [2]Point
	Seg2   [2]Point
	Angle  float64 // orientation on the drawing surface, radians
	Summit Point
}

// Build computes the brace spanning p1 to p2 laid out against vp.
// Coincident endpoints give a zero-radius brace collapsed onto p1, not
// an error.
func Build(p1, p2 Point, vp Viewport, cfg Config) (*Geometry, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	curv := cfg.Curvature
	if curv == 0 {
		curv = DefaultCurvature
	}
	n := cfg.Samples
	if n < 2 {
		n = DefaultSamples
	}

	sx, sy := cfg.Scales.X, cfg.Scales.Y

	x0, x1 := sx.Forward(vp.XMin), sx.Forward(vp.XMax)
	y0, y1 := sy.Forward(vp.YMin), sy.Forward(vp.YMax)
	if x1 == x0 || y1 == y0 {
		return nil, fmt.Errorf("%w: axis range collapses under the log transform", ErrViewport)
	}

	xs := vp.Width / math.Abs(x1-x0)
	ys := vp.Height / math.Abs(y1-y0)
	if cfg.EqualAspect {
		xs, ys = 1, 1
	}

	// Endpoints in dots, origin at the lower axis limits.
	q1 := Point{(sx.Forward(p1.X) - x0) * xs, (sy.Forward(p1.Y) - y0) * ys}
	q2 := Point{(sx.Forward(p2.X) - x0) * xs, (sy.Forward(p2.Y) - y0) * ys}

	theta := math.Atan2(q2.Y-q1.Y, q2.X-q1.X)
	r := math.Hypot(q2.X-q1.X, q2.Y-q1.Y) * curv

	sin, cos := math.Sincos(theta)
	mid := q1.Midpoint(q2)

	// Arc centres: one tucked behind each endpoint, the middle pair
	// flanking the summit.
	c1 := Point{q1.X + r*cos, q1.Y + r*sin}
	c2 := Point{mid.X - 2*r*sin - r*cos, mid.Y + 2*r*cos - r*sin}
	c3 := Point{mid.X - 2*r*sin + r*cos, mid.Y + 2*r*cos + r*sin}
	c4 := Point{q2.X - r*cos, q2.Y - r*sin}

	// Quarter turns. Arcs 1 and 4 are sampled backwards so the outline
	// runs from p1 to p2.
	q := floats.Span(make([]float64, n), theta, theta+math.Pi/2)
	t := slices.Clone(q)
	slices.Reverse(t)

	g := &Geometry{Angle: theta}
	g.Arcs[0] = arcPoints(c1, r, t, math.Pi/2)
	g.Arcs[1] = arcPoints(c2, r, q, -math.Pi/2)
	g.Arcs[2] = arcPoints(c3, r, q, math.Pi)
	g.Arcs[3] = arcPoints(c4, r, t, 0)
	g.Seg1 = [2]Point{g.Arcs[0][n-1], g.Arcs[1][0]}
	g.Seg2 = [2]Point{g.Arcs[2][n-1], g.Arcs[3][0]}

	// Back to data units.
	back := func(p Point) Point {
		return Point{sx.Inverse(p.X/xs + x0), sy.Inverse(p.Y/ys + y0)}
	}
	for i, a := range g.Arcs {
		for j, p := range a {
			g.Arcs[i][j] = back(p)
		}
	}
	g.Seg1[0], g.Seg1[1] = back(g.Seg1[0]), back(g.Seg1[1])
	g.Seg2[0], g.Seg2[1] = back(g.Seg2[0]), back(g.Seg2[1])
	g.Summit = g.Arcs[1][n-1]

	return g, nil
}

// Path returns the outline as a single polyline from p1 to p2. The
// connecting segments are the joins between consecutive arcs, so the
// concatenated arcs already trace the full brace.
func (g *Geometry) Path() []Point {
	n := 0
	for _, a := range g.Arcs {
		n += len(a)
	}
	pts := make([]Point, 0, n)
	for _, a := range g.Arcs {
		pts = append(pts, a...)
	}
	return pts
}

func arcPoints(c Point, r float64, angles []float64, phase float64) []Point {
	pts := make([]Point, len(angles))
	for i, a := range angles {
		s, co := math.Sincos(a + phase)
		pts[i] = Point{c.X + r*co, c.Y + r*s}
	}
	return pts
}
