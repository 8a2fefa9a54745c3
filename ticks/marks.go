package ticks

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axis names the plot axis a set of Marks runs along.
type Axis int

const (
	XAxis Axis = iota
	YAxis
)

func (a Axis) String() string {
	if a == YAxis {
		return "y"
	}
	return "x"
}

// Mark extent defaults, as fractions of the plotting area.
const (
	DefaultMarkStart = 0.002
	DefaultMarkEnd   = 0.018
	DefaultMarkCount = 5
)

// Marks is a plot.Plotter drawing short tick lines at chosen data
// positions along one axis. The line extents run across the other axis
// as fractions of the plotting area, so negative fractions reach
// outside the frame (the strokes are not clipped).
type Marks struct {
	// Axis selects which axis the marks follow.
	Axis Axis

	// Positions are the data coordinates to mark. When nil, Count
	// equally spaced positions spanning the axis range are used.
	Positions []float64

	// Count caps Positions, or sets how many equally spaced marks to
	// generate when Positions is nil (default 5).
	Count int

	// Start and End are the stroke extents across the opposing axis,
	// as fractions of the plotting area. Both zero means the defaults.
	Start, End float64

	// LineStyle strokes the marks.
	LineStyle draw.LineStyle
}

// NewMarks returns Marks along axis at the given positions. Pass nil
// positions and a count for equal spacing over the axis range; a count
// of zero means DefaultMarkCount.
func NewMarks(axis Axis, positions []float64, count int) (*Marks, error) {
	if axis != XAxis && axis != YAxis {
		return nil, fmt.Errorf("ticks: axis must be XAxis or YAxis, got %d", axis)
	}
	if positions == nil {
		if count == 0 {
			count = DefaultMarkCount
		}
		if count < 2 {
			return nil, fmt.Errorf("ticks: count must be at least 2, got %d", count)
		}
	} else if count > 0 && count < len(positions) {
		positions = positions[:count]
	}
	return &Marks{
		Axis:      axis,
		Positions: positions,
		Count:     count,
		LineStyle: plotter.DefaultLineStyle,
	}, nil
}

// Plot implements plot.Plotter.
func (m *Marks) Plot(c draw.Canvas, plt *plot.Plot) {
	start, end := m.Start, m.End
	if start == 0 && end == 0 {
		start, end = DefaultMarkStart, DefaultMarkEnd
	}

	pos := m.Positions
	if pos == nil {
		n := m.Count
		if n < 2 {
			n = DefaultMarkCount
		}
		lo, hi := plt.X.Min, plt.X.Max
		if m.Axis == YAxis {
			lo, hi = plt.Y.Min, plt.Y.Max
		}
		pos = floats.Span(make([]float64, n), lo, hi)
	}

	trX, trY := plt.Transforms(&c)
	if m.Axis == XAxis {
		h := c.Max.Y - c.Min.Y
		y0 := c.Min.Y + vg.Length(start)*h
		y1 := c.Min.Y + vg.Length(end)*h
		for _, v := range pos {
			x := trX(v)
			c.StrokeLine2(m.LineStyle, x, y0, x, y1)
		}
		return
	}
	w := c.Max.X - c.Min.X
	x0 := c.Min.X + vg.Length(start)*w
	x1 := c.Min.X + vg.Length(end)*w
	for _, v := range pos {
		y := trY(v)
		c.StrokeLine2(m.LineStyle, x0, y, x1, y)
	}
}
