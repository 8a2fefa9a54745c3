// Package quickplot assembles multi-panel figures on top of
// gonum.org/v1/plot: subplot grids with spans and per-panel tweaks,
// panel letter labels, figure-space annotation lines and multi-format
// export. Panels are normalized rectangles on a figure surface; the
// figure records its drawing steps and replays them onto whichever
// backend an export format needs.
package quickplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point is a figure-space coordinate pair.
type Point struct {
	X, Y float64
}

// Offset is a fractional shift, interpreted against whichever rectangle
// it is applied to.
type Offset struct {
	X, Y float64
}

// Rect is a panel rectangle in figure fractions, origin at the bottom
// left.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// canvas restricts dc to the rectangle.
func (r Rect) canvas(dc draw.Canvas) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: dc.Min.X + vg.Length(r.X0)*w, Y: dc.Min.Y + vg.Length(r.Y0)*h},
			Max: vg.Point{X: dc.Min.X + vg.Length(r.X1)*w, Y: dc.Min.Y + vg.Length(r.Y1)*h},
		},
	}
}

// at resolves a panel-fraction offset to a canvas point.
func (r Rect) at(off Offset, dc draw.Canvas) vg.Point {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return vg.Point{
		X: dc.Min.X + vg.Length(r.X0+off.X*(r.X1-r.X0))*w,
		Y: dc.Min.Y + vg.Length(r.Y0+off.Y*(r.Y1-r.Y0))*h,
	}
}

// Figure is a drawing surface of a fixed size. Content is added as
// deferred drawing steps so that Export can replay the whole figure
// once per output format.
type Figure struct {
	Width, Height vg.Length

	render []func(draw.Canvas)
}

// NewFigure returns an empty figure of the given size.
func NewFigure(w, h vg.Length) *Figure {
	return &Figure{Width: w, Height: h}
}

// Add appends a raw drawing step.
func (f *Figure) Add(fn func(draw.Canvas)) {
	f.render = append(f.render, fn)
}

// AddPlot draws p into the panel r.
func (f *Figure) AddPlot(p *plot.Plot, r Rect) {
	f.Add(func(dc draw.Canvas) {
		p.Draw(r.canvas(dc))
	})
}

// Text draws s at the panel-fraction position off within panel r.
// Offsets outside [0,1] place the text outside the panel.
func (f *Figure) Text(r Rect, off Offset, s string, sty text.Style) {
	f.Add(func(dc draw.Canvas) {
		dc.FillText(sty, r.at(off, dc), s)
	})
}

// Draw replays the recorded steps onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	for _, fn := range f.render {
		fn(dc)
	}
}

// NewTextStyle returns a centered Liberation Sans style ready to fill
// text on a canvas.
func NewTextStyle(size vg.Length, c color.Color) text.Style {
	return text.Style{
		Color: c,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Size:     size,
		},
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
}

// CoordSpace names the coordinate system annotation points are given
// in.
type CoordSpace int

const (
	// DataSpace runs points through the plot's axis transforms.
	DataSpace CoordSpace = iota
	// CanvasSpace treats points as fractions of the panel canvas.
	CanvasSpace
	// FigureSpace treats points as fractions of the whole figure.
	FigureSpace
	// DisplaySpace takes points as raw canvas coordinates in points.
	DisplaySpace
)

func (s CoordSpace) String() string {
	switch s {
	case DataSpace:
		return "data"
	case CanvasSpace:
		return "canvas"
	case FigureSpace:
		return "figure"
	case DisplaySpace:
		return "display"
	}
	return fmt.Sprintf("CoordSpace(%d)", int(s))
}

// LineBetween returns a plotter stroking the polyline pts on a plot.
// DataSpace points go through the axis transforms and are clipped to
// the plotting area; CanvasSpace points are fractions of the panel and
// draw unclipped, so they may reach outside the frame. Figure and
// display space lines belong to the figure surface: use
// Figure.LineBetween.
func LineBetween(space CoordSpace, pts []Point, sty draw.LineStyle) (plot.Plotter, error) {
	switch space {
	case DataSpace, CanvasSpace:
		return &spaceLine{space: space, pts: pts, sty: sty}, nil
	case FigureSpace, DisplaySpace:
		return nil, fmt.Errorf("quickplot: %v lines are drawn by Figure.LineBetween", space)
	}
	return nil, fmt.Errorf("quickplot: space must be one of data, canvas, figure, display; got %v", space)
}

// LineBetween strokes the polyline pts onto the figure. FigureSpace
// points are figure fractions, DisplaySpace points raw canvas
// coordinates; neither is clipped. Data and canvas space lines belong
// on a plot: use the package-level LineBetween.
func (f *Figure) LineBetween(space CoordSpace, pts []Point, sty draw.LineStyle) error {
	switch space {
	case FigureSpace, DisplaySpace:
	case DataSpace, CanvasSpace:
		return fmt.Errorf("quickplot: %v lines are drawn by the package-level LineBetween", space)
	default:
		return fmt.Errorf("quickplot: space must be one of data, canvas, figure, display; got %v", space)
	}
	f.Add(func(dc draw.Canvas) {
		ps := make([]vg.Point, len(pts))
		for i, p := range pts {
			if space == FigureSpace {
				ps[i] = Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}.at(Offset{X: p.X, Y: p.Y}, dc)
			} else {
				ps[i] = vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
			}
		}
		dc.StrokeLines(sty, ps)
	})
	return nil
}

// TextAt returns a plotter filling s at pt on a plot. DataSpace points
// go through the axis transforms; CanvasSpace points are fractions of
// the panel, so values outside [0,1] land outside the frame. Figure and
// display space text belongs to the figure surface: use Figure.Text.
func TextAt(space CoordSpace, pt Point, s string, sty text.Style) (plot.Plotter, error) {
	switch space {
	case DataSpace, CanvasSpace:
		return &spaceText{space: space, pt: pt, str: s, sty: sty}, nil
	case FigureSpace, DisplaySpace:
		return nil, fmt.Errorf("quickplot: %v text is drawn by Figure.Text", space)
	}
	return nil, fmt.Errorf("quickplot: space must be one of data, canvas, figure, display; got %v", space)
}

// spaceLine strokes a polyline in data or panel-fraction coordinates.
type spaceLine struct {
	space CoordSpace
	pts   []Point
	sty   draw.LineStyle
}

// Plot implements plot.Plotter.
func (l *spaceLine) Plot(c draw.Canvas, plt *plot.Plot) {
	ps := make([]vg.Point, len(l.pts))
	if l.space == DataSpace {
		trX, trY := plt.Transforms(&c)
		for i, p := range l.pts {
			ps[i] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
		}
		c.StrokeLines(l.sty, c.ClipLinesXY(ps)...)
		return
	}
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	for i, p := range l.pts {
		ps[i] = vg.Point{X: c.Min.X + vg.Length(p.X)*w, Y: c.Min.Y + vg.Length(p.Y)*h}
	}
	c.StrokeLines(l.sty, ps)
}

// spaceText fills text at a data or panel-fraction position.
type spaceText struct {
	space CoordSpace
	pt    Point
	str   string
	sty   text.Style
}

// Plot implements plot.Plotter.
func (t *spaceText) Plot(c draw.Canvas, plt *plot.Plot) {
	var p vg.Point
	if t.space == DataSpace {
		trX, trY := plt.Transforms(&c)
		p = vg.Point{X: trX(t.pt.X), Y: trY(t.pt.Y)}
	} else {
		p = vg.Point{
			X: c.Min.X + vg.Length(t.pt.X)*(c.Max.X-c.Min.X),
			Y: c.Min.Y + vg.Length(t.pt.Y)*(c.Max.Y-c.Min.Y),
		}
	}
	c.FillText(t.sty, p, t.str)
}
