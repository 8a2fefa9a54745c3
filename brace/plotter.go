package brace

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plotter draws a brace on a gonum plot. The viewport and axis scales
// are read off the plot at draw time, so the geometry tracks whatever
// limits and scales the plot ends up with.
type Plotter struct {
	P1, P2 Point

	// Config steers the geometry. Its Scales field is overwritten
	// from the plot's axes at draw time.
	Config Config

	// Label is drawn at the summit when its Text is nonempty.
	Label Label

	// LineStyle strokes the brace outline.
	LineStyle draw.LineStyle

	// TextStyle renders the label. Its Rotation is set per draw from
	// the brace orientation.
	TextStyle text.Style
}

// NewPlotter returns a Plotter for the brace spanning p1 to p2,
// annotated with label (may be empty), in default styling.
func NewPlotter(p1, p2 Point, label string) *Plotter {
	return &Plotter{
		P1:        p1,
		P2:        p2,
		Label:     Label{Text: label},
		LineStyle: plotter.DefaultLineStyle,
		TextStyle: text.Style{
			Color:   color.Black,
			Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(12)},
			Handler: text.Plain{Fonts: font.DefaultCache},
		},
	}
}

// Plot implements plot.Plotter.
func (b *Plotter) Plot(c draw.Canvas, plt *plot.Plot) {
	cfg := b.Config
	cfg.Scales = ScalesOf(plt)
	g, err := Build(b.P1, b.P2, ViewportOf(plt, c), cfg)
	if err != nil {
		return
	}

	// Points that fall off a log scale transform to NaN or an
	// infinity; drop them the way log axes drop nonpositive data.
	trX, trY := plt.Transforms(&c)
	ps := make([]vg.Point, 0, 4*len(g.Arcs[0]))
	for _, p := range g.Path() {
		x, y := trX(p.X), trY(p.Y)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		ps = append(ps, vg.Point{X: x, Y: y})
	}
	c.StrokeLines(b.LineStyle, c.ClipLinesXY(ps)...)

	if b.Label.Text == "" {
		return
	}
	pos, deg, txt := g.Placement(b.Label)
	x, y := trX(pos.X), trY(pos.Y)
	if !isFinite(x) || !isFinite(y) {
		return
	}
	sty := b.TextStyle
	sty.Rotation = deg * math.Pi / 180
	sty.XAlign, sty.YAlign = text.XCenter, text.YCenter
	if sty.Handler == nil {
		sty.Handler = text.Plain{Fonts: font.DefaultCache}
	}
	c.FillText(sty, vg.Point{X: x, Y: y}, txt)
}

// DataRange implements plot.DataRanger, spanning the two endpoints.
func (b *Plotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = math.Min(b.P1.X, b.P2.X)
	xmax = math.Max(b.P1.X, b.P2.X)
	ymin = math.Min(b.P1.Y, b.P2.Y)
	ymax = math.Max(b.P1.Y, b.P2.Y)
	return xmin, xmax, ymin, ymax
}

// ViewportOf reads the viewport Build needs from a plot and the canvas
// it is being drawn on.
func ViewportOf(plt *plot.Plot, c draw.Canvas) Viewport {
	return Viewport{
		XMin:   plt.X.Min,
		XMax:   plt.X.Max,
		YMin:   plt.Y.Min,
		YMax:   plt.Y.Max,
		Width:  float64(c.Max.X - c.Min.X),
		Height: float64(c.Max.Y - c.Min.Y),
	}
}

// ScalesOf reads the per-axis transforms off a plot's normalizers.
func ScalesOf(plt *plot.Plot) Scales {
	return Scales{X: scaleOf(plt.X.Scale), Y: scaleOf(plt.Y.Scale)}
}

func scaleOf(n plot.Normalizer) AxisScale {
	switch n := n.(type) {
	case plot.LogScale:
		return Log
	case plot.InvertedScale:
		return scaleOf(n.Normalizer)
	}
	return Linear
}

func isFinite(l vg.Length) bool {
	f := float64(l)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
