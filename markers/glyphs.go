// Package markers supplies extra scatter glyphs beyond the gonum
// built-ins and a marker-line plotter that lays repeating marker
// patterns along a polyline.
package markers

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// crossReach matches the diagonal extent of the stroked cross glyphs,
// as a fraction of the glyph radius.
const crossReach = 0.7

// StarGlyph draws an eight-pointed asterisk: a plus overlaid with an x.
type StarGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (StarGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	sty.Shape = draw.PlusGlyph{}
	sty.Shape.DrawGlyph(c, sty, pt)
	r := sty.Radius * crossReach
	ln := hairline(sty)
	c.StrokeLine2(ln, pt.X-r, pt.Y-r, pt.X+r, pt.Y+r)
	c.StrokeLine2(ln, pt.X-r, pt.Y+r, pt.X+r, pt.Y-r)
}

// RingRingGlyph draws two concentric circles, the inner at half the
// radius.
type RingRingGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (RingRingGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	strokeCircle(c, sty, pt, sty.Radius)
	strokeCircle(c, sty, pt, sty.Radius/2)
}

// CircleCrossGlyph draws a circle with an x inscribed.
type CircleCrossGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (CircleCrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	strokeCircle(c, sty, pt, sty.Radius)
	r := sty.Radius * crossReach
	ln := hairline(sty)
	c.StrokeLine2(ln, pt.X-r, pt.Y-r, pt.X+r, pt.Y+r)
	c.StrokeLine2(ln, pt.X-r, pt.Y+r, pt.X+r, pt.Y-r)
}

// SquareCrossGlyph draws a square with an x inscribed.
type SquareCrossGlyph struct{}

// DrawGlyph implements the GlyphDrawer interface.
func (SquareCrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	ln := hairline(sty)
	c.SetLineStyle(ln)
	var p vg.Path
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Close()
	c.Stroke(p)

	r *= crossReach
	c.StrokeLine2(ln, pt.X-r, pt.Y-r, pt.X+r, pt.Y+r)
	c.StrokeLine2(ln, pt.X-r, pt.Y+r, pt.X+r, pt.Y-r)
}

func strokeCircle(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point, r vg.Length) {
	c.SetLineStyle(hairline(sty))
	var p vg.Path
	p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	c.Stroke(p)
}

func hairline(sty draw.GlyphStyle) draw.LineStyle {
	return draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)}
}

var glyphNames = map[string]draw.GlyphDrawer{
	"n+": draw.PlusGlyph{},
	"nx": draw.CrossGlyph{},
	"n*": StarGlyph{},
	"r":  RingRingGlyph{},
	"ox": CircleCrossGlyph{},
	"sx": SquareCrossGlyph{},
	"o":  draw.CircleGlyph{},
	"O":  draw.RingGlyph{},
	"s":  draw.BoxGlyph{},
	"^":  draw.PyramidGlyph{},
	"+":  draw.PlusGlyph{},
	"x":  draw.CrossGlyph{},
}

// ForName resolves a marker name to its glyph. Beyond the short names
// of the gonum shapes (o, O, s, ^, +, x) it knows the stroked set n+,
// nx and n* plus the composed r, ox and sx shapes.
func ForName(name string) (draw.GlyphDrawer, error) {
	g, ok := glyphNames[name]
	if !ok {
		known := make([]string, 0, len(glyphNames))
		for k := range glyphNames {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("markers: unknown marker %q (have %s)", name, strings.Join(known, ", "))
	}
	return g, nil
}
