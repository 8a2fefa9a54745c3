package brace

import (
	"math"
	"strings"
)

// Label annotates a brace at its summit.
type Label struct {
	// Text is the annotation. Empty draws nothing.
	Text string

	// Pad is the number of blank lines keeping the text clear of the
	// brace tip. Zero means DefaultLabelPad; negative means none.
	Pad int

	// Offset displaces the text from the summit.
	Offset Offset
}

// Offset displaces a label in data units: the literal (X, Y) pair, or,
// when Normal is nonzero, a displacement of that length perpendicular
// to the brace direction.
type Offset struct {
	X, Y   float64
	Normal float64
}

// Placement resolves where l sits on the built brace: the anchor point,
// the text rotation in degrees within [0,360), and the text with its
// padding lines attached. Braces opening toward the lower half-plane
// have the label flipped half a turn with the padding moved to the
// leading side, so the text never reads upside down. Orientations of
// exactly 90 and 270 degrees stay unflipped.
func (g *Geometry) Placement(l Label) (pos Point, rotDeg float64, text string) {
	pad := l.Pad
	switch {
	case pad < 0:
		pad = 0
	case pad == 0:
		pad = DefaultLabelPad
	}
	fill := strings.Repeat("\n", pad)

	sin, cos := math.Sincos(g.Angle)
	pos = Point{g.Summit.X + l.Offset.X, g.Summit.Y + l.Offset.Y}
	if l.Offset.Normal != 0 {
		pos = Point{g.Summit.X + l.Offset.Normal*sin, g.Summit.Y - l.Offset.Normal*cos}
	}

	// The flip test runs on the raw angle so that the 90 and 270
	// degree boundaries stay exact.
	rot := g.Angle
	text = l.Text + fill
	if rot > math.Pi/2 || rot < -math.Pi/2 {
		rot += math.Pi
		text = fill + l.Text
	}
	if rot < 0 {
		rot += 2 * math.Pi
	}
	if rot >= 2*math.Pi {
		rot -= 2 * math.Pi
	}
	return pos, rot * 180 / math.Pi, text
}
