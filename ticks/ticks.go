// Package ticks dresses up gonum plot axes: a label formatter layered
// over any tick marker, and free-standing tick marks drawn at chosen
// positions.
package ticks

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// Formatter implements plot.Ticker by taking tick positions from Base
// and reformatting the major tick labels. The zero value formats with
// the shortest decimal form; use NewFormatter for a ready-made default.
type Formatter struct {
	// Base supplies the tick positions. Nil means plot.DefaultTicks.
	Base plot.Ticker

	// ZeroFormat renders values within 1e-10 of zero as a plain 0,
	// keeping Prefix and Suffix.
	ZeroFormat bool

	// Prec is the number of decimals. Zero rounds to integers; use a
	// negative value for the shortest representation.
	Prec int

	// Scientific forces exponent notation.
	Scientific bool

	// Prefix and Suffix wrap every label.
	Prefix, Suffix string

	// Thousands groups the integer digits with commas. It has no
	// effect when Scientific is set.
	Thousands bool
}

// NewFormatter returns a Formatter over base (nil means
// plot.DefaultTicks) that keeps the shortest decimal form.
func NewFormatter(base plot.Ticker) *Formatter {
	if base == nil {
		base = plot.DefaultTicks{}
	}
	return &Formatter{Base: base, Prec: -1}
}

// Ticks implements plot.Ticker. Minor ticks (empty labels) pass through
// untouched.
func (f *Formatter) Ticks(min, max float64) []plot.Tick {
	base := f.Base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	tks := base.Ticks(min, max)
	for i, t := range tks {
		if t.Label == "" {
			continue
		}
		tks[i].Label = f.Format(t.Value)
	}
	return tks
}

// Format renders one tick value the way Ticks would label it.
func (f *Formatter) Format(v float64) string {
	if f.ZeroFormat && math.Abs(v) < 1e-10 {
		return f.Prefix + "0" + f.Suffix
	}

	var s string
	switch {
	case f.Scientific:
		prec := f.Prec
		if prec < 0 {
			prec = 6
		}
		s = strconv.FormatFloat(v, 'e', prec, 64)
	case f.Prec == 0:
		s = strconv.Itoa(int(math.Round(v)))
	case f.Prec > 0:
		s = strconv.FormatFloat(v, 'f', f.Prec, 64)
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}

	if f.Thousands && !f.Scientific && !strings.ContainsAny(s, "eE") {
		s = groupThousands(s)
	}
	return f.Prefix + s + f.Suffix
}

func groupThousands(s string) string {
	parts := strings.SplitN(s, ".", 2)
	digits := strings.TrimPrefix(parts[0], "-")
	for _, c := range digits {
		if c < '0' || c > '9' {
			return s
		}
	}

	var b strings.Builder
	if len(parts[0]) > len(digits) {
		b.WriteByte('-')
	}
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if len(parts) == 2 {
		b.WriteByte('.')
		b.WriteString(parts[1])
	}
	return b.String()
}

// HideTickMarks zeroes the axis' built-in tick line length, keeping the
// labels. Pair it with Marks to substitute custom tick lines.
func HideTickMarks(ax *plot.Axis) {
	ax.Tick.Length = 0
}
