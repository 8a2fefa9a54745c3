package quickplot

import (
	"image/color"
	"strconv"

	xfnt "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LabelSpec generates and places panel corner labels.
type LabelSpec struct {
	// Seed starts the sequence: a lowercase or uppercase letter runs
	// the alphabet from there and saturates at 'z' or 'Z'; a number
	// counts up and saturates at Max. Anything else falls back to a
	// run from 'a'.
	Seed string

	// Prefix and Suffix wrap each label. When both are empty, Affix
	// is split into the pair at AffixAt (default 1), so "()" wraps
	// labels in parentheses.
	Prefix, Suffix string
	Affix          string
	AffixAt        int

	// Step leaves Step-1 unlabeled panels between labels.
	Step int

	// Max saturates numeric sequences (default 26).
	Max int

	// Offsets place each label in panel fractions, default (0, 1),
	// the top left corner. Values outside [0,1] move labels outside
	// the panel.
	Offsets []Offset

	// Size is the label font size (default 20 points).
	Size vg.Length

	Color color.Color
}

// Texts returns the n panel labels a spec generates, one per panel.
// Panels skipped by Step get an empty label.
func Texts(n int, s LabelSpec) []string {
	seq := make([]string, n)
	switch seed := s.Seed; {
	case len(seed) == 1 && seed[0] >= 'a' && seed[0] <= 'z':
		for i := range seq {
			seq[i] = string(rune(min(int(seed[0])+i, 'z')))
		}
	case len(seed) == 1 && seed[0] >= 'A' && seed[0] <= 'Z':
		for i := range seq {
			seq[i] = string(rune(min(int(seed[0])+i, 'Z')))
		}
	case isDigits(seed):
		start, _ := strconv.Atoi(seed)
		limit := s.Max
		if limit == 0 {
			limit = 26
		}
		for i := range seq {
			seq[i] = strconv.Itoa(min(start+i, limit))
		}
	default:
		for i := range seq {
			seq[i] = string(rune(min('a'+i, 'z')))
		}
	}

	prefix, suffix := s.Prefix, s.Suffix
	if prefix == "" && suffix == "" && s.Affix != "" {
		at := s.AffixAt
		if at <= 0 {
			at = 1
		}
		if at > len(s.Affix) {
			at = len(s.Affix)
		}
		prefix, suffix = s.Affix[:at], s.Affix[at:]
	}
	if prefix != "" || suffix != "" {
		for i := range seq {
			seq[i] = prefix + seq[i] + suffix
		}
	}

	if s.Step <= 1 {
		return seq
	}
	out := make([]string, n)
	for i := range out {
		if i%s.Step == 0 {
			out[i] = seq[i/s.Step]
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Labels draws the spec's labels onto the figure, one per panel. The
// text anchors its right edge on the offset position, baseline up, in
// the style's bold face.
func (f *Figure) Labels(panels []Rect, s LabelSpec) {
	labels := Texts(len(panels), s)
	size := s.Size
	if size == 0 {
		size = vg.Points(20)
	}
	col := s.Color
	if col == nil {
		col = color.Black
	}
	sty := text.Style{
		Color: col,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Weight:   xfnt.WeightBold,
			Size:     size,
		},
		XAlign:  text.XRight,
		YAlign:  text.YBottom,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
	f.Add(func(dc draw.Canvas) {
		for i, r := range panels {
			if labels[i] == "" {
				continue
			}
			off := Offset{X: 0, Y: 1}
			if i < len(s.Offsets) {
				off = s.Offsets[i]
			}
			dc.FillText(sty, r.at(off, dc), labels[i])
		}
	})
}
