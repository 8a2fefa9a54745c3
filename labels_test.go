package quickplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestTexts(t *testing.T) {
	tests := []struct {
		name string
		n    int
		spec LabelSpec
		want []string
	}{
		{"lower", 4, LabelSpec{Seed: "a"}, []string{"a", "b", "c", "d"}},
		{"upper from C", 3, LabelSpec{Seed: "C"}, []string{"C", "D", "E"}},
		{"numeric", 4, LabelSpec{Seed: "1"}, []string{"1", "2", "3", "4"}},
		{"lower saturates", 3, LabelSpec{Seed: "y"}, []string{"y", "z", "z"}},
		{"upper saturates", 3, LabelSpec{Seed: "Y"}, []string{"Y", "Z", "Z"}},
		{"numeric saturates", 3, LabelSpec{Seed: "25"}, []string{"25", "26", "26"}},
		{"numeric max", 3, LabelSpec{Seed: "29", Max: 30}, []string{"29", "30", "30"}},
		{"affix pair", 2, LabelSpec{Seed: "a", Affix: "()"}, []string{"(a)", "(b)"}},
		{"affix split", 2, LabelSpec{Seed: "a", Affix: "[-]", AffixAt: 2}, []string{"[-a]", "[-b]"}},
		{"explicit prefix", 2, LabelSpec{Seed: "1", Prefix: "Item-"}, []string{"Item-1", "Item-2"}},
		{"step two", 5, LabelSpec{Seed: "a", Step: 2}, []string{"a", "", "b", "", "c"}},
		{"step three", 5, LabelSpec{Seed: "a", Step: 3}, []string{"a", "", "", "b", ""}},
		{"fallback seed", 3, LabelSpec{Seed: "?"}, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Texts(tt.n, tt.spec), tt.name)
	}
}

func TestTextsStepKeepsAffixes(t *testing.T) {
	got := Texts(3, LabelSpec{Seed: "a", Affix: "()", Step: 2})
	assert.Equal(t, []string{"(a)", "", "(b)"}, got)
}

func TestLabelsDraw(t *testing.T) {
	fig := NewFigure(4*vg.Inch, 3*vg.Inch)
	panels, err := NewGrid(2, 2).Panels()
	require.NoError(t, err)

	fig.Labels(panels, LabelSpec{
		Seed:    "a",
		Offsets: []Offset{{X: -0.05, Y: 1.05}},
	})

	dc := draw.New(vgimg.New(fig.Width, fig.Height))
	assert.NotPanics(t, func() { fig.Draw(dc) })
}
