package quickplot

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style is the figure-wide styling block, the counterpart of a
// matplotlib rcParams update. Sizes and widths are in points; the
// legend handle fields are in multiples of the legend font size.
type Style struct {
	Family  string `toml:"font_family"`
	Variant string `toml:"font_variant"`

	TitleSize  float64 `toml:"title_size"`
	LabelSize  float64 `toml:"label_size"`
	XTickSize  float64 `toml:"xtick_size"`
	YTickSize  float64 `toml:"ytick_size"`
	LegendSize float64 `toml:"legend_size"`

	AxisWidth float64 `toml:"axes_linewidth"`
	LineWidth float64 `toml:"lines_linewidth"`

	LegendHandleLength float64 `toml:"legend_handle_length"`
	LegendTextPad      float64 `toml:"legend_text_pad"`

	// LegendHandleHeight is read and written for config-file parity
	// only. The legend derives its entry height from the legend font,
	// so Apply has nothing to feed it to; only the handle length and
	// text pad shape the legend geometry.
	LegendHandleHeight float64 `toml:"legend_handle_height"`
}

// DefaultStyle returns the shared figure style. Liberation Sans stands
// in for Arial; the fonts ship with the plotting toolkit.
func DefaultStyle() Style {
	return Style{
		Family:             "Liberation",
		Variant:            "Sans",
		TitleSize:          16,
		LabelSize:          16,
		XTickSize:          14,
		YTickSize:          14,
		LegendSize:         16,
		AxisWidth:          1,
		LineWidth:          1,
		LegendHandleLength: 0.5,
		LegendHandleHeight: 0.5,
		LegendTextPad:      0.3,
	}
}

// Apply pushes the style onto a plot: fonts and sizes on the title,
// axis labels, tick labels and legend, widths on the axis lines, and
// the legend thumbnail geometry.
func (s Style) Apply(p *plot.Plot) {
	tf := font.Typeface(s.Family)
	vr := font.Variant(s.Variant)

	p.Title.TextStyle.Font.Typeface = tf
	p.Title.TextStyle.Font.Variant = vr
	p.Title.TextStyle.Font.Size = vg.Points(s.TitleSize)

	p.X.Label.TextStyle.Font.Typeface = tf
	p.X.Label.TextStyle.Font.Variant = vr
	p.X.Label.TextStyle.Font.Size = vg.Points(s.LabelSize)
	p.Y.Label.TextStyle.Font.Typeface = tf
	p.Y.Label.TextStyle.Font.Variant = vr
	p.Y.Label.TextStyle.Font.Size = vg.Points(s.LabelSize)

	p.X.Tick.Label.Font.Typeface = tf
	p.X.Tick.Label.Font.Variant = vr
	p.X.Tick.Label.Font.Size = vg.Points(s.XTickSize)
	p.Y.Tick.Label.Font.Typeface = tf
	p.Y.Tick.Label.Font.Variant = vr
	p.Y.Tick.Label.Font.Size = vg.Points(s.YTickSize)

	p.X.LineStyle.Width = vg.Points(s.AxisWidth)
	p.Y.LineStyle.Width = vg.Points(s.AxisWidth)

	p.Legend.TextStyle.Font.Typeface = tf
	p.Legend.TextStyle.Font.Variant = vr
	p.Legend.TextStyle.Font.Size = vg.Points(s.LegendSize)
	p.Legend.ThumbnailWidth = vg.Points(s.LegendHandleLength * s.LegendSize)
	p.Legend.Padding = vg.Points(s.LegendTextPad * s.LegendSize)
}

// LineStyle returns the default stroke at the style's line width.
func (s Style) LineStyle() draw.LineStyle {
	sty := plotter.DefaultLineStyle
	sty.Width = vg.Points(s.LineWidth)
	return sty
}

// LoadStyle reads a TOML style file. Missing keys keep their
// DefaultStyle values; unknown keys are ignored.
func LoadStyle(path string) (Style, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("quickplot: read style: %w", err)
	}
	s := DefaultStyle()
	if err := toml.Unmarshal(b, &s); err != nil {
		return Style{}, fmt.Errorf("quickplot: parse style %s: %w", path, err)
	}
	return s, nil
}

// Save writes the style as TOML.
func (s Style) Save(path string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("quickplot: encode style: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("quickplot: write style: %w", err)
	}
	return nil
}
