// Command heatmapfig draws the Antarctic meltwater z-score heat map:
// five stacked season-by-category panels, ice-sheet totals alternating
// with their glacier breakdowns, sharing a blue-to-red colorbar. The
// data is a seeded mock, z-scored per category across the seasons.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/zbhgis/quickplot"
	"github.com/zbhgis/quickplot/ticks"
)

// yLabelBlocks are the category rows of each panel, top to bottom.
var yLabelBlocks = [][]string{
	{"EAIS total"},
	{"Rennick", "Shackleton", "Amery", "Baudouin", "Nivlisen"},
	{"AP total"},
	{"Wilkins", "Bach", "George VI"},
	{"WAIS total"},
}

// xTickLens are the inner x tick lengths per panel, as fractions of
// the panel height, so the short panels get visibly long marks.
var xTickLens = []float64{0.1, 0.026, 0.1, 0.05, 0.1}

func main() {
	out, formats, dpi, seed, stylePath := flags()

	sty := quickplot.DefaultStyle()
	if stylePath != "" {
		var err error
		sty, err = quickplot.LoadStyle(stylePath)
		if err != nil {
			log.Fatal(err)
		}
	}
	sty = heatStyle(sty)

	seasons := seasonLabels()
	blocks := mockBlocks(seed, len(seasons))

	grid := &quickplot.GridSpec{
		Rows:   12,
		Cols:   1,
		HSpace: 0.3,
		Cells: []quickplot.Cell{
			{Rows: quickplot.Span{Start: 0, End: 1}},
			{Rows: quickplot.Span{Start: 1, End: 6}},
			{Rows: quickplot.Span{Start: 6, End: 7}},
			{Rows: quickplot.Span{Start: 7, End: 10}},
			{Rows: quickplot.Span{Start: 10, End: 12}},
		},
		Offsets: []quickplot.Offset{{Y: -0.05}, {}, {Y: -0.03}, {}, {}},
	}
	panels, err := grid.Panels()
	if err != nil {
		log.Fatal(err)
	}

	fig := quickplot.NewFigure(10*vg.Inch, 14*vg.Inch)
	for i, block := range blocks {
		showX := i != 0 && i != 2
		p := heatmapPanel(block, seasons, yLabelBlocks[i], sty, showX, xTickLens[i])
		fig.AddPlot(p, panels[i])
	}

	fig.Labels(panels, quickplot.LabelSpec{
		Seed: "a",
		Step: 2,
		Offsets: []quickplot.Offset{
			{X: -0.06, Y: 1}, {Y: 1}, {X: -0.06, Y: 1}, {Y: 1}, {X: -0.06, Y: 1},
		},
	})

	rule := sty.LineStyle()
	last := panels[len(panels)-1]
	fig.Text(last, quickplot.Offset{X: 0.45, Y: -0.35}, "Years",
		quickplot.NewTextStyle(vg.Points(16), color.Black))
	err = fig.LineBetween(quickplot.FigureSpace, []quickplot.Point{
		{X: last.X0 - 0.06, Y: last.Y0 - 0.06},
		{X: last.X1, Y: last.Y0 - 0.06},
	}, rule)
	if err != nil {
		log.Fatal(err)
	}

	// A rule above every ice-sheet total panel.
	for i, r := range panels {
		if i%2 != 0 {
			continue
		}
		err = fig.LineBetween(quickplot.FigureSpace, []quickplot.Point{
			{X: r.X0 - 0.06, Y: r.Y1 + 0.02},
			{X: r.X1, Y: r.Y1 + 0.02},
		}, rule)
		if err != nil {
			log.Fatal(err)
		}
	}

	colorbar(fig, sty)

	if err := fig.Export(out, formats, dpi); err != nil {
		log.Fatal(err)
	}
}

func flags() (string, []string, int, int64, string) {
	var out, formats, stylePath string
	var dpi int
	var seed int64

	flag.StringVar(&out, "out", "heatmap", "output base name")
	flag.StringVar(&formats, "formats", "jpg", "comma-separated export formats")
	flag.IntVar(&dpi, "dpi", quickplot.DefaultDPI, "raster export resolution")
	flag.Int64Var(&seed, "seed", 13, "mock data seed")
	flag.StringVar(&stylePath, "style", "", "TOML style file overriding the defaults")
	flag.Parse()

	return out, strings.Split(formats, ","), dpi, seed, stylePath
}

// heatStyle applies the heat map overrides to the shared style: larger
// tick labels, smaller legend text.
func heatStyle(base quickplot.Style) quickplot.Style {
	base.XTickSize = 16
	base.YTickSize = 16
	base.LegendSize = 12
	base.LegendHandleLength = 0.6
	return base
}

// seasonLabels returns the 2006/07 through 2020/21 melt season names,
// with the provisional season starred.
func seasonLabels() []string {
	out := make([]string, 15)
	for i := range out {
		y := 2006 + i
		s := fmt.Sprintf("%d/%02d", y, (y+1)%100)
		if i == 12 {
			s += "*"
		}
		out[i] = s
	}
	return out
}

// mockBlocks draws a seeded raw-area series for every category row and
// z-scores each row across the seasons, one matrix per panel.
func mockBlocks(seed int64, seasons int) [][][]float64 {
	blocks := make([][][]float64, len(yLabelBlocks))
	for b, cats := range yLabelBlocks {
		r := rand.New(rand.NewSource(seed + int64(b)))
		block := make([][]float64, len(cats))
		for i := range cats {
			raw := make([]float64, seasons)
			for j := range raw {
				raw[j] = r.Float64() * 100
			}
			block[i] = zscore(raw)
		}
		blocks[b] = block
	}
	return blocks
}

// zscore normalizes a series to zero mean and unit spread. A flat
// series comes back all zero.
func zscore(v []float64) []float64 {
	mean := stat.Mean(v, nil)
	std := stat.StdDev(v, nil)
	out := make([]float64, len(v))
	if std == 0 {
		return out
	}
	for i, x := range v {
		out[i] = (x - mean) / std
	}
	return out
}

// seasonGrid adapts a block matrix with row 0 on top to the heat map's
// grid interface, which draws row coordinates bottom-up.
type seasonGrid struct {
	z [][]float64
}

func (g seasonGrid) Dims() (c, r int)   { return len(g.z[0]), len(g.z) }
func (g seasonGrid) X(c int) float64    { return float64(c) }
func (g seasonGrid) Y(r int) float64    { return float64(r) }
func (g seasonGrid) Z(c, r int) float64 { return g.z[len(g.z)-1-r][c] }

// categoryTicks labels the integer cell positions with names. reversed
// walks the names from the top row down; hidden drops the label text.
func categoryTicks(names []string, reversed, hidden bool) plot.TickerFunc {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		out := make([]plot.Tick, 0, len(names))
		for i, name := range names {
			v := float64(i)
			if reversed {
				v = float64(len(names) - 1 - i)
			}
			if hidden {
				name = ""
			}
			out = append(out, plot.Tick{Value: v, Label: name})
		}
		return out
	})
}

// heatmapPanel builds one season-by-category panel: the heat map with
// white separator rules, category labels on a bare y axis and inner x
// tick marks of the given length.
func heatmapPanel(block [][]float64, seasons, cats []string, sty quickplot.Style, showX bool, tickLen float64) *plot.Plot {
	p := plot.New()
	sty.Apply(p)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-3)
	cm.SetMax(3)
	hm := plotter.NewHeatMap(seasonGrid{z: block}, cm.Palette(255))
	hm.Min, hm.Max = -3, 3
	p.Add(hm)

	cols := float64(len(seasons))
	rows := float64(len(cats))
	p.X.Min, p.X.Max = -0.5, cols-0.5
	p.Y.Min, p.Y.Max = -0.5, rows-0.5

	// White separator rules on the half-integer cell bounds, wide
	// between categories and narrow between seasons.
	for i := 0; i <= len(cats); i++ {
		y := float64(i) - 0.5
		addRule(p, quickplot.Point{X: -0.5, Y: y}, quickplot.Point{X: cols - 0.5, Y: y}, vg.Points(10))
	}
	for j := 0; j <= len(seasons); j++ {
		x := float64(j) - 0.5
		addRule(p, quickplot.Point{X: x, Y: -0.5}, quickplot.Point{X: x, Y: rows - 0.5}, vg.Points(2))
	}

	p.Y.Tick.Marker = categoryTicks(cats, true, false)
	ticks.HideTickMarks(&p.Y)

	p.X.Tick.Marker = categoryTicks(seasons, false, !showX)
	ticks.HideTickMarks(&p.X)
	if showX {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	positions := make([]float64, len(seasons))
	for i := range positions {
		positions[i] = float64(i)
	}
	marks, err := ticks.NewMarks(ticks.XAxis, positions, 0)
	if err != nil {
		log.Fatal(err)
	}
	marks.Start, marks.End = 0.002, tickLen
	marks.LineStyle = sty.LineStyle()
	p.Add(marks)

	return p
}

// addRule strokes a white separator between cells.
func addRule(p *plot.Plot, a, b quickplot.Point, w vg.Length) {
	rule, err := quickplot.LineBetween(quickplot.DataSpace, []quickplot.Point{a, b},
		draw.LineStyle{Color: color.White, Width: w})
	if err != nil {
		log.Fatal(err)
	}
	p.Add(rule)
}

// colorbar draws the shared z-score bar on the right edge: the
// gradient with inner right-side ticks and hand-placed numbers, the
// rotated axis label and the vertical average callouts.
func colorbar(fig *quickplot.Figure, sty quickplot.Style) {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-3)
	cm.SetMax(3)

	bar := &plotter.ColorBar{ColorMap: cm, Vertical: true}

	p := plot.New()
	p.Add(bar)
	p.HideX()
	p.HideY()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = -3, 3

	marks, err := ticks.NewMarks(ticks.YAxis, []float64{-3, -2, -1, 0, 1, 2, 3}, 0)
	if err != nil {
		log.Fatal(err)
	}
	marks.Start, marks.End = 0.8, 1
	marks.LineStyle = sty.LineStyle()
	p.Add(marks)

	num := quickplot.NewTextStyle(vg.Points(sty.YTickSize), color.Black)
	num.XAlign = text.XLeft
	for v := -3; v <= 3; v++ {
		mark, err := quickplot.TextAt(quickplot.CanvasSpace,
			quickplot.Point{X: 1.15, Y: (float64(v) + 3) / 6}, strconv.Itoa(v), num)
		if err != nil {
			log.Fatal(err)
		}
		p.Add(mark)
	}

	rect := quickplot.Rect{X0: 0.92, Y0: 0.09, X1: 0.96, Y1: 0.84}
	fig.AddPlot(p, rect)

	label := quickplot.NewTextStyle(vg.Points(18), color.Black)
	label.Rotation = -math.Pi / 2
	fig.Text(rect, quickplot.Offset{X: 1.5, Y: 0.5}, "Total meltwater area Z-score", label)

	callout := quickplot.NewTextStyle(vg.Points(18), color.White)
	callout.YAlign = text.YTop
	fig.Text(rect, quickplot.Offset{X: 0.5, Y: 0.35}, stacked("BELOW AVERAGE"), callout)
	fig.Text(rect, quickplot.Offset{X: 0.5, Y: 0.98}, stacked("ABOVE AVERAGE"), callout)
}

// stacked spells s vertically, one character per line.
func stacked(s string) string {
	return strings.Join(strings.Split(s, ""), "\n")
}
