// Command bracedemo draws the curly-brace gallery: a fan of labeled
// braces at assorted angles, a brace on a logarithmic x axis, the two
// label offset modes side by side and a brace laid out with the pixel
// normalization switched off. It exercises every brace option in one
// figure.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/zbhgis/quickplot"
	"github.com/zbhgis/quickplot/brace"
)

func main() {
	out, formats, dpi, stylePath := flags()

	sty := quickplot.DefaultStyle()
	if stylePath != "" {
		var err error
		sty, err = quickplot.LoadStyle(stylePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	grid := quickplot.NewGrid(2, 2)
	grid.WSpace, grid.HSpace = 0.35, 0.35
	panels, err := grid.Panels()
	if err != nil {
		log.Fatal(err)
	}

	fig := quickplot.NewFigure(10*vg.Inch, 10*vg.Inch)
	fig.AddPlot(fanPanel(sty), panels[0])
	fig.AddPlot(logPanel(sty), panels[1])
	fig.AddPlot(offsetPanel(sty), panels[2])
	fig.AddPlot(aspectPanel(sty), panels[3])
	fig.Labels(panels, quickplot.LabelSpec{Seed: "a"})

	if err := fig.Export(out, formats, dpi); err != nil {
		log.Fatal(err)
	}
}

func flags() (string, []string, int, string) {
	var out, formats, stylePath string
	var dpi int

	flag.StringVar(&out, "out", "braces", "output base name")
	flag.StringVar(&formats, "formats", "jpg", "comma-separated export formats")
	flag.IntVar(&dpi, "dpi", quickplot.DefaultDPI, "raster export resolution")
	flag.StringVar(&stylePath, "style", "", "TOML style file overriding the defaults")
	flag.Parse()

	return out, strings.Split(formats, ","), dpi, stylePath
}

func newPanel(sty quickplot.Style, title string) *plot.Plot {
	p := plot.New()
	sty.Apply(p)
	p.Title.Text = title
	return p
}

// fanPanel spreads labeled braces around a hub, one per 45 degrees, so
// the label of every orientation can be eyeballed at once.
func fanPanel(sty quickplot.Style) *plot.Plot {
	p := newPanel(sty, "orientation fan")
	p.X.Min, p.X.Max = -1.5, 1.5
	p.Y.Min, p.Y.Max = -1.5, 1.5

	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		tip := brace.Point{X: math.Cos(a), Y: math.Sin(a)}
		b := brace.NewPlotter(brace.Point{X: 0.2 * tip.X, Y: 0.2 * tip.Y}, tip,
			fmt.Sprintf("%d°", i*45))
		b.TextStyle.Font.Size = vg.Points(10)
		p.Add(b)
	}
	return p
}

// logPanel spans two decades on a log x axis; the brace bows through
// the geometric mean of its endpoints.
func logPanel(sty quickplot.Style) *plot.Plot {
	p := newPanel(sty, "log x axis")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min, p.X.Max = 0.5, 200
	p.Y.Min, p.Y.Max = 0, 1

	b := brace.NewPlotter(brace.Point{X: 1, Y: 0.4}, brace.Point{X: 100, Y: 0.4}, "two decades")
	p.Add(b)
	return p
}

// offsetPanel contrasts the two label offset modes: a literal (dx, dy)
// pair against a scalar displacement along the brace normal.
func offsetPanel(sty quickplot.Style) *plot.Plot {
	p := newPanel(sty, "label offsets")
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pair := brace.NewPlotter(brace.Point{X: 0.1, Y: 0.25}, brace.Point{X: 0.9, Y: 0.25}, "pair (0.1, 0.1)")
	pair.Label.Offset = brace.Offset{X: 0.1, Y: 0.1}
	pair.TextStyle.Font.Size = vg.Points(10)
	p.Add(pair)

	normal := brace.NewPlotter(brace.Point{X: 0.1, Y: 0.65}, brace.Point{X: 0.9, Y: 0.65}, "normal -0.15")
	normal.Label.Offset = brace.Offset{Normal: -0.15}
	normal.TextStyle.Font.Size = vg.Points(10)
	normal.LineStyle.Color = color.RGBA{R: 0xD7, G: 0x19, B: 0x1B, A: 0xFF}
	p.Add(normal)
	return p
}

// aspectPanel switches the pixel normalization off, so the brace
// radius lives in data units and stretches with the axes.
func aspectPanel(sty quickplot.Style) *plot.Plot {
	p := newPanel(sty, "equal aspect")
	p.X.Min, p.X.Max = 0, 4
	p.Y.Min, p.Y.Max = 0, 1

	b := brace.NewPlotter(brace.Point{X: 0.5, Y: 0.3}, brace.Point{X: 3.5, Y: 0.3}, "data-unit radius")
	b.Config.EqualAspect = true
	b.Config.Curvature = 0.05
	b.TextStyle.Font.Size = vg.Points(10)
	p.Add(b)
	return p
}
