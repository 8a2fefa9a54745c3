// Command scatterfig draws the Antarctic meltwater scatter figure:
// monthly RACMO snowmelt against total meltwater area on log-log axes,
// month coded by marker shape and ice-sheet region by marker color.
// The input CSV is generated on first run from a seeded mock
// configuration, so the figure is reproducible from nothing.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Arafatk/glot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/zbhgis/quickplot"
	"github.com/zbhgis/quickplot/brace"
	"github.com/zbhgis/quickplot/datagen"
	"github.com/zbhgis/quickplot/markers"
	"github.com/zbhgis/quickplot/trend"
)

// pointSize is the marker area in points squared; glyph radii derive
// from it by the same square-root sizing the legend markers use.
const pointSize = 36

var monthGlyphs = map[string]draw.GlyphDrawer{
	"November": draw.PlusGlyph{},
	"December": draw.RingGlyph{},
	"January":  markers.StarGlyph{},
	"February": draw.SquareGlyph{},
}

var regionColors = map[string]color.Color{
	"EAIS": color.RGBA{R: 0x01, G: 0x01, B: 0x01, A: 0xFF},
	"AP":   color.RGBA{R: 0xD7, G: 0x19, B: 0x1B, A: 0xFF},
	"WAIS": color.RGBA{R: 0x25, G: 0x25, B: 0xE6, A: 0xFF},
}

var (
	monthOrder  = []string{"November", "December", "January", "February"}
	regionOrder = []string{"EAIS", "AP", "WAIS"}
)

func main() {
	csvPath, out, formats, dpi, seed, rows, regen, fitTrend, preview, stylePath := flags()

	sty := quickplot.DefaultStyle()
	if stylePath != "" {
		var err error
		sty, err = quickplot.LoadStyle(stylePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	ensureData(csvPath, rows, seed, regen)
	groups := readGroups(csvPath)

	if preview {
		previewGroups(groups)
	}

	p := scatterPlot(groups, sty)

	if fitTrend {
		addTrend(p, groups, sty)
	}

	panels, err := quickplot.NewGrid(1, 1).Panels()
	if err != nil {
		log.Fatal(err)
	}

	fig := quickplot.NewFigure(8*vg.Inch, 6*vg.Inch)
	fig.AddPlot(p, panels[0])
	fig.Labels(panels, quickplot.LabelSpec{
		Seed:    "a",
		Offsets: []quickplot.Offset{{X: -0.05, Y: 1.05}},
	})

	if err := fig.Export(out, formats, dpi); err != nil {
		log.Fatal(err)
	}
}

func flags() (
	string, string, []string, int, int64, int, bool, bool, bool, string,
) {
	var csvPath, out, formats, stylePath string
	var dpi, rows int
	var seed int64
	var regen, fitTrend, preview bool

	flag.StringVar(&csvPath, "csv", "scatter_data.csv", "input CSV, generated when missing")
	flag.StringVar(&out, "out", "scatter", "output base name")
	flag.StringVar(&formats, "formats", "jpg", "comma-separated export formats")
	flag.IntVar(&dpi, "dpi", quickplot.DefaultDPI, "raster export resolution")
	flag.Int64Var(&seed, "seed", 13, "mock data seed")
	flag.IntVar(&rows, "rows", 120, "mock data sample count")
	flag.BoolVar(&regen, "regen", false, "regenerate the CSV even when present")
	flag.BoolVar(&fitTrend, "trend", false, "overlay a fitted power law")
	flag.BoolVar(&preview, "preview", false, "open an interactive gnuplot preview")
	flag.StringVar(&stylePath, "style", "", "TOML style file overriding the defaults")
	flag.Parse()

	if rows < 1 {
		fmt.Println("flag.Parse(): -rows must be at least 1.")
		os.Exit(1)
	}

	return csvPath, out, strings.Split(formats, ","), dpi, seed, rows, regen, fitTrend, preview, stylePath
}

// ensureData writes the mock CSV when it is missing or a regeneration
// is asked for: log-spread snowmelt and area columns plus uniform
// region and month picks.
func ensureData(path string, rows int, seed int64, regen bool) {
	if _, err := os.Stat(path); err == nil && !regen {
		return
	}

	err := datagen.Write(path, datagen.Config{
		Rows:      rows,
		Seed:      seed,
		Overwrite: true,
		Fields: []datagen.Field{
			{Name: "snowmelt", Kind: datagen.Float, Min: 0.05, Max: 60, LogScale: true, Decimals: 2},
			{Name: "area total", Kind: datagen.Int, Min: 1, Max: 800, LogScale: true},
			{Name: "type", Kind: datagen.Choice, Choices: regionOrder, Weights: []float64{1, 1, 1}},
			{Name: "time", Kind: datagen.Choice, Choices: monthOrder, Weights: []float64{1, 1, 1, 1}},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %s: %d rows, seed %d\n", path, rows, seed)
}

type group struct {
	region, month string
	xs, ys        []float64
}

// readGroups loads the CSV and splits the points by (region, month),
// ordered region-major the way the legends list them.
func readGroups(path string) []group {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(records) < 2 {
		log.Fatalf("%s has no data rows", path)
	}

	snowCol, areaCol, typeCol, timeCol := -1, -1, -1, -1
	for col, heading := range records[0] {
		switch heading {
		case "snowmelt":
			snowCol = col
		case "area total":
			areaCol = col
		case "type":
			typeCol = col
		case "time":
			timeCol = col
		}
	}
	if snowCol < 0 || areaCol < 0 || typeCol < 0 || timeCol < 0 {
		log.Fatalf("%s: need snowmelt, area total, type and time columns", path)
	}

	byKey := make(map[[2]string]*group)
	for i, rec := range records[1:] {
		x, err := strconv.ParseFloat(rec[snowCol], 64)
		if err != nil {
			log.Fatalf("row %d: bad snowmelt value %q", i+2, rec[snowCol])
		}
		y, err := strconv.ParseFloat(rec[areaCol], 64)
		if err != nil {
			log.Fatalf("row %d: bad area total value %q", i+2, rec[areaCol])
		}
		region, month := rec[typeCol], rec[timeCol]
		if _, ok := regionColors[region]; !ok {
			log.Fatalf("row %d: unknown region %q", i+2, region)
		}
		if _, ok := monthGlyphs[month]; !ok {
			log.Fatalf("row %d: unknown month %q", i+2, month)
		}

		key := [2]string{region, month}
		g, ok := byKey[key]
		if !ok {
			g = &group{region: region, month: month}
			byKey[key] = g
		}
		g.xs = append(g.xs, x)
		g.ys = append(g.ys, y)
	}

	var groups []group
	for _, region := range regionOrder {
		for _, month := range monthOrder {
			if g, ok := byKey[[2]string{region, month}]; ok {
				groups = append(groups, *g)
			}
		}
	}
	return groups
}

// scatterPlot builds the log-log scatter with both legends and the
// snowmelt band brace.
func scatterPlot(groups []group, sty quickplot.Style) *plot.Plot {
	p := plot.New()
	sty.Apply(p)

	p.X.Label.Text = "RACMO snowmelt (Gt month)"
	p.Y.Label.Text = "Monthly surface meltwater\narea total (km²)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min, p.X.Max = 0.031, 100
	p.Y.Min, p.Y.Max = 0.1, 10000

	radius := markerRadius()
	for _, g := range groups {
		pts := make(plotter.XYs, len(g.xs))
		for i := range g.xs {
			pts[i] = plotter.XY{X: g.xs[i], Y: g.ys[i]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			log.Fatal(err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Shape:  monthGlyphs[g.month],
			Radius: radius,
			Color:  regionColors[g.region],
		}
		p.Add(sc)
	}

	monthLegend(p, radius)
	regionLegend(p)
	addBrace(p)
	return p
}

func markerRadius() vg.Length {
	return vg.Points(math.Sqrt(4 / 3.14 * pointSize) / 2)
}

// monthLegend lists the marker shapes in black inside the top left
// corner.
func monthLegend(p *plot.Plot, radius vg.Length) {
	for _, month := range monthOrder {
		thumb, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
		if err != nil {
			log.Fatal(err)
		}
		thumb.GlyphStyle = draw.GlyphStyle{
			Shape:  monthGlyphs[month],
			Radius: radius,
			Color:  color.Black,
		}
		p.Legend.Add(month, thumb)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(12)
	p.Legend.YOffs = vg.Points(-2)
	p.Legend.TextStyle.Font.Size = vg.Points(12)
}

// regionLegend stacks the region names as colored text, the text-only
// second legend of the figure.
func regionLegend(p *plot.Plot) {
	for i, region := range regionOrder {
		sty := quickplot.NewTextStyle(vg.Points(12), regionColors[region])
		sty.XAlign = text.XLeft
		sty.YAlign = text.YTop
		mark, err := quickplot.TextAt(quickplot.CanvasSpace,
			quickplot.Point{X: 0.3, Y: 0.98 - 0.055*float64(i)}, region, sty)
		if err != nil {
			log.Fatal(err)
		}
		p.Add(mark)
	}
}

// addBrace groups the 1 to 10 Gt snowmelt band from above the point
// cloud.
func addBrace(p *plot.Plot) {
	b := brace.NewPlotter(brace.Point{X: 1, Y: 2000}, brace.Point{X: 10, Y: 2000}, "1-10 Gt")
	b.TextStyle.Font.Size = vg.Points(12)
	p.Add(b)
}

// addTrend fits area = a·snowmelt^b across every group and overlays the
// fitted line dashed, with a legend entry reporting the parameters.
func addTrend(p *plot.Plot, groups []group, sty quickplot.Style) {
	var xs, ys []float64
	for _, g := range groups {
		xs = append(xs, g.xs...)
		ys = append(ys, g.ys...)
	}

	a, b, err := trend.PowerLaw(xs, ys)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Power-law fit: area = %.3g * snowmelt^%.3g\n", a, b)

	curve := trend.Curve(func(x float64) float64 { return a * math.Pow(x, b) },
		floats.Min(xs), floats.Max(xs), 200)
	ln, err := plotter.NewLine(curve)
	if err != nil {
		log.Fatal(err)
	}
	ln.LineStyle = sty.LineStyle()
	ln.LineStyle.Color = color.Gray{Y: 0x60}
	ln.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(ln)
	p.Legend.Add(fmt.Sprintf("y = %.2f x^%.2f", a, b), ln)
}

// previewGroups opens the raw groups in an interactive gnuplot window,
// one point group per (region, month).
func previewGroups(groups []group) {
	plt, err := glot.NewPlot(2, true, false)
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range groups {
		plt.AddPointGroup(fmt.Sprintf("%s (%s)", g.region, g.month), "points", [][]float64{g.xs, g.ys})
	}
	plt.SetTitle("Antarctic meltwater scatter")
	plt.SetXLabel("RACMO snowmelt (Gt month)")
	plt.SetYLabel("Monthly meltwater area (km²)")
	plt.SetXrange(0, 60)
	plt.SetYrange(0, 800)
}
