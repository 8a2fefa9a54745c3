package brace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestPlotterDraw(t *testing.T) {
	p := plot.New()
	b := NewPlotter(Point{0.2, 0.3}, Point{1.7, 0.8}, "span")
	p.Add(b)
	p.X.Min, p.X.Max = 0, 2
	p.Y.Min, p.Y.Max = 0, 1

	c := vgimg.New(vg.Points(400), vg.Points(300))
	p.Draw(draw.New(c))
}

func TestPlotterDrawLog(t *testing.T) {
	p := plot.New()
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	b := NewPlotter(Point{2, 0.2}, Point{50, 0.2}, "decades")
	p.Add(b)
	p.X.Min, p.X.Max = 1, 100
	p.Y.Min, p.Y.Max = 0, 1

	c := vgimg.New(vg.Points(400), vg.Points(300))
	p.Draw(draw.New(c))
}

func TestPlotterDataRange(t *testing.T) {
	b := NewPlotter(Point{3, -1}, Point{-2, 4}, "")
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, -2.0, xmin)
	assert.Equal(t, 3.0, xmax)
	assert.Equal(t, -1.0, ymin)
	assert.Equal(t, 4.0, ymax)
}

func TestScalesOf(t *testing.T) {
	p := plot.New()
	assert.Equal(t, Scales{}, ScalesOf(p))

	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LogScale{}}
	assert.Equal(t, Scales{X: Log, Y: Log}, ScalesOf(p))
}
