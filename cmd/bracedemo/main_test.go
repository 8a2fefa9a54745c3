package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/zbhgis/quickplot"
)

func TestPanelsDraw(t *testing.T) {
	sty := quickplot.DefaultStyle()
	for name, p := range map[string]*plot.Plot{
		"fan":    fanPanel(sty),
		"log":    logPanel(sty),
		"offset": offsetPanel(sty),
		"aspect": aspectPanel(sty),
	} {
		assert.NotPanics(t, func() {
			p.Draw(draw.New(vgimg.New(4*vg.Inch, 4*vg.Inch)))
		}, name)
	}
}
