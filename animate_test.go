package quickplot

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestExportGIF(t *testing.T) {
	var figs []*Figure
	for i := 0; i < 3; i++ {
		p := plot.New()
		ln, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: float64(i)}})
		require.NoError(t, err)
		p.Add(ln)

		fig := NewFigure(2*vg.Inch, 2*vg.Inch)
		fig.AddPlot(p, Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})
		figs = append(figs, fig)
	}

	base := filepath.Join(t.TempDir(), "anim.png")
	require.NoError(t, ExportGIF(figs, base, 0, 72))

	f, err := os.Open(filepath.Join(filepath.Dir(base), "anim.gif"))
	require.NoError(t, err)
	defer f.Close()

	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{5, 5, 5}, g.Delay)
}

func TestExportGIFEmpty(t *testing.T) {
	err := ExportGIF(nil, filepath.Join(t.TempDir(), "anim"), 5, 72)
	assert.Error(t, err)
}
