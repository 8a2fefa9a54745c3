package quickplot

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func testPlot(t *testing.T) *plot.Plot {
	t.Helper()
	p := plot.New()
	ln, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}})
	require.NoError(t, err)
	p.Add(ln)
	return p
}

func TestExportFormats(t *testing.T) {
	fig := NewFigure(3*vg.Inch, 2*vg.Inch)
	fig.AddPlot(testPlot(t), Rect{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.9})

	base := filepath.Join(t.TempDir(), "fig")
	formats := []string{"png", "jpg", "bmp", "pdf", "svg", "tiff", "eps", "tex"}
	require.NoError(t, fig.Export(base, formats, 96))

	for _, ext := range formats {
		fi, err := os.Stat(base + "." + ext)
		require.NoError(t, err, ext)
		assert.Greater(t, fi.Size(), int64(0), ext)
	}
}

func TestExportRasterDPI(t *testing.T) {
	fig := NewFigure(2*vg.Inch, 2*vg.Inch)
	fig.AddPlot(testPlot(t), Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})

	base := filepath.Join(t.TempDir(), "fig")
	require.NoError(t, fig.Export(base, []string{"png", "bmp"}, 150))

	decode := func(name string, dec func(io.Reader) (image.Image, error)) image.Image {
		f, err := os.Open(name)
		require.NoError(t, err)
		defer f.Close()
		img, err := dec(f)
		require.NoError(t, err)
		return img
	}

	// 2 inches at 150 dpi on every raster format, not just the
	// vgimg-native ones.
	got := decode(base+".png", png.Decode)
	assert.Equal(t, 300, got.Bounds().Dx())
	assert.Equal(t, 300, got.Bounds().Dy())
	assert.Equal(t, got.Bounds(), decode(base+".bmp", bmp.Decode).Bounds())
}

func TestExportSkipsUnsupported(t *testing.T) {
	fig := NewFigure(2*vg.Inch, 2*vg.Inch)
	fig.AddPlot(testPlot(t), Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})

	base := filepath.Join(t.TempDir(), "fig")
	require.NoError(t, fig.Export(base, []string{"webp", "png"}, 96))

	_, err := os.Stat(base + ".webp")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(base + ".png")
	assert.NoError(t, err)
}

func TestExportDefaults(t *testing.T) {
	fig := NewFigure(2*vg.Inch, 2*vg.Inch)
	fig.AddPlot(testPlot(t), Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})

	// A stale extension on the base is stripped; nil formats mean jpg.
	base := filepath.Join(t.TempDir(), "fig.tiff")
	require.NoError(t, fig.Export(base, nil, 0))

	_, err := os.Stat(filepath.Join(filepath.Dir(base), "fig.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(base)
	assert.True(t, os.IsNotExist(err))
}

func TestExportPlot(t *testing.T) {
	base := filepath.Join(t.TempDir(), "single")
	require.NoError(t, ExportPlot(testPlot(t), 3*vg.Inch, 2*vg.Inch, base, []string{"png"}, 96))

	fi, err := os.Stat(base + ".png")
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}
