package quickplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"gonum.org/v1/plot/vg/vgtex"
)

// DefaultDPI is the raster export resolution.
const DefaultDPI = 300

// exportFormats lists the writable formats: raster ones render at the
// requested DPI, vector ones are DPI-free.
var exportFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"bmp":  true,
	"pdf":  true,
	"svg":  true,
	"tiff": true,
	"eps":  true,
	"tex":  true,
}

// Export writes the figure once per format as base.<format>, replaying
// the recorded drawing steps onto each backend. Any extension on base
// is stripped first. Nil formats means jpg, zero dpi means DefaultDPI.
// Unsupported formats are skipped with a notice, not an error.
func (f *Figure) Export(base string, formats []string, dpi int) error {
	if len(formats) == 0 {
		formats = []string{"jpg"}
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, name := range formats {
		ext := strings.ToLower(name)
		if !exportFormats[ext] {
			fmt.Printf("Unsupported format: %q. Skipping export.\n", name)
			continue
		}
		if err := f.export(base+"."+ext, ext, dpi); err != nil {
			return err
		}
	}
	return nil
}

func (f *Figure) export(name, ext string, dpi int) error {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("quickplot: %w", err)
	}
	err = f.writeFormat(out, ext, dpi)
	cerr := out.Close()
	if err != nil {
		return fmt.Errorf("quickplot: export %s: %w", name, err)
	}
	if cerr != nil {
		return fmt.Errorf("quickplot: export %s: %w", name, cerr)
	}
	return nil
}

func (f *Figure) writeFormat(w io.Writer, ext string, dpi int) error {
	render := func(c vg.CanvasSizer) {
		f.Draw(draw.New(c))
	}
	switch ext {
	case "png", "jpg", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
		render(c)
		var wt io.WriterTo
		switch ext {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
		_, err := wt.WriteTo(w)
		return err
	case "bmp":
		c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
		render(c)
		return bmp.Encode(w, c.Image())
	case "pdf":
		c := vgpdf.New(f.Width, f.Height)
		render(c)
		_, err := c.WriteTo(w)
		return err
	case "svg":
		c := vgsvg.New(f.Width, f.Height)
		render(c)
		_, err := c.WriteTo(w)
		return err
	case "eps":
		c := vgeps.New(f.Width, f.Height)
		render(c)
		_, err := c.WriteTo(w)
		return err
	case "tex":
		c := vgtex.New(f.Width, f.Height)
		render(c)
		_, err := c.WriteTo(w)
		return err
	}
	return fmt.Errorf("unsupported format %q", ext)
}

// ExportPlot exports a single standalone plot filling a figure of the
// given size.
func ExportPlot(p *plot.Plot, w, h vg.Length, base string, formats []string, dpi int) error {
	fig := NewFigure(w, h)
	fig.AddPlot(p, Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})
	return fig.Export(base, formats, dpi)
}
