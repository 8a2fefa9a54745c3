package quickplot

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ExportGIF renders the figures as the frames of an animated GIF at
// base.gif, delay in hundredths of a second per frame (zero means 5).
// Every frame shares a palette quantized from the last figure, so a
// sequence whose final frame carries the full color range animates
// without palette flicker. Any extension on base is stripped.
func ExportGIF(figs []*Figure, base string, delay, dpi int) error {
	if len(figs) == 0 {
		return fmt.Errorf("quickplot: gif needs at least one frame")
	}
	if delay <= 0 {
		delay = 5
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	render := func(f *Figure) image.Image {
		c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
		f.Draw(vgdraw.New(c))
		return c.Image()
	}

	last := render(figs[len(figs)-1])
	shared := quantize(last).Palette

	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(figs)),
		Delay: make([]int, len(figs)),
	}
	for i, f := range figs {
		img := last
		if i != len(figs)-1 {
			img = render(f)
		}
		frame := image.NewPaletted(img.Bounds(), shared)
		draw.Draw(frame, img.Bounds(), img, image.Point{}, draw.Over)
		anim.Image[i] = frame
		anim.Delay[i] = delay
	}

	name := base + ".gif"
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("quickplot: %w", err)
	}
	err = gif.EncodeAll(out, anim)
	cerr := out.Close()
	if err != nil {
		return fmt.Errorf("quickplot: export %s: %w", name, err)
	}
	if cerr != nil {
		return fmt.Errorf("quickplot: export %s: %w", name, cerr)
	}
	return nil
}

func quantize(img image.Image) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(p, img.Bounds(), img, image.Point{}, draw.Over)
	return p
}
