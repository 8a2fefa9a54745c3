package quickplot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestRectCanvas(t *testing.T) {
	dc := draw.New(vgimg.New(vg.Points(100), vg.Points(100)))
	sub := Rect{X0: 0.25, Y0: 0.25, X1: 0.75, Y1: 0.75}.canvas(dc)

	assert.Equal(t, vg.Length(25), sub.Min.X)
	assert.Equal(t, vg.Length(25), sub.Min.Y)
	assert.Equal(t, vg.Length(75), sub.Max.X)
	assert.Equal(t, vg.Length(75), sub.Max.Y)
}

func TestRectAt(t *testing.T) {
	dc := draw.New(vgimg.New(vg.Points(200), vg.Points(100)))
	r := Rect{X0: 0.5, Y0: 0, X1: 1, Y1: 0.5}

	// The panel-fraction origin is the panel's bottom left corner.
	assert.Equal(t, vg.Point{X: 100, Y: 0}, r.at(Offset{}, dc))
	assert.Equal(t, vg.Point{X: 200, Y: 50}, r.at(Offset{X: 1, Y: 1}, dc))
	assert.Equal(t, vg.Point{X: 150, Y: 75}, r.at(Offset{X: 0.5, Y: 1.5}, dc))
}

func TestFigureDrawOrder(t *testing.T) {
	fig := NewFigure(vg.Points(10), vg.Points(10))
	var got []int
	fig.Add(func(draw.Canvas) { got = append(got, 1) })
	fig.Add(func(draw.Canvas) { got = append(got, 2) })

	fig.Draw(draw.New(vgimg.New(fig.Width, fig.Height)))
	assert.Equal(t, []int{1, 2}, got)
}

func TestLineBetweenSpaces(t *testing.T) {
	pts := []Point{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.5}}
	sty := plotter.DefaultLineStyle

	for _, space := range []CoordSpace{DataSpace, CanvasSpace} {
		pl, err := LineBetween(space, pts, sty)
		require.NoError(t, err, space)
		require.NotNil(t, pl)
	}
	_, err := LineBetween(FigureSpace, pts, sty)
	require.Error(t, err)
	_, err = LineBetween(CoordSpace(9), pts, sty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data, canvas, figure, display")

	fig := NewFigure(vg.Points(50), vg.Points(50))
	require.NoError(t, fig.LineBetween(FigureSpace, pts, sty))
	require.NoError(t, fig.LineBetween(DisplaySpace, []Point{{X: 5, Y: 5}, {X: 45, Y: 45}}, sty))
	require.Error(t, fig.LineBetween(DataSpace, pts, sty))
	require.Error(t, fig.LineBetween(CoordSpace(-1), pts, sty))

	assert.NotPanics(t, func() {
		fig.Draw(draw.New(vgimg.New(fig.Width, fig.Height)))
	})
}

func TestSpaceLineDraw(t *testing.T) {
	p := plot.New()
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = 0, 1

	data, err := LineBetween(DataSpace, []Point{{X: 1, Y: 0.2}, {X: 9, Y: 0.8}}, plotter.DefaultLineStyle)
	require.NoError(t, err)
	frame, err := LineBetween(CanvasSpace, []Point{{X: -0.05, Y: 1}, {X: 1.05, Y: 1}}, plotter.DefaultLineStyle)
	require.NoError(t, err)
	p.Add(data, frame)

	assert.NotPanics(t, func() {
		p.Draw(draw.New(vgimg.New(vg.Points(300), vg.Points(200))))
	})
}

func TestTextAtSpaces(t *testing.T) {
	sty := NewTextStyle(vg.Points(12), color.Black)

	for _, space := range []CoordSpace{DataSpace, CanvasSpace} {
		pl, err := TextAt(space, Point{X: 0.5, Y: 0.5}, "peak", sty)
		require.NoError(t, err, space)
		require.NotNil(t, pl)
	}
	_, err := TextAt(FigureSpace, Point{}, "peak", sty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Figure.Text")
	_, err = TextAt(CoordSpace(9), Point{}, "peak", sty)
	require.Error(t, err)

	p := plot.New()
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = 0, 1
	data, err := TextAt(DataSpace, Point{X: 5, Y: 0.5}, "peak", sty)
	require.NoError(t, err)
	corner, err := TextAt(CanvasSpace, Point{X: 0.35, Y: 0.96}, "EAIS", sty)
	require.NoError(t, err)
	p.Add(data, corner)

	assert.NotPanics(t, func() {
		p.Draw(draw.New(vgimg.New(vg.Points(300), vg.Points(200))))
	})
}

func TestFigureText(t *testing.T) {
	fig := NewFigure(vg.Points(100), vg.Points(100))
	r := Rect{X0: 0, Y0: 0, X1: 1, Y1: 0.5}
	fig.Text(r, Offset{X: 0.5, Y: -0.2}, "Years", NewTextStyle(vg.Points(10), color.Black))

	assert.NotPanics(t, func() {
		fig.Draw(draw.New(vgimg.New(fig.Width, fig.Height)))
	})
}

func TestCoordSpaceString(t *testing.T) {
	assert.Equal(t, "data", DataSpace.String())
	assert.Equal(t, "canvas", CanvasSpace.String())
	assert.Equal(t, "figure", FigureSpace.String())
	assert.Equal(t, "display", DisplaySpace.String())
}
