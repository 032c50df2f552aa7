package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/iw2rmb/strands/arrow"
	"github.com/iw2rmb/strands/frame"
)

func isInk(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestRender_EmptyFrameIsBackground(t *testing.T) {
	g := frame.DefaultGeometry()
	img, err := Render(frame.Frame{Lines: 1}, g, Options{})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 50, 100), img.Bounds())
	for y := range img.Bounds().Dy() {
		for x := range img.Bounds().Dx() {
			require.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRender_ArrowShaftIsInked(t *testing.T) {
	g := frame.DefaultGeometry()
	c := frame.Cell{Letter: 'A', Arrows: arrow.Set(0).Add(arrow.East)}
	f := frame.Frame{Lines: 1, Columns: 2, Cells: []frame.Cell{c}}

	img, err := Render(f, g, Options{LineWidth: 2})
	require.NoError(t, err)

	start, shaft := g.Arrow(c, arrow.East)
	mid := start.Add(shaft.Mul(0.5))
	assert.True(t, isInk(img.At(int(mid.X), int(mid.Y))), "shaft midpoint at %v", mid)

	// Nothing is drawn toward the west.
	west, _ := g.Arrow(c, arrow.West)
	assert.False(t, isInk(img.At(int(west.X)-2, int(west.Y))))
}

func TestRender_LetterIsDrawnAtCenter(t *testing.T) {
	g := frame.DefaultGeometry()
	f := frame.Frame{Lines: 1, Columns: 1, Cells: []frame.Cell{{Letter: 'H'}}}

	img, err := Render(f, g, Options{})
	require.NoError(t, err)

	center := g.Center(f.Cells[0])
	half := int(g.FontSize / 2)
	inked := 0
	for y := int(center.Y) - half; y < int(center.Y)+half; y++ {
		for x := int(center.X) - half; x < int(center.X)+half; x++ {
			if isInk(img.At(x, y)) {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
}

func TestRender_ArrowInkOverridesInk(t *testing.T) {
	g := frame.DefaultGeometry()
	red := color.RGBA{255, 0, 0, 255}
	c := frame.Cell{Letter: 'A', Arrows: arrow.Set(0).Add(arrow.South)}
	f := frame.Frame{Lines: 2, Columns: 1, Cells: []frame.Cell{c}}

	img, err := Render(f, g, Options{ArrowInk: red, LineWidth: 3})
	require.NoError(t, err)

	start, shaft := g.Arrow(c, arrow.South)
	mid := start.Add(shaft.Mul(0.5))
	assert.Equal(t, red, img.RGBAAt(int(mid.X), int(mid.Y)))
}

func TestPen_ZeroLengthLineIsDot(t *testing.T) {
	p := newPen(10, 10, 2)
	p.line(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 5, Y: 5})
	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	p.r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	assert.Equal(t, uint8(255), dst.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(0), dst.AlphaAt(0, 0).A)
}

func TestWritePNG_RoundTrips(t *testing.T) {
	g := frame.DefaultGeometry()
	f := frame.Frame{Lines: 1, Columns: 3, Cells: []frame.Cell{
		{Column: 0, Letter: 'C'},
		{Column: 1, Letter: 'A', Arrows: arrow.Set(0).Add(arrow.East)},
		{Column: 2, Letter: 'T'},
	}}

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, f, g, Options{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())
}
