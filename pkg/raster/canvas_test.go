package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// assertNear allows a couple of units of coverage rounding per channel.
func assertNear(t *testing.T, want color.RGBA, got color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	g := rgba(got)
	assert.InDelta(t, want.R, g.R, 2, msgAndArgs...)
	assert.InDelta(t, want.G, g.G, 2, msgAndArgs...)
	assert.InDelta(t, want.B, g.B, 2, msgAndArgs...)
	assert.InDelta(t, want.A, g.A, 2, msgAndArgs...)
}

func TestNewCanvasIsWhite(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(c.GetPixel(2, 2)))
	assert.Equal(t, color.Transparent, c.GetPixel(10, 10))
}

func TestClearUsesBackground(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetBackground(color.Black)
	c.Clear()
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, rgba(c.GetPixel(1, 1)))
}

func TestDrawRoundedRectFill(t *testing.T) {
	c := NewCanvas(40, 40)
	red := color.RGBA{0xff, 0, 0, 0xff}

	err := c.DrawRoundedRect(graphics.Rect{Width: 40, Height: 40}, roundrect.Radii{TopLeft: 16}, red, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(c.GetPixel(0, 0)), "rounded corner keeps background")
	assertNear(t, red, c.GetPixel(39, 0), "sharp corner is filled")
	assertNear(t, red, c.GetPixel(39, 39))
	assertNear(t, red, c.GetPixel(20, 20))
}

func TestDrawRoundedRectRejectsInvalidRect(t *testing.T) {
	c := NewCanvas(4, 4)
	err := c.DrawRoundedRect(graphics.Rect{Width: 4, Height: -4}, nil, color.Black, nil, 0)
	assert.ErrorIs(t, err, roundrect.ErrInvalidRectangle)
}

func TestStrokeLeavesInteriorEmpty(t *testing.T) {
	c := NewCanvas(40, 40)
	black := color.RGBA{0, 0, 0, 0xff}

	err := c.DrawRoundedRect(graphics.Rect{X: 5, Y: 5, Width: 30, Height: 30}, roundrect.Uniform(8), nil, black, 2)
	require.NoError(t, err)

	assertNear(t, black, c.GetPixel(20, 5), "top edge is stroked")
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(c.GetPixel(20, 20)), "interior untouched")
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(c.GetPixel(5, 5)), "corner outside the arc untouched")
}

func TestSetTransformScales(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetTransform(graphics.Scale(2, 2))
	blue := color.RGBA{0, 0, 0xff, 0xff}

	c.DrawRect(graphics.Rect{Width: 5, Height: 5}, blue, nil, 0)

	assertNear(t, blue, c.GetPixel(8, 8))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(c.GetPixel(12, 12)))
}

func TestStrokeToPathSkipsDegenerateSegments(t *testing.T) {
	p := strokeToPath(nil, 1)
	assert.True(t, p.IsEmpty())
}
