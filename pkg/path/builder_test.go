package path

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"

	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

func TestBuilderRoundedRect(t *testing.T) {
	r := graphics.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	p, err := NewBuilder().RoundedRect(r, roundrect.Uniform(3)).Build()
	require.NoError(t, err)

	want, err := roundrect.NewPath(r, roundrect.Uniform(3))
	require.NoError(t, err)
	assert.Equal(t, want.Segments, p.Segments)
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder().
		MoveTo(0, 0).
		RoundedRect(graphics.Rect{Width: -1, Height: 4}, nil).
		LineTo(5, 5).
		Close()

	require.ErrorIs(t, b.Err(), roundrect.ErrInvalidRectangle)
	p, err := b.Build()
	assert.Error(t, err)
	assert.Len(t, p.Segments, 1, "segments after the failure are dropped")

	b.Clear()
	assert.NoError(t, b.Err())
	p, err = b.Rect(0, 0, 1, 1).Build()
	require.NoError(t, err)
	assert.Len(t, p.Segments, 5)
}

func TestBuilderCircle(t *testing.T) {
	p, err := NewBuilder().Circle(5, 5, 5).Build()
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)

	arc := p.Segments[1].Arc
	assert.InDelta(t, 2*math.Pi, arc.Sweep(), 1e-12)

	b := p.Bounds()
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 10, b.Width, 1e-9)
	assert.InDelta(t, 10, b.Height, 1e-9)
}

func TestArcToCubics(t *testing.T) {
	a := graphics.Arc{Center: graphics.Pt(0, 0), Radius: 10, StartAngle: 0, EndAngle: math.Pi, Clockwise: true}
	curves := ArcToCubics(a)
	require.Len(t, curves, 2)

	assert.InDelta(t, 10, curves[0].P0.X, 1e-9)
	assert.InDelta(t, 0, curves[0].P0.Y, 1e-9)
	assert.InDelta(t, -10, curves[1].P3.X, 1e-9)
	assert.InDelta(t, 0, curves[1].P3.Y, 1e-9)
	assert.Equal(t, curves[0].P3, curves[1].P0)

	// The midpoint of each cubic lies on the circle within the usual
	// quarter-circle approximation error.
	for _, c := range curves {
		mid := c.P0.Scale(0.125).
			Add(c.C1.Scale(0.375)).
			Add(c.C2.Scale(0.375)).
			Add(c.P3.Scale(0.125))
		assert.InDelta(t, 10, mid.Length(), 10*3e-4)
	}

	assert.Empty(t, ArcToCubics(graphics.Arc{Radius: 0, EndAngle: 1, Clockwise: true}))
}

func TestArcToCubicsCounterclockwise(t *testing.T) {
	a := graphics.Arc{Radius: 1, StartAngle: 0, EndAngle: -math.Pi / 2}
	curves := ArcToCubics(a)
	require.Len(t, curves, 1)
	assert.InDelta(t, 0, curves[0].P3.X, 1e-12)
	assert.InDelta(t, -1, curves[0].P3.Y, 1e-12)
	// Leaving (1, 0) towards negative Y.
	assert.Less(t, curves[0].C1.Y, 0.0)
}

func TestToVectorFillsRoundedRect(t *testing.T) {
	p, err := roundrect.NewPath(graphics.Rect{X: 0, Y: 0, Width: 32, Height: 32}, roundrect.Uniform(12))
	require.NoError(t, err)

	r := vector.NewRasterizer(32, 32)
	ToVector(p, graphics.Identity(), r)

	dst := image.NewAlpha(image.Rect(0, 0, 32, 32))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	assert.Equal(t, uint8(0), dst.AlphaAt(0, 0).A, "rounded corner stays empty")
	assert.Equal(t, uint8(0), dst.AlphaAt(31, 31).A)
	assert.GreaterOrEqual(t, dst.AlphaAt(16, 16).A, uint8(0xf0))
	assert.GreaterOrEqual(t, dst.AlphaAt(16, 0).A, uint8(0xf0), "straight edge is covered")
}

func TestToVectorAppliesMatrix(t *testing.T) {
	p := graphics.NewPath()
	p.Rect(graphics.Rect{Width: 4, Height: 4})

	r := vector.NewRasterizer(16, 16)
	ToVector(p, graphics.Scale(2, 2).Multiply(graphics.Translate(8, 8)), r)

	dst := image.NewAlpha(image.Rect(0, 0, 16, 16))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	assert.Equal(t, uint8(0), dst.AlphaAt(4, 4).A)
	assert.GreaterOrEqual(t, dst.AlphaAt(12, 12).A, uint8(0xf0))
}

func TestFlatten(t *testing.T) {
	p, err := roundrect.NewPath(graphics.Rect{Width: 100, Height: 50}, roundrect.Radii{TopLeft: 10})
	require.NoError(t, err)

	lines := Flatten(p, 0.1)
	require.Len(t, lines, 1)
	pl := lines[0]
	assert.True(t, pl.Closed)
	assert.Equal(t, graphics.Pt(10, 0), pl.Points[0])

	// Corners plus the arc's chord points, all within tolerance of the circle.
	assert.Greater(t, len(pl.Points), 6)
	for _, pt := range pl.Points[4:] {
		d := pt.Sub(graphics.Pt(10, 10)).Length()
		assert.InDelta(t, 10, d, 1e-9)
	}
}

func TestFlattenLineAfterClose(t *testing.T) {
	p := graphics.NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.Close()
	p.LineTo(1, 3)

	lines := Flatten(p, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, []graphics.Point{{X: 1, Y: 1}, {X: 1, Y: 3}}, lines[1].Points)
	assert.False(t, lines[1].Closed)
}

func TestArcSteps(t *testing.T) {
	assert.Equal(t, 1, arcSteps(0.1, math.Pi/2, 0.25))
	assert.Greater(t, arcSteps(100, math.Pi/2, 0.25), arcSteps(10, math.Pi/2, 0.25))
}
