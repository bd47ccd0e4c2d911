package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathAppendTracksCurrentPoint(t *testing.T) {
	p := NewPath()
	assert.True(t, p.IsEmpty())

	p.MoveTo(1, 2)
	assert.Equal(t, Pt(1, 2), p.CurrentPoint())

	p.LineTo(5, 2)
	assert.Equal(t, Pt(5, 2), p.CurrentPoint())

	p.ArcTo(Pt(5, 4), 2, -math.Pi/2, 0, true)
	cur := p.CurrentPoint()
	assert.InDelta(t, 7, cur.X, 1e-12)
	assert.InDelta(t, 4, cur.Y, 1e-12)

	p.Close()
	assert.Equal(t, Pt(1, 2), p.CurrentPoint())
	assert.Len(t, p.Segments, 4)
}

func TestPathRect(t *testing.T) {
	p := NewPath()
	p.Rect(Rect{X: 1, Y: 2, Width: 3, Height: 4})

	assert.Equal(t, []PathSegment{
		MoveTo(Pt(1, 2)),
		LineTo(Pt(4, 2)),
		LineTo(Pt(4, 6)),
		LineTo(Pt(1, 6)),
		ClosePath(),
	}, p.Segments)
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	c := p.Clone()
	c.LineTo(2, 2)

	assert.Len(t, p.Segments, 2)
	assert.Len(t, c.Segments, 3)
	assert.Equal(t, Pt(1, 1), p.CurrentPoint())
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 3)
	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, Point{}, p.CurrentPoint())
}

func TestPathBoundsIncludesArcBulge(t *testing.T) {
	// A half circle from the top of the circle to the bottom, through the
	// right-hand side, reaches x = 12 although neither endpoint does.
	p := NewPath()
	p.MoveTo(10, 0)
	p.ArcTo(Pt(10, 2), 2, -math.Pi/2, math.Pi/2, true)

	b := p.Bounds()
	assert.InDelta(t, 10, b.X, 1e-12)
	assert.InDelta(t, 0, b.Y, 1e-12)
	assert.InDelta(t, 2, b.Width, 1e-12)
	assert.InDelta(t, 4, b.Height, 1e-12)
}

func TestPathBoundsEmpty(t *testing.T) {
	assert.Equal(t, Rect{}, NewPath().Bounds())
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.ArcTo(Pt(1, 1), 1, -math.Pi/2, 0, true)

	m := Scale(2, 2).Multiply(Translate(10, 20))
	q, err := p.Transform(m)
	require.NoError(t, err)

	assert.Equal(t, MoveTo(Pt(12, 20)), q.Segments[0])
	arc := q.Segments[1].Arc
	assert.Equal(t, Pt(12, 22), arc.Center)
	assert.Equal(t, 2.0, arc.Radius)
	assert.True(t, arc.Clockwise)
}

func TestPathTransformRejectsNonUniform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)

	_, err := p.Transform(Scale(1, 2))
	assert.ErrorIs(t, err, ErrNonUniformTransform)
}

func TestSegmentEnd(t *testing.T) {
	end, ok := LineTo(Pt(3, 4)).End()
	assert.True(t, ok)
	assert.Equal(t, Pt(3, 4), end)

	_, ok = ClosePath().End()
	assert.False(t, ok)
}

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(10, 8, 2, 4)
	assert.Equal(t, Rect{X: 2, Y: 4, Width: 8, Height: 4}, r)
	assert.Equal(t, 10.0, r.MaxX())
	assert.Equal(t, 8.0, r.MaxY())
}

func TestPathSegmentString(t *testing.T) {
	assert.Equal(t, "MoveTo (16, 0)", MoveTo(Pt(16, 0)).String())
	assert.Equal(t, "LineTo (0.3333, -2.5)", LineTo(Pt(1.0/3, -2.5)).String())
	assert.Equal(t, "ArcTo center=(16, 16) r=16 180..270 cw",
		ArcTo(Arc{Center: Pt(16, 16), Radius: 16, StartAngle: math.Pi, EndAngle: 1.5 * math.Pi, Clockwise: true}).String())
	assert.Equal(t, "ArcTo center=(0, 0) r=1 90..0 ccw",
		ArcTo(Arc{Radius: 1, StartAngle: math.Pi / 2}).String())
	assert.Equal(t, "Close", ClosePath().String())
	assert.Equal(t, "(0, 0)", Pt(-1e-9, 0).String())
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 10, Width: 4, Height: 4}
	b := Rect{X: -2, Y: 0, Width: 3, Height: 5}
	assert.Equal(t, Rect{X: -2, Y: 0, Width: 6, Height: 14}, a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
}
