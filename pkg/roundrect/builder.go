// Package roundrect builds the outline of a rectangle whose corners are
// rounded with independent radii.
//
// The outline starts on the top edge and runs clockwise on screen
// (Y pointing down): top-left, top-right, bottom-right, bottom-left.
// Each rounded corner contributes a straight line to its tangent point
// followed by a quarter-circle arc; each sharp corner contributes a line to
// its vertex.
package roundrect

import (
	"math"

	"roundrect/pkg/graphics"
)

// cornerArc describes how one corner is drawn. sx and sy point from the
// corner vertex towards the rectangle interior.
type cornerArc struct {
	corner     Corner
	sx, sy     float64
	startAngle float64
	entry      func(r graphics.Rect, rad float64) graphics.Point
}

// traversal lists the corners in the order they are visited after the
// start point. Every arc sweeps a quarter turn with increasing angle.
var traversal = [...]cornerArc{
	{TopRight, -1, 1, -math.Pi / 2, func(r graphics.Rect, rad float64) graphics.Point {
		return graphics.Pt(r.MaxX()-rad, r.MinY())
	}},
	{BottomRight, -1, -1, 0, func(r graphics.Rect, rad float64) graphics.Point {
		return graphics.Pt(r.MaxX(), r.MaxY()-rad)
	}},
	{BottomLeft, 1, -1, math.Pi / 2, func(r graphics.Rect, rad float64) graphics.Point {
		return graphics.Pt(r.MinX()+rad, r.MaxY())
	}},
	{TopLeft, 1, 1, math.Pi, func(r graphics.Rect, rad float64) graphics.Point {
		return graphics.Pt(r.MinX(), r.MinY()+rad)
	}},
}

// vertex returns the corner point of rect named by c.
func vertex(r graphics.Rect, c Corner) graphics.Point {
	switch c {
	case TopRight:
		return graphics.Pt(r.MaxX(), r.MinY())
	case BottomRight:
		return graphics.Pt(r.MaxX(), r.MaxY())
	case BottomLeft:
		return graphics.Pt(r.MinX(), r.MaxY())
	}
	return graphics.Pt(r.MinX(), r.MinY())
}

// Build returns the segments outlining rect with the corners rounded as
// requested by spec. The first segment is a MoveTo; the last segment ends
// on the start point, and no Close segment is emitted.
//
// Radii are clamped to half the rectangle's width and height, per corner.
// Build fails with ErrInvalidRectangle or ErrInvalidRadius on negative or
// non-finite input.
func Build(rect graphics.Rect, spec RadiusSpec) ([]graphics.PathSegment, error) {
	radii, err := EffectiveRadii(rect, spec)
	if err != nil {
		return nil, err
	}

	segs := make([]graphics.PathSegment, 0, 9)

	start := rect.Origin()
	if r := radii.TopLeft; r > 0 {
		start.X += r
	}
	segs = append(segs, graphics.MoveTo(start))

	for _, ca := range traversal {
		r := radii.Get(ca.corner)
		if r <= 0 {
			segs = append(segs, graphics.LineTo(vertex(rect, ca.corner)))
			continue
		}

		v := vertex(rect, ca.corner)
		segs = append(segs,
			graphics.LineTo(ca.entry(rect, r)),
			graphics.ArcTo(graphics.Arc{
				Center:     graphics.Pt(v.X+ca.sx*r, v.Y+ca.sy*r),
				Radius:     r,
				StartAngle: ca.startAngle,
				EndAngle:   ca.startAngle + math.Pi/2,
				Clockwise:  true,
			}),
		)
	}
	return segs, nil
}

// NewPath builds the rounded outline of rect into a new, closed path.
func NewPath(rect graphics.Rect, spec RadiusSpec) (*graphics.Path, error) {
	segs, err := Build(rect, spec)
	if err != nil {
		return nil, err
	}
	p := graphics.NewPath()
	p.Append(segs...)
	p.Close()
	return p, nil
}
