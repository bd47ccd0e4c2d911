package graphics

import (
	"fmt"
	"math"
	"strconv"
)

// PathOp represents a path operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpArcTo
	PathOpClose
)

func (op PathOp) String() string {
	switch op {
	case PathOpMoveTo:
		return "MoveTo"
	case PathOpLineTo:
		return "LineTo"
	case PathOpArcTo:
		return "ArcTo"
	case PathOpClose:
		return "Close"
	}
	return "PathOp(?)"
}

// PathSegment represents a single segment in a path.
// Point is set for MoveTo and LineTo, Arc for ArcTo.
// Segments are plain values and can be compared with ==.
type PathSegment struct {
	Op    PathOp
	Point Point
	Arc   Arc
}

// MoveTo returns a segment starting a new subpath at p.
func MoveTo(p Point) PathSegment {
	return PathSegment{Op: PathOpMoveTo, Point: p}
}

// LineTo returns a straight segment ending at p.
func LineTo(p Point) PathSegment {
	return PathSegment{Op: PathOpLineTo, Point: p}
}

// ArcTo returns a circular arc segment.
func ArcTo(a Arc) PathSegment {
	return PathSegment{Op: PathOpArcTo, Arc: a}
}

// ClosePath returns a segment closing the current subpath.
func ClosePath() PathSegment {
	return PathSegment{Op: PathOpClose}
}

// End returns the point the segment leaves the pen at. Close segments
// have no end point of their own and return false.
func (s PathSegment) End() (Point, bool) {
	switch s.Op {
	case PathOpMoveTo, PathOpLineTo:
		return s.Point, true
	case PathOpArcTo:
		return s.Arc.EndPoint(), true
	}
	return Point{}, false
}

// String formats the segment for display, with angles in degrees.
func (s PathSegment) String() string {
	switch s.Op {
	case PathOpMoveTo, PathOpLineTo:
		return fmt.Sprintf("%s %s", s.Op, s.Point)
	case PathOpArcTo:
		dir := "cw"
		if !s.Arc.Clockwise {
			dir = "ccw"
		}
		return fmt.Sprintf("ArcTo center=%s r=%s %s..%s %s", s.Arc.Center, num(s.Arc.Radius),
			num(s.Arc.StartAngle*180/math.Pi), num(s.Arc.EndAngle*180/math.Pi), dir)
	}
	return s.Op.String()
}

// num prints v with at most four decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // normalizes -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Path represents a graphics path (a sequence of connected lines and arcs).
type Path struct {
	Segments []PathSegment
	current  Point
	start    Point // Start of current subpath
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		Segments: make([]PathSegment, len(p.Segments)),
		current:  p.current,
		start:    p.start,
	}
	copy(clone.Segments, p.Segments)
	return clone
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Append(MoveTo(Point{x, y}))
}

// LineTo draws a line from the current point to the given point.
func (p *Path) LineTo(x, y float64) {
	p.Append(LineTo(Point{x, y}))
}

// ArcTo draws a circular arc. If the current point differs from the
// arc's start point, consumers draw a straight line to it first.
func (p *Path) ArcTo(center Point, radius, startAngle, endAngle float64, clockwise bool) {
	p.Append(ArcTo(Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	}))
}

// Close closes the current subpath with a line back to the start.
func (p *Path) Close() {
	p.Append(ClosePath())
}

// Append adds segments to the path, tracking the current point.
func (p *Path) Append(segs ...PathSegment) {
	for _, seg := range segs {
		switch seg.Op {
		case PathOpMoveTo:
			p.current = seg.Point
			p.start = seg.Point
		case PathOpLineTo:
			p.current = seg.Point
		case PathOpArcTo:
			p.current = seg.Arc.EndPoint()
		case PathOpClose:
			p.current = p.start
		}
		p.Segments = append(p.Segments, seg)
	}
}

// Rect adds a rectangle to the path.
func (p *Path) Rect(r Rect) {
	p.MoveTo(r.MinX(), r.MinY())
	p.LineTo(r.MaxX(), r.MinY())
	p.LineTo(r.MaxX(), r.MaxY())
	p.LineTo(r.MinX(), r.MaxY())
	p.Close()
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.current = Point{}
	p.start = Point{}
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of the path.
func (p *Path) Bounds() Rect {
	if len(p.Segments) == 0 {
		return Rect{}
	}

	minX := math.MaxFloat64
	minY := math.MaxFloat64
	maxX := -math.MaxFloat64
	maxY := -math.MaxFloat64

	add := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case PathOpMoveTo, PathOpLineTo:
			add(seg.Point)
		case PathOpArcTo:
			add(seg.Arc.StartPoint())
			add(seg.Arc.EndPoint())
			for _, pt := range seg.Arc.extremes() {
				add(pt)
			}
		}
	}

	if minX == math.MaxFloat64 {
		return Rect{}
	}

	return NewRect(minX, minY, maxX, maxY)
}

// Transform maps all points of the path through m. Arcs only survive a
// uniform scale plus translation, so any other matrix is rejected.
func (p *Path) Transform(m Matrix) (*Path, error) {
	s, ok := m.UniformScale()
	if !ok {
		return nil, ErrNonUniformTransform
	}

	result := NewPath()
	for _, seg := range p.Segments {
		switch seg.Op {
		case PathOpMoveTo, PathOpLineTo:
			seg.Point = m.TransformPoint(seg.Point)
		case PathOpArcTo:
			seg.Arc.Center = m.TransformPoint(seg.Arc.Center)
			seg.Arc.Radius *= s
		}
		result.Append(seg)
	}
	return result, nil
}
