package path

import (
	"math"

	"roundrect/pkg/graphics"

	"golang.org/x/image/vector"
)

// Cubic is a cubic Bézier segment.
type Cubic struct {
	P0, C1, C2, P3 graphics.Point
}

// ArcToCubics approximates an arc with cubic Béziers, one per quarter turn
// or less. A zero sweep or radius yields no curves.
func ArcToCubics(a graphics.Arc) []Cubic {
	sweep := a.Sweep()
	if sweep == 0 || a.Radius == 0 {
		return nil
	}

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	angleStep := sweep / float64(segments)

	// Control point distance for a circular arc of angleStep
	k := 4.0 / 3.0 * math.Tan(angleStep/4)
	r := a.Radius

	curves := make([]Cubic, 0, segments)
	for i := 0; i < segments; i++ {
		a1 := a.StartAngle + float64(i)*angleStep
		a2 := a1 + angleStep

		p1 := a.PointAt(a1)
		p2 := a.PointAt(a2)

		curves = append(curves, Cubic{
			P0: p1,
			C1: graphics.Pt(p1.X-k*r*math.Sin(a1), p1.Y+k*r*math.Cos(a1)),
			C2: graphics.Pt(p2.X+k*r*math.Sin(a2), p2.Y-k*r*math.Cos(a2)),
			P3: p2,
		})
	}
	return curves
}

// ToVector replays a graphics.Path into a golang.org/x/image/vector
// rasterizer, mapping every point through m. Arcs become cubic curves and
// every subpath is closed, as filling requires.
func ToVector(p *graphics.Path, m graphics.Matrix, rasterizer *vector.Rasterizer) {
	open := false
	var cur graphics.Point

	moveTo := func(pt graphics.Point) {
		if open {
			rasterizer.ClosePath()
		}
		x, y := m.Transform(pt.X, pt.Y)
		rasterizer.MoveTo(float32(x), float32(y))
		open = true
		cur = pt
	}
	lineTo := func(pt graphics.Point) {
		if !open {
			moveTo(pt)
			return
		}
		x, y := m.Transform(pt.X, pt.Y)
		rasterizer.LineTo(float32(x), float32(y))
		cur = pt
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			moveTo(seg.Point)
		case graphics.PathOpLineTo:
			lineTo(seg.Point)
		case graphics.PathOpArcTo:
			start := seg.Arc.StartPoint()
			if !open {
				moveTo(start)
			} else if start != cur {
				lineTo(start)
			}
			for _, c := range ArcToCubics(seg.Arc) {
				x1, y1 := m.Transform(c.C1.X, c.C1.Y)
				x2, y2 := m.Transform(c.C2.X, c.C2.Y)
				x3, y3 := m.Transform(c.P3.X, c.P3.Y)
				rasterizer.CubeTo(
					float32(x1), float32(y1),
					float32(x2), float32(y2),
					float32(x3), float32(y3),
				)
			}
			cur = seg.Arc.EndPoint()
		case graphics.PathOpClose:
			if open {
				rasterizer.ClosePath()
				open = false
			}
		}
	}
	if open {
		rasterizer.ClosePath()
	}
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []graphics.Point
	Closed bool
}

// Flatten converts a path into polylines. Arcs are split so that no chord
// strays further than tolerance from the circle.
func Flatten(p *graphics.Path, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var lines []Polyline
	var cur *Polyline
	var start graphics.Point
	started := false

	begin := func(pt graphics.Point) {
		lines = append(lines, Polyline{Points: []graphics.Point{pt}})
		cur = &lines[len(lines)-1]
		start = pt
		started = true
	}
	add := func(pt graphics.Point) {
		if cur == nil {
			// After a Close the pen is back on the subpath start.
			if !started {
				begin(pt)
				return
			}
			begin(start)
		}
		if last := cur.Points[len(cur.Points)-1]; last != pt {
			cur.Points = append(cur.Points, pt)
		}
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			begin(seg.Point)
		case graphics.PathOpLineTo:
			add(seg.Point)
		case graphics.PathOpArcTo:
			a := seg.Arc
			add(a.StartPoint())
			sweep := a.Sweep()
			n := arcSteps(a.Radius, sweep, tolerance)
			for i := 1; i <= n; i++ {
				add(a.PointAt(a.StartAngle + sweep*float64(i)/float64(n)))
			}
		case graphics.PathOpClose:
			if cur != nil {
				cur.Closed = true
				cur = nil
			}
		}
	}
	return lines
}

// arcSteps returns how many chords approximate an arc within tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	if radius <= tolerance {
		return 1
	}
	maxStep := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}
	return n
}
