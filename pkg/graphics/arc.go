package graphics

import "math"

// Arc is a circular arc.
//
// Angles are in radians, measured from the positive X axis towards the
// positive Y axis. Because Y points down, an arc whose angle increases
// from StartAngle to EndAngle runs clockwise on screen; such arcs have
// Clockwise set.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// StartPoint returns the point where the arc begins.
func (a Arc) StartPoint() Point {
	return a.PointAt(a.StartAngle)
}

// EndPoint returns the point where the arc ends.
func (a Arc) EndPoint() Point {
	return a.PointAt(a.EndAngle)
}

// Sweep returns the signed angle travelled from StartAngle to EndAngle.
// Clockwise arcs have a sweep in [0, 2π], the others in [-2π, 0]. Angle
// differences already in range are kept, so a full circle stays a full
// circle.
func (a Arc) Sweep() float64 {
	d := a.EndAngle - a.StartAngle
	if a.Clockwise {
		if d >= 0 && d <= 2*math.Pi {
			return d
		}
		d = math.Mod(d, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}
	if d <= 0 && d >= -2*math.Pi {
		return d
	}
	d = math.Mod(d, 2*math.Pi)
	if d > 0 {
		d -= 2 * math.Pi
	}
	return d
}

// extremes returns the points of the arc where it touches an axis-aligned
// tangent, restricted to the swept range.
func (a Arc) extremes() []Point {
	sweep := a.Sweep()
	lo, hi := a.StartAngle, a.StartAngle+sweep
	if sweep < 0 {
		lo, hi = hi, lo
	}

	var pts []Point
	first := math.Ceil(lo/(math.Pi/2)) * (math.Pi / 2)
	for t := first; t <= hi; t += math.Pi / 2 {
		pts = append(pts, a.PointAt(t))
	}
	return pts
}
