package roundrect

import (
	"fmt"
	"math"

	"roundrect/pkg/graphics"
)

// RadiusSpec supplies the raw radius requested for a corner.
// ok is false when the corner is not rounded at all.
type RadiusSpec interface {
	Radius(c Corner) (r float64, ok bool)
}

// Radii holds one radius per corner. A zero radius leaves the corner sharp.
type Radii struct {
	TopLeft     float64 `yaml:"top_left"`
	TopRight    float64 `yaml:"top_right"`
	BottomRight float64 `yaml:"bottom_right"`
	BottomLeft  float64 `yaml:"bottom_left"`
}

// Uniform returns Radii with the same radius on every corner.
func Uniform(r float64) Radii {
	return Radii{r, r, r, r}
}

// Radius implements RadiusSpec.
func (r Radii) Radius(c Corner) (float64, bool) {
	switch c {
	case TopLeft:
		return r.TopLeft, true
	case TopRight:
		return r.TopRight, true
	case BottomRight:
		return r.BottomRight, true
	case BottomLeft:
		return r.BottomLeft, true
	}
	return 0, false
}

// Get is like Radius but drops the ok flag.
func (r Radii) Get(c Corner) float64 {
	v, _ := r.Radius(c)
	return v
}

func (r *Radii) set(c Corner, v float64) {
	switch c {
	case TopLeft:
		r.TopLeft = v
	case TopRight:
		r.TopRight = v
	case BottomRight:
		r.BottomRight = v
	case BottomLeft:
		r.BottomLeft = v
	}
}

// CornerRadius assigns a radius to a set of corners.
type CornerRadius struct {
	Corners Corner  `yaml:"corners"`
	Radius  float64 `yaml:"radius"`
}

// CornerRadii is an ordered list of corner sets and their radii.
// When several entries include the same corner, the first one wins.
type CornerRadii []CornerRadius

// Radius implements RadiusSpec.
func (cr CornerRadii) Radius(c Corner) (float64, bool) {
	for _, e := range cr {
		if e.Corners.Contains(c) {
			return e.Radius, true
		}
	}
	return 0, false
}

// EffectiveRadii resolves spec against rect: each corner's raw radius is
// clamped to half the rectangle's width and half its height. Corners the
// spec leaves out get 0. A nil spec rounds nothing.
func EffectiveRadii(rect graphics.Rect, spec RadiusSpec) (Radii, error) {
	if err := validateRect(rect); err != nil {
		return Radii{}, err
	}

	var eff Radii
	if spec == nil {
		return eff, nil
	}
	limit := math.Min(rect.Width/2, rect.Height/2)
	for _, c := range corners {
		r, ok := spec.Radius(c)
		if !ok {
			continue
		}
		if math.IsNaN(r) || r < 0 {
			return Radii{}, fmt.Errorf("%w: %s radius %g", ErrInvalidRadius, c, r)
		}
		eff.set(c, math.Min(r, limit))
	}
	return eff, nil
}

func validateRect(rect graphics.Rect) error {
	for _, v := range [...]float64{rect.X, rect.Y, rect.Width, rect.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %+v", ErrInvalidRectangle, rect)
		}
	}
	if rect.Width < 0 || rect.Height < 0 {
		return fmt.Errorf("%w: negative size %gx%g", ErrInvalidRectangle, rect.Width, rect.Height)
	}
	return nil
}
