// Package api provides a clean public API for describing and rendering
// rounded rectangles. This is the main entry point for external consumers.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"roundrect/pkg/graphics"
	"roundrect/pkg/raster"
	"roundrect/pkg/roundrect"
)

// ErrAmbiguousRadii is returned for a shape that sets both per-corner
// radii and corner-set entries.
var ErrAmbiguousRadii = errors.New("shape sets both radii and corners")

// ErrSceneTooLarge is returned when a scene, after scaling, would need an
// image wider or taller than MaxPixels.
var ErrSceneTooLarge = errors.New("scene too large")

// MaxPixels bounds each side of a rendered image.
const MaxPixels = 1 << 14

// Scene is a canvas with rounded rectangles drawn on it in order.
type Scene struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape is one rounded rectangle and how to paint it.
type Shape struct {
	Name string        `yaml:"name"`
	Rect graphics.Rect `yaml:"rect"`

	// Radii gives each corner its own radius.
	Radii *roundrect.Radii `yaml:"radii"`

	// Corners assigns radii to sets of corners; the first entry naming a
	// corner wins.
	Corners roundrect.CornerRadii `yaml:"corners"`

	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Spec returns the radius specification of the shape, or nil when no
// corner is rounded.
func (s *Shape) Spec() (roundrect.RadiusSpec, error) {
	switch {
	case s.Radii != nil && len(s.Corners) > 0:
		return nil, ErrAmbiguousRadii
	case len(s.Corners) > 0:
		return s.Corners, nil
	case s.Radii != nil:
		return *s.Radii, nil
	}
	return nil, nil
}

// Segments returns the outline of the shape, without the closing segment.
func (s *Shape) Segments() ([]graphics.PathSegment, error) {
	spec, err := s.Spec()
	if err != nil {
		return nil, err
	}
	return roundrect.Build(s.Rect, spec)
}

// EffectiveRadii returns the radii after clamping to the shape's size.
func (s *Shape) EffectiveRadii() (roundrect.Radii, error) {
	spec, err := s.Spec()
	if err != nil {
		return roundrect.Radii{}, err
	}
	return roundrect.EffectiveRadii(s.Rect, spec)
}

// Path returns the closed outline of the shape.
func (s *Shape) Path() (*graphics.Path, error) {
	spec, err := s.Spec()
	if err != nil {
		return nil, err
	}
	return roundrect.NewPath(s.Rect, spec)
}

func (s *Shape) colors() (fill, stroke color.Color, err error) {
	if fill, err = ParseColor(s.Fill); err != nil {
		return nil, nil, fmt.Errorf("fill: %w", err)
	}
	if stroke, err = ParseColor(s.Stroke); err != nil {
		return nil, nil, fmt.Errorf("stroke: %w", err)
	}
	return fill, stroke, nil
}

func (s *Shape) label(i int) string {
	if s.Name != "" {
		return fmt.Sprintf("shape %d (%s)", i, s.Name)
	}
	return fmt.Sprintf("shape %d", i)
}

// LoadScene reads a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses and validates a YAML scene.
// Unknown keys are rejected so that typos do not go unnoticed.
func ParseScene(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	scene := &Scene{}
	if err := dec.Decode(scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	Logger().Debug("scene loaded", "width", scene.Width, "height", scene.Height, "shapes", len(scene.Shapes))
	return scene, nil
}

// Validate checks the canvas size, colors and geometry of every shape.
func (sc *Scene) Validate() error {
	if !(sc.Width > 0) || !(sc.Height > 0) {
		return fmt.Errorf("invalid scene size %gx%g", sc.Width, sc.Height)
	}
	if math.IsInf(sc.Width, 0) || math.IsInf(sc.Height, 0) || sc.Width > MaxPixels || sc.Height > MaxPixels {
		return fmt.Errorf("%w: %gx%g exceeds %d pixels per side", ErrSceneTooLarge, sc.Width, sc.Height, MaxPixels)
	}
	if _, err := ParseColor(sc.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		if _, _, err := s.colors(); err != nil {
			return fmt.Errorf("%s: %w", s.label(i), err)
		}
		if s.StrokeWidth < 0 {
			return fmt.Errorf("%s: negative stroke width %g", s.label(i), s.StrokeWidth)
		}
		if _, err := s.Segments(); err != nil {
			return fmt.Errorf("%s: %w", s.label(i), err)
		}
	}
	return nil
}

// Paths returns the closed outline of every shape, in drawing order.
func (sc *Scene) Paths() ([]*graphics.Path, error) {
	paths := make([]*graphics.Path, len(sc.Shapes))
	for i := range sc.Shapes {
		p, err := sc.Shapes[i].Path()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sc.Shapes[i].label(i), err)
		}
		paths[i] = p
	}
	return paths, nil
}

// Bounds returns the smallest rectangle covering every shape outline,
// ignoring stroke width. A scene without shapes has empty bounds.
func (sc *Scene) Bounds() (graphics.Rect, error) {
	paths, err := sc.Paths()
	if err != nil {
		return graphics.Rect{}, err
	}
	var b graphics.Rect
	for i, p := range paths {
		if i == 0 {
			b = p.Bounds()
			continue
		}
		b = b.Union(p.Bounds())
	}
	return b, nil
}

// Render draws the scene into a new image.
func (sc *Scene) Render(opts ...Option) (*image.RGBA, error) {
	o := NewRenderOptions(opts...)
	if !(sc.Width > 0) || !(sc.Height > 0) {
		return nil, fmt.Errorf("invalid scene size %gx%g", sc.Width, sc.Height)
	}
	// Checked in floating point so that oversized scales cannot overflow int.
	if sw, sh := math.Ceil(sc.Width*o.Scale), math.Ceil(sc.Height*o.Scale); !(sw <= MaxPixels) || !(sh <= MaxPixels) {
		return nil, fmt.Errorf("%w: %gx%g pixels exceeds %d per side", ErrSceneTooLarge, sw, sh, MaxPixels)
	}
	w, h := o.EffectiveSize(sc.Width, sc.Height)

	bg, err := sc.background(o)
	if err != nil {
		return nil, err
	}

	canvas := raster.NewCanvas(w, h)
	canvas.SetBackground(bg)
	canvas.Clear()
	canvas.SetTransform(graphics.Scale(o.Scale, o.Scale))

	log := Logger()
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		fill, stroke, err := s.colors()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.label(i), err)
		}
		spec, err := s.Spec()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.label(i), err)
		}
		if err := canvas.DrawRoundedRect(s.Rect, spec, fill, stroke, s.StrokeWidth); err != nil {
			return nil, fmt.Errorf("%s: %w", s.label(i), err)
		}
		log.Debug("shape drawn", "index", i, "name", s.Name, "rect", s.Rect)
	}

	log.Debug("scene rendered", "pixels", fmt.Sprintf("%dx%d", w, h))
	return canvas.Image(), nil
}

func (sc *Scene) background(o RenderOptions) (color.Color, error) {
	if o.Transparent {
		return color.Transparent, nil
	}
	if o.Background != nil {
		return o.Background, nil
	}
	bg, err := ParseColor(sc.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if bg == nil {
		bg = color.White
	}
	return bg, nil
}

// RenderToFile renders the scene and saves it as a PNG file.
func (sc *Scene) RenderToFile(filename string, opts ...Option) error {
	img, err := sc.Render(opts...)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	Logger().Info("png written", "file", filename)
	return f.Close()
}
