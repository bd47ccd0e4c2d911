package api

import (
	"image/color"
	"math"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale multiplies scene units into pixels.
	// Default: 1.0
	Scale float64

	// Background overrides the scene's background color when set.
	// Default: nil (use the scene's)
	Background color.Color

	// Transparent enables transparent background (ignores Background).
	// Default: false
	Transparent bool
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale: 1.0,
	}
}

// Option is a functional option for configuring RenderOptions.
type Option func(*RenderOptions)

// Scale sets the scale factor. Non-positive values are ignored.
func Scale(scale float64) Option {
	return func(o *RenderOptions) {
		if scale > 0 {
			o.Scale = scale
		}
	}
}

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// Transparent enables transparent background.
func Transparent() Option {
	return func(o *RenderOptions) {
		o.Transparent = true
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	o.Apply(opts...)
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// EffectiveSize returns the pixel size of a width x height scene.
func (o *RenderOptions) EffectiveSize(width, height float64) (int, int) {
	return int(math.Ceil(width * o.Scale)), int(math.Ceil(height * o.Scale))
}
