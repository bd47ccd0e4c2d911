// Package path provides path construction utilities for the rasterizer.
package path

import (
	"math"

	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

// Builder provides a fluent interface for building paths.
// The first error from RoundedRect is kept; later calls do nothing.
type Builder struct {
	path *graphics.Path
	err  error
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{
		path: graphics.NewPath(),
	}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	if b.err == nil {
		b.path.MoveTo(x, y)
	}
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(x, y float64) *Builder {
	if b.err == nil {
		b.path.LineTo(x, y)
	}
	return b
}

// ArcTo draws a circular arc around (cx, cy).
func (b *Builder) ArcTo(cx, cy, r, startAngle, endAngle float64, clockwise bool) *Builder {
	if b.err == nil {
		b.path.ArcTo(graphics.Pt(cx, cy), r, startAngle, endAngle, clockwise)
	}
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	if b.err == nil {
		b.path.Close()
	}
	return b
}

// Rect adds a rectangle to the path.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	if b.err == nil {
		b.path.Rect(graphics.Rect{X: x, Y: y, Width: w, Height: h})
	}
	return b
}

// RoundedRect adds a closed rectangle with rounded corners to the path.
func (b *Builder) RoundedRect(rect graphics.Rect, spec roundrect.RadiusSpec) *Builder {
	if b.err != nil {
		return b
	}
	segs, err := roundrect.Build(rect, spec)
	if err != nil {
		b.err = err
		return b
	}
	b.path.Append(segs...)
	b.path.Close()
	return b
}

// Circle adds a circle to the path, drawn clockwise from its top.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	b.MoveTo(cx, cy-r)
	b.ArcTo(cx, cy, r, -math.Pi/2, 3*math.Pi/2, true)
	return b.Close()
}

// Err returns the first error encountered while building.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the constructed path.
func (b *Builder) Build() (*graphics.Path, error) {
	return b.path, b.err
}

// Clear resets the builder for reuse.
func (b *Builder) Clear() *Builder {
	b.path.Clear()
	b.err = nil
	return b
}
