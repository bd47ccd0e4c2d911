// Package raster provides rasterization of paths to images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"roundrect/pkg/graphics"
	pathpkg "roundrect/pkg/path"
	"roundrect/pkg/roundrect"

	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	// Maps path coordinates to pixels
	ctm graphics.Matrix

	// Default background
	background color.Color
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Fill with white background
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	return &Canvas{
		img:        img,
		width:      width,
		height:     height,
		ctm:        graphics.Identity(),
		background: color.White,
	}
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetTransform sets the matrix from path space to pixels.
func (c *Canvas) SetTransform(m graphics.Matrix) {
	c.ctm = m
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// SetBackground sets the background color.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Fill fills a path with the given color using the non-zero winding rule.
func (c *Canvas) Fill(path *graphics.Path, col color.Color) {
	if path.IsEmpty() {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	pathpkg.ToVector(path, c.ctm, r)
	r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
}

// Stroke draws the outline of a path with the given width, in path units.
func (c *Canvas) Stroke(path *graphics.Path, col color.Color, width float64) {
	if path.IsEmpty() || width <= 0 {
		return
	}

	// Flatten finely enough for the pixel grid rather than path units.
	tolerance := 0.25
	if s, ok := c.ctm.UniformScale(); ok {
		tolerance /= s
	}

	outline := strokeToPath(pathpkg.Flatten(path, tolerance), width/2)
	c.Fill(outline, col)
}

// strokeToPath turns polylines into a fillable outline: one quad per
// segment plus a round join at every vertex. All pieces share the same
// orientation so overlaps add up instead of cancelling.
func strokeToPath(lines []pathpkg.Polyline, halfWidth float64) *graphics.Path {
	result := graphics.NewPath()

	for _, pl := range lines {
		pts := pl.Points
		n := len(pts) - 1
		if pl.Closed && pts[0] != pts[n] {
			pts = append(pts[:n+1:n+1], pts[0])
			n++
		}

		for i := 0; i < n; i++ {
			addSegmentQuad(result, pts[i], pts[i+1], halfWidth)
		}
		for i, pt := range pts {
			// Open ends are butt capped.
			if !pl.Closed && (i == 0 || i == len(pts)-1) {
				continue
			}
			addJoin(result, pt, halfWidth)
		}
	}
	return result
}

func addSegmentQuad(path *graphics.Path, a, b graphics.Point, halfWidth float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}

	// Perpendicular unit vector
	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth

	path.MoveTo(a.X+nx, a.Y+ny)
	path.LineTo(b.X+nx, b.Y+ny)
	path.LineTo(b.X-nx, b.Y-ny)
	path.LineTo(a.X-nx, a.Y-ny)
	path.Close()
}

// addJoin adds a round join as a 16-gon wound like the segment quads.
func addJoin(path *graphics.Path, pt graphics.Point, halfWidth float64) {
	const steps = 16
	for i := 0; i <= steps; i++ {
		angle := -float64(i) * 2 * math.Pi / steps
		x := pt.X + halfWidth*math.Cos(angle)
		y := pt.Y + halfWidth*math.Sin(angle)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
}

// DrawRoundedRect fills and strokes a rounded rectangle. A nil color
// skips that step.
func (c *Canvas) DrawRoundedRect(rect graphics.Rect, spec roundrect.RadiusSpec, fillColor, strokeColor color.Color, strokeWidth float64) error {
	path, err := roundrect.NewPath(rect, spec)
	if err != nil {
		return err
	}

	if fillColor != nil {
		c.Fill(path, fillColor)
	}
	if strokeColor != nil && strokeWidth > 0 {
		c.Stroke(path, strokeColor, strokeWidth)
	}
	return nil
}

// DrawRect draws a rectangle.
func (c *Canvas) DrawRect(rect graphics.Rect, fillColor, strokeColor color.Color, strokeWidth float64) {
	path := graphics.NewPath()
	path.Rect(rect)

	if fillColor != nil {
		c.Fill(path, fillColor)
	}
	if strokeColor != nil && strokeWidth > 0 {
		c.Stroke(path, strokeColor, strokeWidth)
	}
}

// GetPixel gets a pixel color.
func (c *Canvas) GetPixel(x, y int) color.Color {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		return c.img.At(x, y)
	}
	return color.Transparent
}
