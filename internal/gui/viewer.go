package gui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	minZoom = 0.1
	maxZoom = 8.0
)

// ShapeViewer shows the rendered scene with pan and zoom.
type ShapeViewer struct {
	widget.BaseWidget

	image    *canvas.Image
	sceneImg image.Image

	// View state
	zoom    float64
	offsetX float64
	offsetY float64

	OnZoomChanged func(zoom float64)
}

// NewShapeViewer creates a new viewer widget.
func NewShapeViewer() *ShapeViewer {
	v := &ShapeViewer{
		zoom: 1.0,
	}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScalePixels

	return v
}

// SetImage replaces the displayed image, keeping zoom and pan.
func (v *ShapeViewer) SetImage(img image.Image) {
	v.sceneImg = img
	v.image.Image = img
	v.Refresh()
}

// Zoom returns the current zoom factor.
func (v *ShapeViewer) Zoom() float64 {
	return v.zoom
}

// ResetView restores 100% zoom with the image centered.
func (v *ShapeViewer) ResetView() {
	v.offsetX = 0
	v.offsetY = 0
	v.setZoom(1.0)
}

func (v *ShapeViewer) setZoom(z float64) {
	v.zoom = math.Max(minZoom, math.Min(maxZoom, z))
	if v.OnZoomChanged != nil {
		v.OnZoomChanged(v.zoom)
	}
	v.Refresh()
}

// CreateRenderer creates the renderer for this widget.
func (v *ShapeViewer) CreateRenderer() fyne.WidgetRenderer {
	return &shapeViewerRenderer{
		viewer: v,
	}
}

// Dragged handles drag events for panning.
func (v *ShapeViewer) Dragged(event *fyne.DragEvent) {
	v.offsetX += float64(event.Dragged.DX)
	v.offsetY += float64(event.Dragged.DY)
	v.Refresh()
}

// DragEnd handles the end of a drag.
func (v *ShapeViewer) DragEnd() {}

// Scrolled zooms toward the cursor.
func (v *ShapeViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := float64(event.Scrolled.DY) / 100
	newZoom := math.Max(minZoom, math.Min(maxZoom, v.zoom*(1+delta)))
	if newZoom == v.zoom {
		return
	}

	// Keep the point under the cursor fixed.
	size := v.Size()
	cx := float64(event.Position.X) - float64(size.Width)/2
	cy := float64(event.Position.Y) - float64(size.Height)/2
	factor := newZoom / v.zoom
	v.offsetX = cx - (cx-v.offsetX)*factor
	v.offsetY = cy - (cy-v.offsetY)*factor

	v.setZoom(newZoom)
}

// ZoomIn increases zoom level.
func (v *ShapeViewer) ZoomIn() {
	v.setZoom(v.zoom * 1.2)
}

// ZoomOut decreases zoom level.
func (v *ShapeViewer) ZoomOut() {
	v.setZoom(v.zoom / 1.2)
}

// FitScene fits the whole image in the widget.
func (v *ShapeViewer) FitScene() {
	if v.sceneImg == nil {
		return
	}

	size := v.Size()
	imgW := float64(v.sceneImg.Bounds().Dx())
	imgH := float64(v.sceneImg.Bounds().Dy())
	if imgW == 0 || imgH == 0 {
		return
	}

	v.offsetX = 0
	v.offsetY = 0
	v.setZoom(math.Min(float64(size.Width)/imgW, float64(size.Height)/imgH))
}

// shapeViewerRenderer renders the viewer.
type shapeViewerRenderer struct {
	viewer *ShapeViewer
}

func (r *shapeViewerRenderer) Layout(size fyne.Size) {
	if r.viewer.sceneImg == nil {
		return
	}

	imgW := float32(r.viewer.sceneImg.Bounds().Dx()) * float32(r.viewer.zoom)
	imgH := float32(r.viewer.sceneImg.Bounds().Dy()) * float32(r.viewer.zoom)

	// Center image with offset
	x := (size.Width-imgW)/2 + float32(r.viewer.offsetX)
	y := (size.Height-imgH)/2 + float32(r.viewer.offsetY)

	r.viewer.image.Move(fyne.NewPos(x, y))
	r.viewer.image.Resize(fyne.NewSize(imgW, imgH))
}

func (r *shapeViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *shapeViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.image}
}

func (r *shapeViewerRenderer) Refresh() {
	r.Layout(r.viewer.Size())
	r.viewer.image.Refresh()
}

func (r *shapeViewerRenderer) Destroy() {}
