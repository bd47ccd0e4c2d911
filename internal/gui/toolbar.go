package gui

import (
	"fmt"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

// Slider ranges, in scene units.
const (
	maxSide   = 600
	maxRadius = 300
)

// cornerOrder is the order corner sliders are shown in.
var cornerOrder = [4]roundrect.Corner{
	roundrect.TopLeft, roundrect.TopRight, roundrect.BottomRight, roundrect.BottomLeft,
}

// Toolbar holds the file and zoom buttons.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnOpen    func()
	OnSave    func()
	OnZoomIn  func()
	OnZoomOut func()
	OnFit     func()
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func (t *Toolbar) build() {
	call := func(f *func()) func() {
		return func() {
			if *f != nil {
				(*f)()
			}
		}
	}

	t.container = container.NewHBox(
		widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), call(&t.OnOpen)),
		widget.NewButtonWithIcon("Save PNG", theme.DocumentSaveIcon(), call(&t.OnSave)),
		widget.NewSeparator(),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), call(&t.OnZoomOut)),
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), call(&t.OnZoomIn)),
		widget.NewButtonWithIcon("Fit", theme.ViewFullScreenIcon(), call(&t.OnFit)),
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// Controls edits the size and corner radii of one rectangle.
type Controls struct {
	container *fyne.Container

	// OnChanged is called after any slider moves.
	OnChanged func()

	width, height *widget.Slider
	sizeLabel     *widget.Label
	radii         [4]*widget.Slider
	radiiLabels   [4]*widget.Label
	link          *widget.Check

	// Set while sliders are moved programmatically.
	updating bool
}

// NewControls creates the editing panel.
func NewControls() *Controls {
	c := &Controls{}
	c.build()
	return c
}

func (c *Controls) build() {
	c.width = c.newSlider(1, maxSide, c.sizeChanged)
	c.height = c.newSlider(1, maxSide, c.sizeChanged)
	c.sizeLabel = widget.NewLabel("")

	c.link = widget.NewCheck("Same radius for all corners", func(on bool) {
		if on {
			c.radiusChanged(0)
		}
	})

	items := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		c.sizeLabel,
		widget.NewLabel("Width"), c.width,
		widget.NewLabel("Height"), c.height,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Corner radii", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		c.link,
	}
	for i, corner := range cornerOrder {
		i := i
		c.radii[i] = c.newSlider(0, maxRadius, func() { c.radiusChanged(i) })
		c.radiiLabels[i] = widget.NewLabel(cornerLabel(corner, 0))
		items = append(items, c.radiiLabels[i], c.radii[i])
	}

	c.container = container.NewVBox(items...)
}

func (c *Controls) newSlider(lo, hi float64, changed func()) *widget.Slider {
	s := widget.NewSlider(lo, hi)
	s.Step = 1
	s.OnChanged = func(float64) {
		if c.updating {
			return
		}
		changed()
	}
	return s
}

func (c *Controls) sizeChanged() {
	c.refreshLabels()
	c.notify()
}

func (c *Controls) radiusChanged(i int) {
	if c.link.Checked {
		v := c.radii[i].Value
		c.updating = true
		for _, s := range c.radii {
			s.SetValue(v)
		}
		c.updating = false
	}
	c.refreshLabels()
	c.notify()
}

func (c *Controls) notify() {
	if c.OnChanged != nil {
		c.OnChanged()
	}
}

func (c *Controls) refreshLabels() {
	c.sizeLabel.SetText(fmt.Sprintf("%g x %g", c.width.Value, c.height.Value))
	for i, corner := range cornerOrder {
		c.radiiLabels[i].SetText(cornerLabel(corner, c.radii[i].Value))
	}
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// Size returns the edited width and height.
func (c *Controls) Size() (float64, float64) {
	return c.width.Value, c.height.Value
}

// Radii returns the requested radii, before clamping.
func (c *Controls) Radii() roundrect.Radii {
	var r roundrect.Radii
	r.TopLeft = c.radii[0].Value
	r.TopRight = c.radii[1].Value
	r.BottomRight = c.radii[2].Value
	r.BottomLeft = c.radii[3].Value
	return r
}

// Set moves the sliders to show rect and the raw radii of spec without
// firing OnChanged. Slider ranges grow to fit values beyond the defaults.
// An infinite radius is shown as the largest value the slider allows,
// which rounds the corner just as fully.
func (c *Controls) Set(rect graphics.Rect, spec roundrect.RadiusSpec) {
	c.updating = true
	defer func() { c.updating = false }()

	show(c.width, rect.Width, maxSide)
	show(c.height, rect.Height, maxSide)

	var raw [4]float64
	top := math.Max(maxRadius, math.Max(rect.Width, rect.Height)/2)
	for i, corner := range cornerOrder {
		if spec == nil {
			continue
		}
		if r, ok := spec.Radius(corner); ok && r > 0 {
			raw[i] = r
			if !math.IsInf(r, 1) {
				top = math.Max(top, r)
			}
		}
	}
	for i, r := range raw {
		show(c.radii[i], math.Min(r, top), top)
	}
	c.refreshLabels()
}

// show puts v on s, bypassing step snapping, after widening s to at
// least [s.Min, max(limit, v)].
func show(s *widget.Slider, v, limit float64) {
	if !(v >= s.Min) {
		v = s.Min
	}
	s.Max = math.Max(limit, v)
	s.Value = v
	s.Refresh()
}

func cornerLabel(c roundrect.Corner, v float64) string {
	return c.String() + ": " + strconv.FormatFloat(v, 'f', -1, 64)
}

// StatusBar shows the effective radii and zoom.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	zoomLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Ready"),
		zoomLabel: widget.NewLabel("100%"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetZoom sets the zoom percentage display.
func (s *StatusBar) SetZoom(zoom float64) {
	s.zoomLabel.SetText(strconv.Itoa(int(math.Round(zoom*100))) + "%")
}

// radiiStatus describes the radii actually used after clamping.
func radiiStatus(r roundrect.Radii, segments int) string {
	return fmt.Sprintf("effective radii TL %g  TR %g  BR %g  BL %g  |  %d segments",
		round2(r.TopLeft), round2(r.TopRight), round2(r.BottomRight), round2(r.BottomLeft), segments)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
