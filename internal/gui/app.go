// Package gui provides a native desktop editor for rounded rectangles using Fyne.
package gui

import (
	"fmt"
	"image/png"
	"io"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"roundrect/pkg/api"
	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

// App is the editor application. The sliders edit the first shape of
// the current scene; the remaining shapes are drawn as loaded.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	scene      *api.Scene

	// UI components
	toolbar     *Toolbar
	controls    *Controls
	viewer      *ShapeViewer
	status      *StatusBar
	segmentList *widget.List

	// Outline of the edited shape
	segments []graphics.PathSegment
}

// NewApp creates a new editor application.
func NewApp() *App {
	a := &App{
		fyneApp: app.New(),
		scene:   defaultScene(),
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Rounded Rectangle Editor")
	a.mainWindow.Resize(fyne.NewSize(1000, 700))

	return a
}

// defaultScene is the scene shown before a file is opened.
func defaultScene() *api.Scene {
	radii := roundrect.Uniform(24)
	return &api.Scene{
		Width:      320,
		Height:     240,
		Background: "white",
		Shapes: []api.Shape{{
			Name:        "editor",
			Rect:        graphics.Rect{X: 20, Y: 20, Width: 280, Height: 200},
			Radii:       &radii,
			Fill:        "steelblue",
			Stroke:      "black",
			StrokeWidth: 2,
		}},
	}
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.setScene(a.scene)
	a.mainWindow.ShowAndRun()
}

// RunWithFile starts the application with a scene file already loaded.
func (a *App) RunWithFile(path string) {
	a.buildUI()

	sc, err := api.LoadScene(path)
	if err != nil {
		a.setScene(a.scene)
		dialog.ShowError(err, a.mainWindow)
	} else {
		a.mainWindow.SetTitle(fmt.Sprintf("Rounded Rectangle Editor - %s", path))
		a.setScene(sc)
	}

	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.toolbar = NewToolbar()
	a.controls = NewControls()
	a.viewer = NewShapeViewer()
	a.status = NewStatusBar()

	a.toolbar.OnOpen = a.openFile
	a.toolbar.OnSave = a.savePNG
	a.toolbar.OnZoomIn = a.viewer.ZoomIn
	a.toolbar.OnZoomOut = a.viewer.ZoomOut
	a.toolbar.OnFit = a.viewer.FitScene

	a.controls.OnChanged = a.applyControls
	a.viewer.OnZoomChanged = a.status.SetZoom

	a.segmentList = widget.NewList(
		func() int { return len(a.segments) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(fmt.Sprintf("%2d  %s", id, a.segments[id]))
		},
	)

	preview := container.NewVSplit(a.viewer, a.segmentList)
	preview.SetOffset(0.7)

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()),
		container.NewPadded(a.status.Container()),
		container.NewVScroll(container.NewPadded(a.controls.Container())),
		nil,
		preview,
	)

	a.mainWindow.SetContent(content)

	// Set up keyboard shortcuts
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey handles zoom shortcuts.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyPlus, fyne.KeyEqual:
		a.viewer.ZoomIn()
	case fyne.KeyMinus:
		a.viewer.ZoomOut()
	case fyne.Key0:
		a.viewer.ResetView()
	case fyne.KeyF:
		a.viewer.FitScene()
	}
}

// setScene makes sc the edited scene and syncs the sliders with its
// first shape.
func (a *App) setScene(sc *api.Scene) {
	if len(sc.Shapes) == 0 {
		sc.Shapes = defaultScene().Shapes
	}
	a.scene = sc

	shape := &sc.Shapes[0]
	spec, err := shape.Spec()
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
	}
	a.controls.Set(shape.Rect, spec)

	a.viewer.ResetView()
	a.refresh()
}

// applyControls copies the slider values into the edited shape.
func (a *App) applyControls() {
	shape := &a.scene.Shapes[0]
	shape.Rect.Width, shape.Rect.Height = a.controls.Size()
	radii := a.controls.Radii()
	shape.Radii = &radii
	shape.Corners = nil

	// Grow the canvas so the shape keeps its margin.
	a.scene.Width = math.Max(a.scene.Width, shape.Rect.MaxX()+shape.Rect.X)
	a.scene.Height = math.Max(a.scene.Height, shape.Rect.MaxY()+shape.Rect.Y)

	a.refresh()
}

// refresh rebuilds the outline and the preview image.
func (a *App) refresh() {
	shape := &a.scene.Shapes[0]

	segs, err := shape.Segments()
	if err != nil {
		a.segments = nil
		a.segmentList.Refresh()
		a.status.SetStatus(err.Error())
		return
	}
	a.segments = segs
	a.segmentList.Refresh()

	radii, err := shape.EffectiveRadii()
	if err == nil {
		a.status.SetStatus(radiiStatus(radii, len(segs)))
	}

	img, err := a.scene.Render()
	if err != nil {
		a.status.SetStatus(err.Error())
		return
	}
	a.viewer.SetImage(img)
}

// openFile shows a file dialog and loads the selected scene.
func (a *App) openFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read scene: %w", err), a.mainWindow)
			return
		}
		sc, err := api.ParseScene(data)
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}

		api.Logger().Info("scene opened", "uri", reader.URI().String())
		a.mainWindow.SetTitle(fmt.Sprintf("Rounded Rectangle Editor - %s", reader.URI().Name()))
		a.setScene(sc)
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	d.Show()
}

// savePNG renders the scene and writes it to a file chosen by the user.
func (a *App) savePNG() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		defer writer.Close()

		img, err := a.scene.Render()
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if err := png.Encode(writer, img); err != nil {
			dialog.ShowError(fmt.Errorf("failed to encode PNG: %w", err), a.mainWindow)
			return
		}
		a.status.SetStatus("Saved " + writer.URI().Name())
	}, a.mainWindow)
	d.SetFileName("roundrect.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}
