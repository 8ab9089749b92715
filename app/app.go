package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/region-crop-go/config"
	"github.com/soocke/region-crop-go/ui/theme"
	"github.com/soocke/region-crop-go/ui/view"
)

const tick = 50 * time.Millisecond

// Canvas size limits; larger images start zoomed out to fit.
const (
	maxCanvasW = 960
	maxCanvasH = 640
)

type app struct {
	container *AppContainer
	logger    *slog.Logger
	afterID   string
}

// NewApp builds the container around the loaded image and prepares the Tk
// root window.
func NewApp(title string, cfg *config.Config, logger *slog.Logger, src *image.RGBA, base string) *app {
	a := &app{logger: logger}
	a.container = BuildContainer(cfg, logger, src, base)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the view, wires the presenters and enters the Tk main loop.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()

	cw, ch := canvasFor(c.Doc.ImageW, c.Doc.ImageH)
	c.WirePresenters(a.scheduleUpdate)

	// The canvas presenter doubles as the pointer handler; the remaining
	// buttons dispatch straight into the tool and export presenters.
	c.RootView.Build(cw, ch, view.Handlers{
		Pointer:        c.Canvas,
		OnAddRegion:    func() { c.Tool.AddRegion() },
		OnSelect:       func() { c.Tool.Select() },
		OnAddPoint:     func() { c.Tool.AddPoint() },
		OnDeletePoint:  func() { c.Tool.DeletePoint() },
		OnDeleteRegion: func() { c.Tool.DeleteRegion() },
		OnMerge:        func() { c.Tool.Merge() },
		OnClearAll: func() {
			c.Tool.ClearAll()
			c.Export.Clear()
		},
		OnZoomIn:   func() { c.Canvas.ZoomIn() },
		OnZoomOut:  func() { c.Canvas.ZoomOut() },
		OnProcess:  func() { c.Export.Process() },
		OnSaveZip:  func() { c.Export.SaveZip() },
		OnExit:     a.exitHandler,
	})

	// Start zoomed to fit when the image is larger than the canvas.
	if fit := fitZoom(c.Doc.ImageW, c.Doc.ImageH, cw, ch); fit < 1 {
		c.Viewport.ZoomAt(fit, 0, 0)
		c.Editor.SetZoom(c.Viewport.Zoom())
	}
	c.Frame.Invalidate()

	WmGeometry(App, fmt.Sprintf("%dx%d+80+80", cw+40, ch+220))
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	a.container.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

// canvasFor sizes the canvas to the image, capped at the window limits.
func canvasFor(imageW, imageH float64) (w, h int) {
	w, h = int(imageW), int(imageH)
	if w > maxCanvasW {
		w = maxCanvasW
	}
	if h > maxCanvasH {
		h = maxCanvasH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// fitZoom returns the zoom that shows the whole image inside the canvas.
func fitZoom(imageW, imageH float64, cw, ch int) float64 {
	if imageW <= 0 || imageH <= 0 {
		return 1
	}
	zw := float64(cw) / imageW
	zh := float64(ch) / imageH
	if zh < zw {
		return zh
	}
	return zw
}
