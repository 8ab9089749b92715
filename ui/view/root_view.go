package view

import (
	"image"
	"log/slog"

	"github.com/soocke/region-crop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers bundles the callbacks the view wires to user actions.
type Handlers struct {
	Pointer PointerHandler

	OnAddRegion    func()
	OnSelect       func()
	OnAddPoint     func()
	OnDeletePoint  func()
	OnDeleteRegion func()
	OnMerge        func()
	OnClearAll     func()
	OnZoomIn       func()
	OnZoomOut      func()
	OnProcess      func()
	OnSaveZip      func()
	OnExit         func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Canvas CanvasView
	Output OutputPanel

	// Widgets
	ModeLabel   *LabelWidget
	StatusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetModeLabel(text string)
	SetStatus(text string)
	UpdateFrame(img image.Image)
	SetCursor(name string)
	SetOutputs(names []string)
	CanvasSize() (w, h int)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: status row, tool row, canvas, output panel.
func (rv *RootView) Build(canvasW, canvasH int, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: mode readout, status text, exit
	rv.ModeLabel = Label(Txt("Mode: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.ModeLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.StatusLabel = Label(Txt(""))
	Grid(rv.StatusLabel, Row(0), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, Row(0), Column(4), Sticky("e"), Padx("0.3m"), Pady("0.3m"))

	// Row 1: tools
	toolFrame := Frame()
	Grid(toolFrame, Row(1), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	tools := []struct {
		label string
		fn    func()
	}{
		{"Add Region", h.OnAddRegion},
		{"Select", h.OnSelect},
		{"Add Point", h.OnAddPoint},
		{"Delete Point", h.OnDeletePoint},
		{"Delete Region", h.OnDeleteRegion},
		{"Merge", h.OnMerge},
		{"Clear All", h.OnClearAll},
		{"Zoom +", h.OnZoomIn},
		{"Zoom -", h.OnZoomOut},
		{"Process", h.OnProcess},
		{"Save Zip", h.OnSaveZip},
	}
	for i, tool := range tools {
		btn := Button(Txt(tool.label), Command(tool.fn))
		Grid(btn, In(toolFrame), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}

	// Row 2: canvas, rows 3-4: output listing
	rv.Canvas = NewCanvasView(2, canvasW, canvasH, h.Pointer)
	rv.Output = NewOutputPanel(3)
}

// SetModeLabel updates the mode readout.
func (rv *RootView) SetModeLabel(text string) {
	if rv != nil && rv.ModeLabel != nil {
		rv.ModeLabel.Configure(Txt(text))
	}
}

// SetStatus updates the transient status text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// UpdateFrame proxies to the canvas subview.
func (rv *RootView) UpdateFrame(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.UpdateFrame(img)
	}
}

// SetCursor proxies to the canvas subview.
func (rv *RootView) SetCursor(name string) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetCursor(name)
	}
}

// SetOutputs proxies to the output panel.
func (rv *RootView) SetOutputs(names []string) {
	if rv != nil && rv.Output != nil {
		rv.Output.SetItems(names)
	}
}

// CanvasSize reports the canvas pixel dimensions.
func (rv *RootView) CanvasSize() (w, h int) {
	if rv == nil || rv.Canvas == nil {
		return 0, 0
	}
	return rv.Canvas.Size()
}
