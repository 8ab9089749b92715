package app

import (
	"image"
	"log/slog"

	"github.com/soocke/region-crop-go/config"
	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/domain/region"
	"github.com/soocke/region-crop-go/export"
	"github.com/soocke/region-crop-go/ui/model"
	"github.com/soocke/region-crop-go/ui/presenter"
	"github.com/soocke/region-crop-go/ui/render"
	"github.com/soocke/region-crop-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Doc        *region.Document
	Editor     *editor.Editor
	Viewport   *model.Viewport
	Output     *model.OutputModel
	Rasterizer *export.Rasterizer
	Scene      *render.Scene

	RootView *view.RootView
	UI       view.UI

	// Presenters
	Canvas *presenter.CanvasPresenter
	Tool   *presenter.ToolPresenter
	Export *presenter.ExportPresenter
	Frame  *presenter.FramePresenter
	Loop   *presenter.Loop

	Src  image.Image
	Base string
}

// BuildContainer constructs all components around the loaded source image.
// Presenters are wired by the app wrapper once the view is built and the
// canvas size is known.
func BuildContainer(cfg *config.Config, logger *slog.Logger, src *image.RGBA, base string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Src: src, Base: base}
	b := src.Bounds()
	c.Doc = region.NewDocument(float64(b.Dx()), float64(b.Dy()))
	c.Editor = editor.NewEditor(c.Doc, cfg.BaseHandlePx, logger)
	c.Viewport = model.NewViewport(cfg.MinZoom, cfg.MaxZoom)
	c.Output = model.NewOutputModel()
	c.Rasterizer = export.NewRasterizer(logger)
	c.Scene = render.NewScene(logger)
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	return c
}

// WirePresenters connects the presenters to the built view. Call after
// RootView.Build.
func (c *AppContainer) WirePresenters(schedule func()) {
	canvasSize := c.UI.CanvasSize
	c.Frame = presenter.NewFramePresenter(c.Scene, c.Editor, c.Viewport, c.Src, c.UI)
	invalidate := c.Frame.Invalidate
	c.Canvas = presenter.NewCanvasPresenter(c.Editor, c.Viewport, c.UI, canvasSize, invalidate)
	c.Tool = presenter.NewToolPresenter(c.Editor, c.Viewport, c.UI, canvasSize, invalidate)
	c.Export = presenter.NewExportPresenter(c.Doc, c.Rasterizer, c.Output, c.UI, c.Src, c.Base, c.Config.OutputDir, c.Logger)
	c.Loop = presenter.NewLoop(c.Tool, c.Frame, schedule)
	// Every editor mutation invalidates the frame.
	c.Editor.AddListener(invalidate)
}
