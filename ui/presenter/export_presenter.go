package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/region-crop-go/domain/region"
	"github.com/soocke/region-crop-go/export"
	"github.com/soocke/region-crop-go/ui/model"
)

// OutputView lists rendered crops and shows status text.
type OutputView interface {
	SetOutputs(names []string)
	SetStatus(text string)
}

// ExportPresenter drives rasterization: it turns the region collection into
// cropped images, reflects them in the output model and view, and saves them
// to disk.
type ExportPresenter struct {
	doc    *region.Document
	rast   *export.Rasterizer
	output *model.OutputModel
	view   OutputView
	logger *slog.Logger

	src    image.Image
	base   string
	outDir string
}

func NewExportPresenter(doc *region.Document, rast *export.Rasterizer, output *model.OutputModel, view OutputView, src image.Image, base, outDir string, logger *slog.Logger) *ExportPresenter {
	return &ExportPresenter{doc: doc, rast: rast, output: output, view: view, src: src, base: base, outDir: outDir, logger: logger}
}

// Process rasterizes every region and writes the crops as individual PNGs.
func (p *ExportPresenter) Process() {
	if p == nil || p.doc == nil || p.rast == nil || p.output == nil {
		return
	}
	images := p.rast.Process(p.doc, p.src, p.base)
	p.output.Replace(images)
	p.pushOutputs()
	if len(images) == 0 {
		p.status("Nothing to process")
		return
	}
	if err := export.SaveAll(p.outDir, images); err != nil {
		if p.logger != nil {
			p.logger.Error("saving crops failed", "dir", p.outDir, "error", err)
		}
		p.status("Save failed: " + err.Error())
		return
	}
	p.status(fmt.Sprintf("Saved %d crop(s) to %s", len(images), p.outDir))
}

// SaveZip bundles the processed crops into one archive, processing first if
// no run has happened yet.
func (p *ExportPresenter) SaveZip() {
	if p == nil || p.output == nil {
		return
	}
	if p.output.Len() == 0 {
		p.Process()
	}
	items := p.output.Items()
	if len(items) == 0 {
		p.status("Nothing to archive")
		return
	}
	path, err := export.SaveZip(p.outDir, p.base, items)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("writing archive failed", "dir", p.outDir, "error", err)
		}
		p.status("Archive failed: " + err.Error())
		return
	}
	p.status("Archive written to " + path)
}

// Clear drops the processed crops, e.g. after the regions were cleared.
func (p *ExportPresenter) Clear() {
	if p == nil || p.output == nil {
		return
	}
	p.output.Clear()
	p.pushOutputs()
}

func (p *ExportPresenter) pushOutputs() {
	if p.view == nil {
		return
	}
	items := p.output.Items()
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	p.view.SetOutputs(names)
}

func (p *ExportPresenter) status(text string) {
	if p.view != nil {
		p.view.SetStatus(text)
	}
}
