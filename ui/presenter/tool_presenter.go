package presenter

import (
	"time"

	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/ui/model"
)

// ToolView displays the active mode and transient status text.
type ToolView interface {
	SetModeLabel(text string)
	SetStatus(text string)
}

// ToolPresenter owns the toolbar: modal tools toggle editor modes, document
// tools act on the region collection directly.
type ToolPresenter struct {
	editor     *editor.Editor
	vp         *model.Viewport
	view       ToolView
	canvasSize func() (w, h int)
	invalidate func()

	latest editor.Mode // last mode reflected on the view
}

func NewToolPresenter(ed *editor.Editor, vp *model.Viewport, view ToolView, canvasSize func() (w, h int), invalidate func()) *ToolPresenter {
	return &ToolPresenter{editor: ed, vp: vp, view: view, canvasSize: canvasSize, invalidate: invalidate}
}

// AddRegion creates a default region centered on the visible canvas.
func (p *ToolPresenter) AddRegion() {
	if p == nil || p.editor == nil || p.vp == nil {
		return
	}
	cw, ch := 0, 0
	if p.canvasSize != nil {
		cw, ch = p.canvasSize()
	}
	doc := p.editor.Document()
	center := p.vp.ScreenToImage(float64(cw)/2, float64(ch)/2)
	center = center.Clamp(doc.ImageW, doc.ImageH)
	doc.CreateRegion(center)
	p.refresh()
}

// Modal tools. Each toggles: pressing the active tool again returns to idle.
func (p *ToolPresenter) Select() { p.setMode(editor.ModeSelect) }

func (p *ToolPresenter) AddPoint() { p.setMode(editor.ModeAddPoint) }

func (p *ToolPresenter) DeletePoint() { p.setMode(editor.ModeDeletePoint) }

func (p *ToolPresenter) DeleteRegion() { p.setMode(editor.ModeDeleteRegion) }

func (p *ToolPresenter) setMode(m editor.Mode) {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.SetMode(m)
	p.refresh()
}

// Merge combines the multi-selection into one region. With fewer than two
// regions selected it reports instead of mutating.
func (p *ToolPresenter) Merge() {
	if p == nil || p.editor == nil {
		return
	}
	doc := p.editor.Document()
	if doc.SelectionCount() < 2 {
		if p.view != nil {
			p.view.SetStatus("Select at least two regions to merge")
		}
		return
	}
	doc.MergeSelected()
	if p.view != nil {
		p.view.SetStatus("Regions merged")
	}
	p.refresh()
}

// ClearAll removes every region.
func (p *ToolPresenter) ClearAll() {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.Document().DeleteAll()
	if p.view != nil {
		p.view.SetStatus("All regions cleared")
	}
	p.refresh()
}

// Tick reflects mode changes that happened outside the toolbar, e.g. a
// cancelled pending mode.
func (p *ToolPresenter) Tick(now time.Time) {
	if p == nil || p.editor == nil || p.view == nil {
		return
	}
	if m := p.editor.Mode(); m != p.latest {
		p.latest = m
		p.view.SetModeLabel("Mode: " + m.String())
	}
}

func (p *ToolPresenter) refresh() {
	if p.view != nil {
		p.latest = p.editor.Mode()
		p.view.SetModeLabel("Mode: " + p.latest.String())
	}
	if p.invalidate != nil {
		p.invalidate()
	}
}
