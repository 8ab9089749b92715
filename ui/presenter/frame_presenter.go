package presenter

import (
	"image"
	"time"

	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/ui/model"
	"github.com/soocke/region-crop-go/ui/render"
)

// FrameView receives rendered frames and reports the canvas size.
type FrameView interface {
	UpdateFrame(img image.Image)
	CanvasSize() (w, h int)
}

// FramePresenter re-renders the canvas when the scene is marked dirty.
// Rendering happens at most once per tick so a burst of edits coalesces
// into a single frame.
type FramePresenter struct {
	scene  *render.Scene
	editor *editor.Editor
	vp     *model.Viewport
	src    image.Image
	view   FrameView
	dirty  bool
}

func NewFramePresenter(scene *render.Scene, ed *editor.Editor, vp *model.Viewport, src image.Image, view FrameView) *FramePresenter {
	return &FramePresenter{scene: scene, editor: ed, vp: vp, src: src, view: view, dirty: true}
}

// Invalidate marks the frame stale. Safe to call from editor listeners.
func (p *FramePresenter) Invalidate() {
	if p == nil {
		return
	}
	p.dirty = true
}

// Tick renders and pushes a frame if anything changed since the last one.
func (p *FramePresenter) Tick(now time.Time) {
	if p == nil || !p.dirty || p.scene == nil || p.editor == nil || p.vp == nil || p.view == nil {
		return
	}
	p.dirty = false
	cw, ch := p.view.CanvasSize()
	if cw < 1 || ch < 1 {
		return
	}
	// Affordance size on screen is constant: hot zone shrinks as zoom grows.
	handlePx := p.editor.HotZone() * p.vp.Zoom()
	frame := p.scene.Frame(p.src, p.editor.Document(), p.vp, p.editor.Mode(), handlePx, cw, ch)
	if frame != nil {
		p.view.UpdateFrame(frame)
	}
}
