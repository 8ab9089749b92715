package presenter

import (
	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/ui/model"
)

// CursorView applies a named cursor to the canvas widget.
type CursorView interface {
	SetCursor(name string)
}

// zoomStep is the per-click zoom factor for the toolbar zoom buttons.
const zoomStep = 1.25

// CanvasPresenter translates raw canvas pointer events into image-space
// editor calls, and owns viewport pan and zoom. It satisfies the view's
// pointer handler contract.
type CanvasPresenter struct {
	editor     *editor.Editor
	vp         *model.Viewport
	view       CursorView
	canvasSize func() (w, h int)
	invalidate func()

	panX, panY float64
}

func NewCanvasPresenter(ed *editor.Editor, vp *model.Viewport, view CursorView, canvasSize func() (w, h int), invalidate func()) *CanvasPresenter {
	return &CanvasPresenter{editor: ed, vp: vp, view: view, canvasSize: canvasSize, invalidate: invalidate}
}

func (p *CanvasPresenter) OnPointerDown(x, y int) {
	if p == nil || p.editor == nil || p.vp == nil {
		return
	}
	p.editor.PointerDown(p.vp.ScreenToImage(float64(x), float64(y)))
	p.syncCursor()
}

func (p *CanvasPresenter) OnPointerDrag(x, y int) { p.OnPointerMove(x, y) }

func (p *CanvasPresenter) OnPointerMove(x, y int) {
	if p == nil || p.editor == nil || p.vp == nil {
		return
	}
	p.editor.PointerMove(p.vp.ScreenToImage(float64(x), float64(y)))
	p.syncCursor()
}

func (p *CanvasPresenter) OnPointerUp(x, y int) {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.PointerUp()
	p.syncCursor()
}

func (p *CanvasPresenter) OnPointerLeave() {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.PointerLeave()
	p.syncCursor()
}

// OnPanDown records the pan anchor for a right-button drag.
func (p *CanvasPresenter) OnPanDown(x, y int) {
	if p == nil {
		return
	}
	p.panX, p.panY = float64(x), float64(y)
}

// OnPanDrag shifts the viewport by the pointer delta since the last event.
func (p *CanvasPresenter) OnPanDrag(x, y int) {
	if p == nil || p.vp == nil {
		return
	}
	fx, fy := float64(x), float64(y)
	p.vp.Pan(fx-p.panX, fy-p.panY)
	p.panX, p.panY = fx, fy
	if p.invalidate != nil {
		p.invalidate()
	}
}

// ZoomIn zooms toward the canvas center by one step.
func (p *CanvasPresenter) ZoomIn() { p.zoom(zoomStep) }

// ZoomOut zooms away from the canvas center by one step.
func (p *CanvasPresenter) ZoomOut() { p.zoom(1 / zoomStep) }

func (p *CanvasPresenter) zoom(factor float64) {
	if p == nil || p.vp == nil || p.editor == nil {
		return
	}
	cw, ch := 0, 0
	if p.canvasSize != nil {
		cw, ch = p.canvasSize()
	}
	p.vp.ZoomAt(factor, float64(cw)/2, float64(ch)/2)
	// Keep hit-test hot zones constant on screen.
	p.editor.SetZoom(p.vp.Zoom())
	if p.invalidate != nil {
		p.invalidate()
	}
}

func (p *CanvasPresenter) syncCursor() {
	if p.view != nil {
		p.view.SetCursor(p.editor.Cursor())
	}
}
