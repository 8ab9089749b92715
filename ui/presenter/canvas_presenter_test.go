package presenter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/domain/geom"
	"github.com/soocke/region-crop-go/domain/region"
	"github.com/soocke/region-crop-go/ui/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type mockCursorView struct {
	last  string
	calls int
}

func (v *mockCursorView) SetCursor(name string) { v.last = name; v.calls++ }

func newCanvasFixture(t *testing.T) (*CanvasPresenter, *editor.Editor, *model.Viewport, *mockCursorView, *region.Region) {
	t.Helper()
	doc := region.NewDocument(800, 600)
	r := doc.CreateRegion(geom.Pt(400, 300))
	ed := editor.NewEditor(doc, 10, discardLogger())
	vp := model.NewViewport(0.1, 10)
	view := &mockCursorView{}
	p := NewCanvasPresenter(ed, vp, view, func() (int, int) { return 800, 600 }, func() {})
	return p, ed, vp, view, r
}

func TestCanvasPresenter_PointerMapsThroughViewport(t *testing.T) {
	p, ed, vp, view, r := newCanvasFixture(t)
	vp.ZoomAt(2, 0, 0)
	ed.SetZoom(vp.Zoom())

	// Region is the default square 325,225 .. 475,375; its image-space center
	// (400,300) sits at screen (800,600) under 2x zoom.
	p.OnPointerDown(800, 600)
	if !ed.Dragging() {
		t.Fatalf("expected body drag to start")
	}
	p.OnPointerDrag(840, 640)
	p.OnPointerUp(840, 640)
	part := r.Parts[0]
	if part.X != 345 || part.Y != 245 {
		t.Fatalf("drag did not move region by image-space delta: got %v,%v", part.X, part.Y)
	}
	if view.last != editor.CursorMove {
		t.Fatalf("expected move cursor after body drag, got %q", view.last)
	}
}

func TestCanvasPresenter_LeaveDropsDrag(t *testing.T) {
	p, ed, _, _, _ := newCanvasFixture(t)
	p.OnPointerDown(400, 300)
	if !ed.Dragging() {
		t.Fatalf("expected drag")
	}
	p.OnPointerLeave()
	if ed.Dragging() {
		t.Fatalf("leave must drop the drag")
	}
}

func TestCanvasPresenter_PanShiftsViewport(t *testing.T) {
	p, _, vp, _, _ := newCanvasFixture(t)
	p.OnPanDown(100, 100)
	p.OnPanDrag(120, 90)
	p.OnPanDrag(130, 95)
	ox, oy := vp.Offset()
	if ox != 30 || oy != -5 {
		t.Fatalf("pan offset mismatch: got %v,%v", ox, oy)
	}
}

func TestCanvasPresenter_ZoomKeepsHotZoneConstantOnScreen(t *testing.T) {
	p, ed, vp, _, _ := newCanvasFixture(t)
	p.ZoomIn()
	p.ZoomIn()
	if vp.Zoom() == 1 {
		t.Fatalf("zoom did not change")
	}
	got := ed.HotZone() * vp.Zoom()
	if got < 9.999 || got > 10.001 {
		t.Fatalf("hot zone on screen drifted: %v", got)
	}
	p.ZoomOut()
	got = ed.HotZone() * vp.Zoom()
	if got < 9.999 || got > 10.001 {
		t.Fatalf("hot zone on screen drifted after zoom out: %v", got)
	}
}
