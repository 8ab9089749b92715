package editor

import (
	"log/slog"

	"github.com/soocke/region-crop-go/domain/geom"
	"github.com/soocke/region-crop-go/domain/region"
)

// ChangeListener is called after every document or mode change so the view
// can repaint.
type ChangeListener func()

type dragKind int

const (
	dragBody dragKind = iota
	dragVertex
	dragResize
)

// dragContext captures the feature grabbed on pointer-down. It is transient:
// it lives only between pointer-down and pointer-up and is never part of the
// document.
type dragContext struct {
	kind      dragKind
	regionID  string
	partIdx   int
	vertexIdx int
	handle    Handle
	anchor    geom.Point
	orig      region.Part // rectangle at drag start (resize only)
}

// Editor drives all geometry mutation from pointer events. All methods run
// synchronously on the UI event thread; there is no internal locking.
type Editor struct {
	doc    *region.Document
	logger *slog.Logger

	baseHandle float64
	zoom       float64

	mode      Mode
	drag      *dragContext
	cursor    string
	listeners []ChangeListener
}

// NewEditor returns an editor for the document. baseHandle is the on-screen
// handle size in pixels; the image-space hot zone is baseHandle divided by
// the current zoom.
func NewEditor(doc *region.Document, baseHandle float64, logger *slog.Logger) *Editor {
	if baseHandle <= 0 {
		baseHandle = 10
	}
	return &Editor{doc: doc, logger: logger, baseHandle: baseHandle, zoom: 1, cursor: CursorDefault}
}

// Document returns the edited document.
func (e *Editor) Document() *region.Document { return e.doc }

// AddListener registers a repaint callback.
func (e *Editor) AddListener(l ChangeListener) {
	if e == nil || l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

func (e *Editor) notify() {
	for _, l := range e.listeners {
		l()
	}
}

// SetZoom updates the zoom scalar used to size hot zones.
func (e *Editor) SetZoom(z float64) {
	if e == nil || z <= 0 {
		return
	}
	e.zoom = z
}

// HotZone returns the current hot-zone size in image space.
func (e *Editor) HotZone() float64 { return e.baseHandle / e.zoom }

// Mode returns the active interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetMode toggles a modal mode: requesting the active mode again cancels it,
// requesting a different mode replaces it. Either way every other mode is
// exited, the multi-selection is cleared and any drag is dropped.
func (e *Editor) SetMode(m Mode) {
	if e == nil {
		return
	}
	prev := e.mode
	if m == e.mode {
		e.mode = ModeIdle
	} else {
		e.mode = m
	}
	e.drag = nil
	e.doc.ClearSelection()
	if e.logger != nil && prev != e.mode {
		e.logger.Debug("editor mode transition", "from", prev.String(), "to", e.mode.String())
	}
	e.notify()
}

// Cursor returns the pointer affordance computed by the last pointer event.
func (e *Editor) Cursor() string { return e.cursor }

// Dragging reports whether a drag is captured.
func (e *Editor) Dragging() bool { return e.drag != nil }

// PointerDown resolves the target under p and either performs the modal
// action or captures a drag. Modal modes stay active after their action so
// the user can repeat it.
func (e *Editor) PointerDown(p geom.Point) {
	if e == nil {
		return
	}
	if !p.Valid() {
		e.abandon()
		return
	}
	hot := e.HotZone()

	if e.mode == ModeAddPoint {
		target, ok := closestEdge(e.doc, p)
		if ok && target.dist <= hot {
			e.doc.InsertVertex(target.regionID, target.partIdx, target.edgeIdx, target.closest)
			e.notify()
		}
		return
	}

	hit := Classify(e.doc, p, e.mode, hot)

	switch {
	case e.mode == ModeDeleteRegion && hit.Kind == HitBody:
		e.doc.Delete(hit.Region.ID)
		e.notify()
		return
	case e.mode == ModeDeletePoint && hit.Kind == HitVertex:
		e.doc.DeleteVertex(hit.Region.ID, hit.PartIdx, hit.VertexIdx)
		e.notify()
		return
	case e.mode == ModeSelect && hit.Kind == HitBody:
		e.doc.ToggleSelect(hit.Region.ID)
		e.notify()
		return
	}

	if hit.Kind == HitNone {
		return
	}
	e.startDrag(hit, p)
}

func (e *Editor) startDrag(hit Hit, p geom.Point) {
	d := &dragContext{
		regionID:  hit.Region.ID,
		partIdx:   hit.PartIdx,
		vertexIdx: hit.VertexIdx,
		handle:    hit.Handle,
		anchor:    p,
	}
	switch hit.Kind {
	case HitBody:
		d.kind = dragBody
	case HitVertex:
		d.kind = dragVertex
	case HitHandle:
		d.kind = dragResize
		d.orig = hit.Region.Parts[hit.PartIdx].Clone()
	}
	e.drag = d
	e.cursor = hit.Cursor
	e.doc.BringToTop(hit.Region.ID)
	e.doc.ClearSelection()
	e.notify()
}

// PointerMove continues a captured drag, or, when idle, re-runs the
// classifier to refresh the pointer affordance without mutating anything.
func (e *Editor) PointerMove(p geom.Point) {
	if e == nil {
		return
	}
	if !p.Valid() {
		e.abandon()
		return
	}
	if e.drag == nil {
		if e.mode == ModeAddPoint {
			e.cursor = CursorCrosshair
			return
		}
		e.cursor = Classify(e.doc, p, e.mode, e.HotZone()).Cursor
		return
	}

	d := e.drag
	switch d.kind {
	case dragBody:
		dx, dy := p.X-d.anchor.X, p.Y-d.anchor.Y
		if e.doc.TranslateRegion(d.regionID, dx, dy) {
			d.anchor = p
			e.notify()
		}
	case dragVertex:
		e.doc.MoveVertex(d.regionID, d.partIdx, d.vertexIdx, p)
		e.notify()
	case dragResize:
		e.resizeTo(d, p)
		e.notify()
	}
}

// resizeTo recomputes the dragged rectangle from its drag-start geometry and
// the clamped pointer. Each handle moves its own edge(s); the opposite
// edge(s) stay fixed, also when the minimum size pins the result.
func (e *Editor) resizeTo(d *dragContext, p geom.Point) {
	r := e.doc.ByID(d.regionID)
	if r == nil || d.partIdx < 0 || d.partIdx >= len(r.Parts) {
		return
	}
	part := &r.Parts[d.partIdx]
	if part.Kind != region.RectKind {
		return
	}
	o := d.orig
	cp := p.Clamp(e.doc.ImageW, e.doc.ImageH)
	minSize := e.HotZone()

	x, y, w, h := o.X, o.Y, o.W, o.H
	right, bottom := o.X+o.W, o.Y+o.H

	movesLeft := d.handle == HandleW || d.handle == HandleNW || d.handle == HandleSW
	movesRight := d.handle == HandleE || d.handle == HandleNE || d.handle == HandleSE
	movesTop := d.handle == HandleN || d.handle == HandleNW || d.handle == HandleNE
	movesBottom := d.handle == HandleS || d.handle == HandleSW || d.handle == HandleSE

	if movesLeft {
		x = cp.X
		w = right - cp.X
	}
	if movesRight {
		w = cp.X - o.X
	}
	if movesTop {
		y = cp.Y
		h = bottom - cp.Y
	}
	if movesBottom {
		h = cp.Y - o.Y
	}

	if w < minSize {
		w = minSize
		if movesLeft {
			x = right - minSize
		} else {
			x = o.X
		}
	}
	if h < minSize {
		h = minSize
		if movesTop {
			y = bottom - minSize
		} else {
			y = o.Y
		}
	}

	part.X, part.Y, part.W, part.H = x, y, w, h
}

// PointerUp releases any captured drag. Idempotent.
func (e *Editor) PointerUp() {
	if e == nil || e.drag == nil {
		return
	}
	e.drag = nil
	e.notify()
}

// PointerLeave is treated identically to pointer-up.
func (e *Editor) PointerLeave() { e.PointerUp() }

// abandon drops the in-flight interaction after an unresolvable pointer
// event: any drag is released and a pending point-insertion click is
// cancelled.
func (e *Editor) abandon() {
	changed := e.drag != nil
	e.drag = nil
	if e.mode == ModeAddPoint {
		e.mode = ModeIdle
		changed = true
	}
	if changed {
		if e.logger != nil {
			e.logger.Debug("pointer interaction abandoned")
		}
		e.notify()
	}
}
