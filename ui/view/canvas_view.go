package view

import (
	"image"

	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/ui/render"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandler receives raw pointer events in canvas pixel coordinates.
// The left button edits regions; the right button pans the viewport.
type PointerHandler interface {
	OnPointerDown(x, y int)
	OnPointerDrag(x, y int)
	OnPointerUp(x, y int)
	OnPointerMove(x, y int)
	OnPointerLeave()
	OnPanDown(x, y int)
	OnPanDrag(x, y int)
}

// CanvasView owns the editor drawing surface: a photo label refreshed with
// rendered frames, plus cursor feedback.
type CanvasView interface {
	UpdateFrame(img image.Image)
	SetCursor(name string)
	Size() (w, h int)
}

type canvasView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
	w, h      int
	cursor    string
}

// tkCursors maps the editor's cursor affordances onto Tk cursor names.
var tkCursors = map[string]string{
	editor.CursorDefault:   "arrow",
	editor.CursorMove:      "fleur",
	editor.CursorPointer:   "hand2",
	editor.CursorCrosshair: "crosshair",
	"n-resize":             "top_side",
	"s-resize":             "bottom_side",
	"e-resize":             "right_side",
	"w-resize":             "left_side",
	"nw-resize":            "top_left_corner",
	"ne-resize":            "top_right_corner",
	"se-resize":            "bottom_right_corner",
	"sw-resize":            "bottom_left_corner",
}

// NewCanvasView creates the canvas label at the given grid row and binds
// pointer events to the handler.
func NewCanvasView(row, w, h int, handler PointerHandler) CanvasView {
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(render.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("nwse"), Padx("0.4m"), Pady("0.4m"))
	v := &canvasView{label: label, prevPhoto: photo, w: w, h: h}

	Bind(label, "<Button-1>", Command(func(e *Event) { handler.OnPointerDown(e.X, e.Y) }))
	Bind(label, "<B1-Motion>", Command(func(e *Event) { handler.OnPointerDrag(e.X, e.Y) }))
	Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { handler.OnPointerUp(e.X, e.Y) }))
	Bind(label, "<Motion>", Command(func(e *Event) { handler.OnPointerMove(e.X, e.Y) }))
	Bind(label, "<Leave>", Command(func() { handler.OnPointerLeave() }))
	Bind(label, "<Button-3>", Command(func(e *Event) { handler.OnPanDown(e.X, e.Y) }))
	Bind(label, "<B3-Motion>", Command(func(e *Event) { handler.OnPanDrag(e.X, e.Y) }))
	return v
}

// UpdateFrame replaces the displayed frame. The previous Tk photo is deleted
// first so obsolete pixel buffers are not retained.
func (v *canvasView) UpdateFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := render.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// SetCursor applies the named editor cursor, skipping redundant reconfigures.
func (v *canvasView) SetCursor(name string) {
	if v == nil || v.label == nil || name == v.cursor {
		return
	}
	tkName, ok := tkCursors[name]
	if !ok {
		tkName = "arrow"
	}
	v.cursor = name
	v.label.Configure(Cursor(tkName))
}

func (v *canvasView) Size() (w, h int) {
	if v == nil {
		return 0, 0
	}
	return v.w, v.h
}
