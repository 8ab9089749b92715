package region

import (
	"reflect"
	"testing"

	"github.com/soocke/region-crop-go/domain/geom"
)

func TestCreateRegion_CenteredSquare(t *testing.T) {
	d := NewDocument(800, 600)
	r := d.CreateRegion(geom.Pt(400, 300))
	if r == nil || len(r.Parts) != 1 {
		t.Fatalf("expected one-part region, got %+v", r)
	}
	p := r.Parts[0]
	if p.Kind != RectKind {
		t.Fatalf("expected rect part, got %v", p.Kind)
	}
	// 25% of the shorter dimension (600) = 150, centered on (400,300).
	if p.W != 150 || p.H != 150 || p.X != 325 || p.Y != 225 {
		t.Fatalf("unexpected rect %+v", p)
	}
}

func TestCreateRegion_ClampedIntoBounds(t *testing.T) {
	d := NewDocument(800, 600)
	r := d.CreateRegion(geom.Pt(0, 0))
	p := r.Parts[0]
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("expected creation clamped to origin, got %+v", p)
	}
	if !r.Inside(800, 600) {
		t.Fatalf("new region must be fully inside the image")
	}
}

func TestInsertVertex_ReifiesRect(t *testing.T) {
	d := NewDocument(800, 600)
	r := d.CreateRegion(geom.Pt(400, 300))
	// Insert into the top edge (edge 0: nw -> ne).
	d.InsertVertex(r.ID, 0, 0, geom.Pt(400, 225))
	p := r.Parts[0]
	if p.Kind != PolyKind {
		t.Fatalf("rect should reify to polygon, got %v", p.Kind)
	}
	want := []geom.Point{
		{X: 325, Y: 225}, // nw
		{X: 400, Y: 225}, // inserted
		{X: 475, Y: 225}, // ne
		{X: 475, Y: 375}, // se
		{X: 325, Y: 375}, // sw
	}
	if len(p.Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(p.Points))
	}
	for i, w := range want {
		if p.Points[i] != w {
			t.Fatalf("point %d: expected %v, got %v", i, w, p.Points[i])
		}
	}
}

func TestInsertVertex_PolyInsertsAfterEdge(t *testing.T) {
	d := NewDocument(100, 100)
	r := &Region{ID: newID(), Parts: []Part{NewPoly([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	})}}
	d.regions = append(d.regions, r)
	d.InsertVertex(r.ID, 0, 2, geom.Pt(5, 5))
	pts := r.Parts[0].Points
	if len(pts) != 4 || pts[3] != geom.Pt(5, 5) {
		t.Fatalf("expected insertion after edge 2, got %v", pts)
	}
}

func TestDeleteVertex_TrianglePreserved(t *testing.T) {
	d := NewDocument(100, 100)
	r := &Region{ID: newID(), Parts: []Part{NewPoly([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	})}}
	d.regions = append(d.regions, r)
	d.DeleteVertex(r.ID, 0, 1)
	if n := len(r.Parts[0].Points); n != 3 {
		t.Fatalf("deleting from a triangle must be a no-op, got %d points", n)
	}

	// With four points deletion proceeds.
	d.InsertVertex(r.ID, 0, 0, geom.Pt(5, 0))
	d.DeleteVertex(r.ID, 0, 1)
	if n := len(r.Parts[0].Points); n != 3 {
		t.Fatalf("expected 3 points after delete, got %d", n)
	}
}

func TestMergeSelected_Properties(t *testing.T) {
	d := NewDocument(800, 600)
	a := d.CreateRegion(geom.Pt(200, 200))
	b := d.CreateRegion(geom.Pt(400, 300))
	c := d.CreateRegion(geom.Pt(600, 400))
	d.InsertVertex(b.ID, 0, 0, geom.Pt(400, 225)) // give b a polygon part
	totalParts := len(a.Parts) + len(b.Parts) + len(c.Parts)

	d.ToggleSelect(a.ID)
	d.ToggleSelect(c.ID)
	merged := d.MergeSelected()
	if merged == nil {
		t.Fatalf("merge of two selections should succeed")
	}
	if d.Len() != 2 {
		t.Fatalf("expected region count 2 after merge, got %d", d.Len())
	}
	if d.ByID(a.ID) != nil || d.ByID(c.ID) != nil {
		t.Fatalf("source regions must be removed")
	}
	if merged.ID == a.ID || merged.ID == c.ID {
		t.Fatalf("merged region needs a fresh id")
	}
	if got := len(merged.Parts) + len(d.ByID(b.ID).Parts); got != totalParts {
		t.Fatalf("total part count changed: expected %d, got %d", totalParts, got)
	}
	if d.SelectionCount() != 0 {
		t.Fatalf("selection must be cleared after merge")
	}
}

func TestMergeSelected_SingleSelectionNoop(t *testing.T) {
	d := NewDocument(800, 600)
	a := d.CreateRegion(geom.Pt(200, 200))
	d.ToggleSelect(a.ID)
	if d.MergeSelected() != nil {
		t.Fatalf("merge with one selection must be a no-op")
	}
	if d.Len() != 1 {
		t.Fatalf("region count must be unchanged")
	}
}

func TestTranslateRegion_BoundsRejection(t *testing.T) {
	d := NewDocument(800, 600)
	r := d.CreateRegion(geom.Pt(100, 100))
	before := r.Clone()

	if d.TranslateRegion(r.ID, -5000, 0) {
		t.Fatalf("out-of-bounds move must be rejected")
	}
	for i, p := range r.Parts {
		bp := before.Parts[i]
		if p.X != bp.X || p.Y != bp.Y || p.W != bp.W || p.H != bp.H {
			t.Fatalf("rejected move mutated geometry: %+v vs %+v", p, bp)
		}
	}

	if !d.TranslateRegion(r.ID, 10, 10) {
		t.Fatalf("in-bounds move must be applied")
	}
	if r.Parts[0].X != before.Parts[0].X+10 {
		t.Fatalf("move not applied: %+v", r.Parts[0])
	}
}

func TestTranslateRegion_WholesaleWithPolygonPart(t *testing.T) {
	d := NewDocument(800, 600)
	r := d.CreateRegion(geom.Pt(100, 100))
	// Second part hugging the left edge; any leftward move must reject the
	// whole region, including the rect part.
	r.Parts = append(r.Parts, NewPoly([]geom.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 20},
	}))
	rectBefore := r.Parts[0]
	if d.TranslateRegion(r.ID, -1, 0) {
		t.Fatalf("move must be rejected when any part would exit bounds")
	}
	if !reflect.DeepEqual(r.Parts[0], rectBefore) {
		t.Fatalf("partial mutation after rejected move")
	}
}

func TestBringToTopAndDelete(t *testing.T) {
	d := NewDocument(800, 600)
	a := d.CreateRegion(geom.Pt(200, 200))
	b := d.CreateRegion(geom.Pt(400, 300))
	d.BringToTop(a.ID)
	if d.Regions()[1].ID != a.ID {
		t.Fatalf("expected %s on top", a.ID)
	}
	d.Delete(b.ID)
	if d.Len() != 1 || d.ByID(b.ID) != nil {
		t.Fatalf("delete failed")
	}
	d.DeleteAll()
	if d.Len() != 0 || d.SelectionCount() != 0 {
		t.Fatalf("delete all failed")
	}
}

func TestMoveVertex_Clamped(t *testing.T) {
	d := NewDocument(100, 100)
	r := &Region{ID: newID(), Parts: []Part{NewPoly([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	})}}
	d.regions = append(d.regions, r)
	d.MoveVertex(r.ID, 0, 2, geom.Pt(500, -20))
	if got := r.Parts[0].Points[2]; got != geom.Pt(100, 0) {
		t.Fatalf("expected clamped vertex (100,0), got %v", got)
	}
}
