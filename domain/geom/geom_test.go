package geom

import (
	"math"
	"testing"
)

func TestDistanceToSegment_ProjectsAndClamps(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	// Perpendicular projection onto the interior.
	d, c := DistanceToSegment(Pt(5, 3), a, b)
	if math.Abs(d-3) > 1e-9 {
		t.Fatalf("expected distance 3, got %v", d)
	}
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Fatalf("expected closest (5,0), got %v", c)
	}

	// Beyond the end clamps to the endpoint.
	d, c = DistanceToSegment(Pt(14, 3), a, b)
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5 past endpoint, got %v", d)
	}
	if c != b {
		t.Fatalf("expected closest %v, got %v", b, c)
	}
}

func TestDistanceToSegment_Degenerate(t *testing.T) {
	a := Pt(2, 2)
	d, c := DistanceToSegment(Pt(5, 6), a, a)
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected point distance 5, got %v", d)
	}
	if c != a {
		t.Fatalf("expected closest %v, got %v", a, c)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if !PointInPolygon(Pt(5, 5), square) {
		t.Fatalf("center should be inside")
	}
	if PointInPolygon(Pt(15, 5), square) {
		t.Fatalf("point right of square should be outside")
	}
	// Concave polygon (notch cut into the right side).
	concave := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(4, 5), Pt(10, 6), Pt(10, 10), Pt(0, 10)}
	if PointInPolygon(Pt(8, 5), concave) {
		t.Fatalf("point in notch should be outside")
	}
	if !PointInPolygon(Pt(2, 5), concave) {
		t.Fatalf("point left of notch should be inside")
	}
}

func TestPointInPolygon_TooFewVertices(t *testing.T) {
	if PointInPolygon(Pt(1, 1), []Point{Pt(0, 0), Pt(2, 2)}) {
		t.Fatalf("two vertices can not contain a point")
	}
}

func TestPointClampAndValid(t *testing.T) {
	p := Pt(-3, 700).Clamp(800, 600)
	if p != Pt(0, 600) {
		t.Fatalf("clamp result %v", p)
	}
	if !Pt(1, 2).Valid() {
		t.Fatalf("finite point should be valid")
	}
	if Pt(math.NaN(), 0).Valid() || Pt(0, math.Inf(1)).Valid() {
		t.Fatalf("non-finite points must be invalid")
	}
}
