package geom

import "math"

// Point is a position in image space. The view layer converts screen
// coordinates before they reach this package.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp restricts the point into [0,w] x [0,h].
func (p Point) Clamp(w, h float64) Point {
	return Point{X: clamp(p.X, 0, w), Y: clamp(p.Y, 0, h)}
}

// Valid reports whether both coordinates are finite numbers. Pointer events
// with unresolvable coordinates produce invalid points and are dropped.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceToSegment returns the distance from p to the segment a-b and the
// closest point on the segment. The projection parameter is clamped to [0,1];
// a degenerate segment (a == b) reduces to a point distance.
func DistanceToSegment(p, a, b Point) (float64, Point) {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Distance(a), a
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = clamp(t, 0, 1)
	closest := Point{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return p.Distance(closest), closest
}

// PointInPolygon reports whether p lies inside the polygon described by vs
// using the even-odd ray casting rule. The polygon is implicitly closed.
func PointInPolygon(p Point, vs []Point) bool {
	if len(vs) < 3 {
		return false
	}
	inside := false
	j := len(vs) - 1
	for i := 0; i < len(vs); i++ {
		xi, yi := vs[i].X, vs[i].Y
		xj, yj := vs[j].X, vs[j].Y
		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
