package region

import (
	"github.com/soocke/region-crop-go/domain/geom"
)

// PartKind discriminates the two shape variants a part can take.
type PartKind int

const (
	RectKind PartKind = iota
	PolyKind
)

func (k PartKind) String() string {
	switch k {
	case RectKind:
		return "rect"
	case PolyKind:
		return "poly"
	default:
		return "unknown"
	}
}

// Part is one shape contributing to a region's silhouette. It is a tagged
// union: RectKind uses X/Y/W/H, PolyKind uses Points. A rectangle converts to
// a polygon exactly once, when a vertex is inserted into one of its edges.
type Part struct {
	Kind PartKind

	// Rect fields (RectKind only).
	X, Y, W, H float64

	// Polygon vertices in insertion order (PolyKind only).
	Points []geom.Point
}

// NewRect returns a rectangle part.
func NewRect(x, y, w, h float64) Part {
	return Part{Kind: RectKind, X: x, Y: y, W: w, H: h}
}

// NewPoly returns a polygon part owning the given vertex slice.
func NewPoly(points []geom.Point) Part {
	return Part{Kind: PolyKind, Points: points}
}

// Clone returns a deep copy of the part.
func (p Part) Clone() Part {
	c := p
	if p.Kind == PolyKind {
		c.Points = make([]geom.Point, len(p.Points))
		copy(c.Points, p.Points)
	}
	return c
}

// Corners returns the rectangle corners in [nw, ne, se, sw] order. This is
// the vertex order a rectangle keeps when it is reified into a polygon.
func (p Part) Corners() []geom.Point {
	return []geom.Point{
		{X: p.X, Y: p.Y},
		{X: p.X + p.W, Y: p.Y},
		{X: p.X + p.W, Y: p.Y + p.H},
		{X: p.X, Y: p.Y + p.H},
	}
}

// Vertices returns the part outline: reified corners for rectangles, the
// point list for polygons.
func (p Part) Vertices() []geom.Point {
	switch p.Kind {
	case RectKind:
		return p.Corners()
	case PolyKind:
		return p.Points
	default:
		return nil
	}
}

// Translate moves the part by (dx, dy) in place.
func (p *Part) Translate(dx, dy float64) {
	switch p.Kind {
	case RectKind:
		p.X += dx
		p.Y += dy
	case PolyKind:
		for i := range p.Points {
			p.Points[i].X += dx
			p.Points[i].Y += dy
		}
	}
}

// AABB returns the axis-aligned bounding box as (minX, minY, maxX, maxY).
func (p Part) AABB() (minX, minY, maxX, maxY float64) {
	vs := p.Vertices()
	if len(vs) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = vs[0].X, vs[0].Y
	maxX, maxY = vs[0].X, vs[0].Y
	for _, v := range vs[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return minX, minY, maxX, maxY
}

// Inside reports whether the whole part lies within [0,w] x [0,h].
func (p Part) Inside(w, h float64) bool {
	minX, minY, maxX, maxY := p.AABB()
	return minX >= 0 && minY >= 0 && maxX <= w && maxY <= h
}

// Contains reports whether q is inside the part body. Rectangle containment
// is strict (boundary excluded); polygons use the even-odd rule.
func (p Part) Contains(q geom.Point) bool {
	switch p.Kind {
	case RectKind:
		return q.X > p.X && q.X < p.X+p.W && q.Y > p.Y && q.Y < p.Y+p.H
	case PolyKind:
		return geom.PointInPolygon(q, p.Points)
	default:
		return false
	}
}
