package editor

import (
	"github.com/soocke/region-crop-go/domain/geom"
	"github.com/soocke/region-crop-go/domain/region"
)

// HitKind classifies the feature found under the pointer.
type HitKind int

const (
	HitNone HitKind = iota
	HitBody
	HitHandle
	HitVertex
)

func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "none"
	case HitBody:
		return "body"
	case HitHandle:
		return "handle"
	case HitVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Handle identifies one of the eight rectangle resize controls.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleE
	HandleS
	HandleW
	HandleNW
	HandleNE
	HandleSE
	HandleSW
)

func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleE:
		return "e"
	case HandleS:
		return "s"
	case HandleW:
		return "w"
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	default:
		return "none"
	}
}

// Cursor returns the pointer affordance label for the handle.
func (h Handle) Cursor() string {
	switch h {
	case HandleNone:
		return CursorDefault
	default:
		return h.String() + "-resize"
	}
}

// Pointer affordance labels. The view maps these to toolkit cursor names.
const (
	CursorDefault   = "default"
	CursorMove      = "move"
	CursorPointer   = "pointer"
	CursorCrosshair = "crosshair"
)

// Hit is the result of classifying a pointer position.
type Hit struct {
	Kind      HitKind
	Region    *region.Region
	PartIdx   int
	VertexIdx int
	Handle    Handle
	Cursor    string
}

// handleCenter returns the image-space center of a rect handle.
func handleCenter(p region.Part, h Handle) geom.Point {
	switch h {
	case HandleNW:
		return geom.Pt(p.X, p.Y)
	case HandleN:
		return geom.Pt(p.X+p.W/2, p.Y)
	case HandleNE:
		return geom.Pt(p.X+p.W, p.Y)
	case HandleE:
		return geom.Pt(p.X+p.W, p.Y+p.H/2)
	case HandleSE:
		return geom.Pt(p.X+p.W, p.Y+p.H)
	case HandleS:
		return geom.Pt(p.X+p.W/2, p.Y+p.H)
	case HandleSW:
		return geom.Pt(p.X, p.Y+p.H)
	case HandleW:
		return geom.Pt(p.X, p.Y+p.H/2)
	default:
		return geom.Pt(p.X, p.Y)
	}
}

// rectHandles lists the eight handles, corners first so they win over the
// midpoints they overlap at small sizes.
var rectHandles = []Handle{
	HandleNW, HandleNE, HandleSE, HandleSW,
	HandleN, HandleE, HandleS, HandleW,
}

// HandlePoints returns the eight rectangle handle centers in hit-test order.
// Renderers use it so drawn handles line up exactly with the hot zones.
func HandlePoints(p region.Part) []geom.Point {
	pts := make([]geom.Point, 0, len(rectHandles))
	for _, h := range rectHandles {
		pts = append(pts, handleCenter(p, h))
	}
	return pts
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Classify finds the topmost feature under p. Regions are scanned
// back-to-front so the most recently raised region wins; parts are scanned
// in order within a region. hot is the hot-zone size in image space (base
// handle size divided by the current zoom): handles use a square of side hot,
// vertices a circle of radius hot.
func Classify(doc *region.Document, p geom.Point, mode Mode, hot float64) Hit {
	bodyCursor := CursorMove
	if mode == ModeSelect || mode == ModeDeleteRegion {
		bodyCursor = CursorPointer
	}
	handlesActive := mode == ModeIdle
	verticesActive := mode != ModeSelect && mode != ModeAddPoint

	regions := doc.Regions()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		for pi, part := range r.Parts {
			switch part.Kind {
			case region.RectKind:
				if handlesActive {
					for _, h := range rectHandles {
						c := handleCenter(part, h)
						if abs(p.X-c.X) <= hot/2 && abs(p.Y-c.Y) <= hot/2 {
							return Hit{Kind: HitHandle, Region: r, PartIdx: pi, VertexIdx: -1, Handle: h, Cursor: h.Cursor()}
						}
					}
				}
				if part.Contains(p) {
					return Hit{Kind: HitBody, Region: r, PartIdx: pi, VertexIdx: -1, Cursor: bodyCursor}
				}
			case region.PolyKind:
				if verticesActive {
					for vi, v := range part.Points {
						if p.Distance(v) <= hot {
							cursor := CursorMove
							if mode == ModeDeletePoint {
								cursor = CursorPointer
							}
							return Hit{Kind: HitVertex, Region: r, PartIdx: pi, VertexIdx: vi, Cursor: cursor}
						}
					}
				}
				if part.Contains(p) {
					return Hit{Kind: HitBody, Region: r, PartIdx: pi, VertexIdx: -1, Cursor: bodyCursor}
				}
			}
		}
	}
	return Hit{Kind: HitNone, PartIdx: -1, VertexIdx: -1, Cursor: CursorDefault}
}

// edgeTarget locates the closest part edge to p across the whole collection.
type edgeTarget struct {
	regionID string
	partIdx  int
	edgeIdx  int
	closest  geom.Point
	dist     float64
}

// closestEdge scans every edge of every part and returns the nearest one.
// Rect edges are indexed in the [nw,ne,se,sw] corner order the rectangle
// reifies into, so the edge index stays valid after conversion.
func closestEdge(doc *region.Document, p geom.Point) (edgeTarget, bool) {
	best := edgeTarget{dist: -1}
	for _, r := range doc.Regions() {
		for pi, part := range r.Parts {
			vs := part.Vertices()
			n := len(vs)
			if n < 2 {
				continue
			}
			for ei := 0; ei < n; ei++ {
				d, c := geom.DistanceToSegment(p, vs[ei], vs[(ei+1)%n])
				if best.dist < 0 || d < best.dist {
					best = edgeTarget{regionID: r.ID, partIdx: pi, edgeIdx: ei, closest: c, dist: d}
				}
			}
		}
	}
	return best, best.dist >= 0
}
