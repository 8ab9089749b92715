package region

import (
	"github.com/google/uuid"

	"github.com/soocke/region-crop-go/domain/geom"
)

// Region is a user-defined crop area made of one or more parts. Parts may
// overlap; the visible silhouette is the union of their areas.
type Region struct {
	ID    string
	Parts []Part
}

// Clone returns a deep copy of the region.
func (r *Region) Clone() *Region {
	c := &Region{ID: r.ID, Parts: make([]Part, len(r.Parts))}
	for i, p := range r.Parts {
		c.Parts[i] = p.Clone()
	}
	return c
}

// Translate moves every part by (dx, dy).
func (r *Region) Translate(dx, dy float64) {
	for i := range r.Parts {
		r.Parts[i].Translate(dx, dy)
	}
}

// Inside reports whether every part lies within [0,w] x [0,h].
func (r *Region) Inside(w, h float64) bool {
	for _, p := range r.Parts {
		if !p.Inside(w, h) {
			return false
		}
	}
	return true
}

// AABB returns the bounding box of the union of all parts.
func (r *Region) AABB() (minX, minY, maxX, maxY float64) {
	if len(r.Parts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY, maxX, maxY = r.Parts[0].AABB()
	for _, p := range r.Parts[1:] {
		x0, y0, x1, y1 := p.AABB()
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return minX, minY, maxX, maxY
}

// DefaultRegionFrac is the side of a newly created region relative to the
// shorter image dimension.
const DefaultRegionFrac = 0.25

// Document owns the ordered region collection, the multi-select set and the
// image bounds all geometry is clamped to. Order is paint order: later
// regions draw on top and win hit-test ties.
type Document struct {
	ImageW, ImageH float64

	regions  []*Region
	selected map[string]bool
}

// NewDocument returns a document for an image of the given pixel size.
func NewDocument(imageW, imageH float64) *Document {
	return &Document{ImageW: imageW, ImageH: imageH, selected: make(map[string]bool)}
}

// Regions returns the collection in paint order. Callers must not reorder it.
func (d *Document) Regions() []*Region { return d.regions }

// Len returns the number of regions.
func (d *Document) Len() int { return len(d.regions) }

// ByID returns the region with the given id, or nil.
func (d *Document) ByID(id string) *Region {
	for _, r := range d.regions {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func newID() string { return uuid.NewString() }

// CreateRegion appends a new region holding a single square rectangle
// centered on the given point. The square side is DefaultRegionFrac of the
// shorter image dimension; creation always lands fully inside the image.
func (d *Document) CreateRegion(center geom.Point) *Region {
	short := d.ImageW
	if d.ImageH < short {
		short = d.ImageH
	}
	side := short * DefaultRegionFrac
	x := center.X - side/2
	y := center.Y - side/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+side > d.ImageW {
		x = d.ImageW - side
	}
	if y+side > d.ImageH {
		y = d.ImageH - side
	}
	r := &Region{ID: newID(), Parts: []Part{NewRect(x, y, side, side)}}
	d.regions = append(d.regions, r)
	return r
}

// Delete removes the region with the given id. Unknown ids are ignored.
func (d *Document) Delete(id string) {
	for i, r := range d.regions {
		if r.ID == id {
			d.regions = append(d.regions[:i], d.regions[i+1:]...)
			delete(d.selected, id)
			return
		}
	}
}

// DeleteAll removes every region and clears the selection.
func (d *Document) DeleteAll() {
	d.regions = nil
	d.selected = make(map[string]bool)
}

// BringToTop moves the region to the end of the collection so it draws last
// and is hit-tested first.
func (d *Document) BringToTop(id string) {
	for i, r := range d.regions {
		if r.ID == id {
			d.regions = append(d.regions[:i], d.regions[i+1:]...)
			d.regions = append(d.regions, r)
			return
		}
	}
}

// ToggleSelect flips the region id in the multi-select set. Unknown ids are
// ignored.
func (d *Document) ToggleSelect(id string) {
	if d.ByID(id) == nil {
		return
	}
	if d.selected[id] {
		delete(d.selected, id)
	} else {
		d.selected[id] = true
	}
}

// Selected reports whether the region id is in the multi-select set.
func (d *Document) Selected(id string) bool { return d.selected[id] }

// SelectionCount returns the size of the multi-select set.
func (d *Document) SelectionCount() int { return len(d.selected) }

// ClearSelection empties the multi-select set.
func (d *Document) ClearSelection() {
	if len(d.selected) > 0 {
		d.selected = make(map[string]bool)
	}
}

// MergeSelected concatenates the parts of all selected regions, in collection
// order, into one new region with a fresh id. The source regions are removed
// and the selection is cleared. With fewer than two regions selected the call
// is a no-op and returns nil.
func (d *Document) MergeSelected() *Region {
	if len(d.selected) < 2 {
		return nil
	}
	merged := &Region{ID: newID()}
	kept := d.regions[:0]
	for _, r := range d.regions {
		if d.selected[r.ID] {
			merged.Parts = append(merged.Parts, r.Parts...)
		} else {
			kept = append(kept, r)
		}
	}
	d.regions = append(kept, merged)
	d.selected = make(map[string]bool)
	return merged
}

// InsertVertex inserts a point immediately after the given edge index. A
// rectangle part is first reified into a polygon with corners in
// [nw, ne, se, sw] order, so edge i runs from corner i to corner (i+1)%4.
func (d *Document) InsertVertex(regionID string, partIdx, edgeIdx int, p geom.Point) {
	r := d.ByID(regionID)
	if r == nil || partIdx < 0 || partIdx >= len(r.Parts) {
		return
	}
	part := &r.Parts[partIdx]
	if part.Kind == RectKind {
		*part = NewPoly(part.Corners())
	}
	n := len(part.Points)
	if edgeIdx < 0 || edgeIdx >= n {
		return
	}
	p = p.Clamp(d.ImageW, d.ImageH)
	part.Points = append(part.Points, geom.Point{})
	copy(part.Points[edgeIdx+2:], part.Points[edgeIdx+1:])
	part.Points[edgeIdx+1] = p
}

// DeleteVertex removes a polygon vertex, refusing to drop below three points.
func (d *Document) DeleteVertex(regionID string, partIdx, vertexIdx int) {
	r := d.ByID(regionID)
	if r == nil || partIdx < 0 || partIdx >= len(r.Parts) {
		return
	}
	part := &r.Parts[partIdx]
	if part.Kind != PolyKind {
		return
	}
	if len(part.Points) <= 3 {
		return
	}
	if vertexIdx < 0 || vertexIdx >= len(part.Points) {
		return
	}
	part.Points = append(part.Points[:vertexIdx], part.Points[vertexIdx+1:]...)
}

// MoveVertex places a polygon vertex at p, clamped into the image bounds.
func (d *Document) MoveVertex(regionID string, partIdx, vertexIdx int, p geom.Point) {
	r := d.ByID(regionID)
	if r == nil || partIdx < 0 || partIdx >= len(r.Parts) {
		return
	}
	part := &r.Parts[partIdx]
	if part.Kind != PolyKind || vertexIdx < 0 || vertexIdx >= len(part.Points) {
		return
	}
	part.Points[vertexIdx] = p.Clamp(d.ImageW, d.ImageH)
}

// TranslateRegion moves the whole region by (dx, dy). The move is rejected
// wholesale when any part would leave the image bounds; a rejected move
// leaves the geometry untouched. Reports whether the move was applied.
func (d *Document) TranslateRegion(regionID string, dx, dy float64) bool {
	r := d.ByID(regionID)
	if r == nil {
		return false
	}
	moved := r.Clone()
	moved.Translate(dx, dy)
	if !moved.Inside(d.ImageW, d.ImageH) {
		return false
	}
	r.Parts = moved.Parts
	return true
}
