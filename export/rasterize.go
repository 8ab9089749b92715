package export

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/soocke/region-crop-go/domain/region"
)

// ProcessedImage is one exported crop. It carries no reference back to the
// region that produced it and can be deleted independently.
type ProcessedImage struct {
	ID    string
	Name  string
	Image *image.RGBA
}

// Rasterizer turns regions into alpha-masked crops of the source image.
type Rasterizer struct {
	logger *slog.Logger
}

func NewRasterizer(logger *slog.Logger) *Rasterizer {
	return &Rasterizer{logger: logger}
}

// Process renders every region of the document against src and returns the
// crops in region order, named {base}_region_{n}.png with a 1-based index.
// Regions with a degenerate bounding box are skipped silently. Each call
// produces a fresh set; callers replace any previous output with it.
func (rz *Rasterizer) Process(doc *region.Document, src image.Image, base string) []ProcessedImage {
	if doc == nil || src == nil {
		return nil
	}
	if base == "" {
		base = "image"
	}
	var out []ProcessedImage
	for i, r := range doc.Regions() {
		name := fmt.Sprintf("%s_region_%d.png", base, i+1)
		img := rz.renderRegion(r, src)
		if img == nil {
			if rz.logger != nil {
				rz.logger.Debug("skipping degenerate region", "name", name, "region", r.ID)
			}
			continue
		}
		out = append(out, ProcessedImage{ID: uuid.NewString(), Name: name, Image: img})
	}
	return out
}

// renderRegion composites src through the union of the region's parts.
// Output alpha is taken from the source wherever a part was drawn and zero
// elsewhere (source-in through the part mask).
func (rz *Rasterizer) renderRegion(r *region.Region, src image.Image) *image.RGBA {
	minX, minY, maxX, maxY := r.AABB()
	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - x0
	h := int(math.Ceil(maxY)) - y0
	if w <= 0 || h <= 0 {
		return nil
	}

	mask := maskFor(r, float64(x0), float64(y0), w, h)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	sp := src.Bounds().Min.Add(image.Pt(x0, y0))
	draw.DrawMask(out, out.Bounds(), src, sp, mask, image.Point{}, draw.Over)
	return out
}

// maskFor draws the region's parts filled onto a transparent surface sized
// to the bounding box, translated so (ox, oy) maps to the origin. Parts are
// filled one at a time so overlapping parts union instead of cancelling
// under the even-odd rule.
func maskFor(r *region.Region, ox, oy float64, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetRGB(1, 1, 1)
	for _, p := range r.Parts {
		switch p.Kind {
		case region.RectKind:
			dc.DrawRectangle(p.X-ox, p.Y-oy, p.W, p.H)
		case region.PolyKind:
			if len(p.Points) < 3 {
				continue
			}
			dc.MoveTo(p.Points[0].X-ox, p.Points[0].Y-oy)
			for _, v := range p.Points[1:] {
				dc.LineTo(v.X-ox, v.Y-oy)
			}
			dc.ClosePath()
		}
		_ = dc.Fill()
	}
	return dc.Image()
}
