package render

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/soocke/region-crop-go/domain/editor"
	"github.com/soocke/region-crop-go/domain/geom"
	"github.com/soocke/region-crop-go/domain/region"
	"github.com/soocke/region-crop-go/ui/model"
	"github.com/soocke/region-crop-go/ui/theme"
)

// canvasBg fills the area around the image. Matches the dark surface tone of
// the theme so the canvas does not flash white between frames.
var canvasBg = color.RGBA{0x1e, 0x29, 0x3b, 0xff}

// Scene composes the source image and region overlays into a screen-space
// frame suitable for a photo label. All geometry is transformed through the
// viewport so overlays stay registered with the scaled image.
type Scene struct {
	logger *slog.Logger
}

func NewScene(logger *slog.Logger) *Scene {
	return &Scene{logger: logger}
}

// Frame renders src with region outlines and edit affordances into a cw x ch
// image. handlePx is the on-screen affordance size; it does not scale with
// zoom, mirroring the hot zones used for hit-testing. Affordances follow the
// current mode: rect handles appear only when idle, vertices whenever vertex
// editing is possible.
func (s *Scene) Frame(src image.Image, doc *region.Document, vp *model.Viewport, mode editor.Mode, handlePx float64, cw, ch int) image.Image {
	if cw < 1 || ch < 1 || src == nil || doc == nil || vp == nil {
		return nil
	}
	frame := image.NewRGBA(image.Rect(0, 0, cw, ch))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(canvasBg), image.Point{}, draw.Src)

	// Scale the source into its on-screen rectangle.
	x0, y0 := vp.ImageToScreen(geom.Pt(0, 0))
	x1, y1 := vp.ImageToScreen(geom.Pt(doc.ImageW, doc.ImageH))
	dst := image.Rect(round(x0), round(y0), round(x1), round(y1))
	xdraw.NearestNeighbor.Scale(frame, dst, src, src.Bounds(), xdraw.Src, nil)

	dc := gg.NewContextForImage(frame)
	for _, r := range doc.Regions() {
		outline := theme.ColorPrimary
		if doc.Selected(r.ID) {
			outline = theme.ColorAccent
		}
		for _, part := range r.Parts {
			s.tracePart(dc, part, vp)
			dc.SetHexColor(outline)
			dc.SetLineWidth(2)
			_ = dc.Stroke()
		}
	}
	s.drawAffordances(dc, doc, vp, mode, handlePx)
	return dc.Image()
}

// tracePart builds the part outline as a screen-space path.
func (s *Scene) tracePart(dc *gg.Context, part region.Part, vp *model.Viewport) {
	var pts []geom.Point
	if part.Kind == region.RectKind {
		pts = part.Corners()
	} else {
		pts = part.Vertices()
	}
	if len(pts) == 0 {
		return
	}
	x, y := vp.ImageToScreen(pts[0])
	dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = vp.ImageToScreen(p)
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

// drawAffordances paints rect handles and polygon vertices over the outlines,
// gated by the same mode rules the hit classifier applies.
func (s *Scene) drawAffordances(dc *gg.Context, doc *region.Document, vp *model.Viewport, mode editor.Mode, handlePx float64) {
	handles := mode == editor.ModeIdle
	vertices := mode != editor.ModeSelect && mode != editor.ModeAddPoint
	if !handles && !vertices {
		return
	}
	for _, r := range doc.Regions() {
		for _, part := range r.Parts {
			switch part.Kind {
			case region.RectKind:
				if !handles {
					continue
				}
				for _, hp := range editor.HandlePoints(part) {
					x, y := vp.ImageToScreen(hp)
					dc.DrawRectangle(x-handlePx/2, y-handlePx/2, handlePx, handlePx)
					dc.SetHexColor(theme.ColorSurface)
					_ = dc.FillPreserve()
					dc.SetHexColor(theme.ColorPrimary)
					dc.SetLineWidth(1)
					_ = dc.Stroke()
				}
			case region.PolyKind:
				if !vertices {
					continue
				}
				fill := theme.ColorPrimary
				if mode == editor.ModeDeletePoint {
					fill = theme.ColorDanger
				}
				for _, vpnt := range part.Points {
					x, y := vp.ImageToScreen(vpnt)
					dc.DrawCircle(x, y, handlePx/2)
					dc.SetHexColor(fill)
					_ = dc.FillPreserve()
					dc.SetHexColor(theme.ColorSurface)
					dc.SetLineWidth(1)
					_ = dc.Stroke()
				}
			}
		}
	}
}

func round(v float64) int { return int(math.Floor(v + 0.5)) }
