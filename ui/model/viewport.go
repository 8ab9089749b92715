package model

import (
	"github.com/soocke/region-crop-go/domain/geom"
)

// Viewport is the linear screen<->image mapping: screen = image*zoom + offset.
// It belongs to the view layer; the geometry engine only ever sees converted
// image-space coordinates and the zoom scalar. No synchronization needed:
// updates occur on the UI thread.
type Viewport struct {
	zoom             float64
	offX, offY       float64
	minZoom, maxZoom float64
}

// NewViewport returns a viewport at zoom 1 with the given zoom limits.
func NewViewport(minZoom, maxZoom float64) *Viewport {
	if minZoom <= 0 {
		minZoom = 0.1
	}
	if maxZoom <= minZoom {
		maxZoom = minZoom * 100
	}
	return &Viewport{zoom: 1, minZoom: minZoom, maxZoom: maxZoom}
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 {
	if v == nil {
		return 1
	}
	return v.zoom
}

// Offset returns the screen-space offset.
func (v *Viewport) Offset() (x, y float64) {
	if v == nil {
		return 0, 0
	}
	return v.offX, v.offY
}

// ScreenToImage converts a screen position to image space.
func (v *Viewport) ScreenToImage(x, y float64) geom.Point {
	if v == nil {
		return geom.Pt(x, y)
	}
	return geom.Pt((x-v.offX)/v.zoom, (y-v.offY)/v.zoom)
}

// ImageToScreen converts an image position to screen space.
func (v *Viewport) ImageToScreen(p geom.Point) (x, y float64) {
	if v == nil {
		return p.X, p.Y
	}
	return p.X*v.zoom + v.offX, p.Y*v.zoom + v.offY
}

// Pan shifts the offset by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	if v == nil {
		return
	}
	v.offX += dx
	v.offY += dy
}

// ZoomAt multiplies the zoom by factor, clamped to the configured limits,
// keeping the image point under the given screen position stationary.
func (v *Viewport) ZoomAt(factor, screenX, screenY float64) {
	if v == nil || factor <= 0 {
		return
	}
	next := v.zoom * factor
	if next < v.minZoom {
		next = v.minZoom
	}
	if next > v.maxZoom {
		next = v.maxZoom
	}
	if next == v.zoom {
		return
	}
	anchor := v.ScreenToImage(screenX, screenY)
	v.zoom = next
	v.offX = screenX - anchor.X*v.zoom
	v.offY = screenY - anchor.Y*v.zoom
}
