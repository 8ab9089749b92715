package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"

	"github.com/soocke/region-crop-go/domain/geom"
	"github.com/soocke/region-crop-go/domain/region"
)

// gradientImage returns a w x h opaque image with position-dependent colors
// so crops can be compared against source pixels.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestProcess_SingleRectEqualsSourceSubimage(t *testing.T) {
	src := gradientImage(800, 600)
	doc := region.NewDocument(800, 600)
	r := doc.CreateRegion(geom.Pt(400, 300))
	r.Parts[0] = region.NewRect(300, 200, 200, 200)

	out := NewRasterizer(nil).Process(doc, src, "image")
	require.Len(t, out, 1)
	require.Equal(t, "image_region_1.png", out[0].Name)

	got := out[0].Image
	require.Equal(t, 200, got.Bounds().Dx())
	require.Equal(t, 200, got.Bounds().Dy())
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			want := src.RGBAAt(300+x, 200+y)
			require.Equal(t, want, got.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestProcess_DefaultRegionEndToEnd(t *testing.T) {
	// 800x600 image with the spec's default 200x200 square at the center
	// maps to box [300,200]-[500,400].
	src := gradientImage(800, 600)
	doc := region.NewDocument(800, 600)
	r := doc.CreateRegion(geom.Pt(400, 300))
	r.Parts[0] = region.NewRect(300, 200, 200, 200)

	out := NewRasterizer(nil).Process(doc, src, "image")
	require.Len(t, out, 1)
	require.Equal(t, "image_region_1.png", out[0].Name)
	require.Equal(t, image.Rect(0, 0, 200, 200), out[0].Image.Bounds())
}

func TestProcess_PolygonMasksOutside(t *testing.T) {
	src := gradientImage(200, 200)
	doc := region.NewDocument(200, 200)
	r := doc.CreateRegion(geom.Pt(100, 100))
	// Right triangle covering the lower-left half of [40,40]-[160,160].
	r.Parts[0] = region.NewPoly([]geom.Point{
		{X: 40, Y: 40}, {X: 40, Y: 160}, {X: 160, Y: 160},
	})

	out := NewRasterizer(nil).Process(doc, src, "tri")
	require.Len(t, out, 1)
	img := out[0].Image
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())

	// Deep inside the triangle: opaque source pixel.
	require.Equal(t, uint8(255), img.RGBAAt(10, 110).A)
	require.Equal(t, src.RGBAAt(50, 150), img.RGBAAt(10, 110))
	// Far outside (upper-right corner of the box): fully transparent.
	require.Equal(t, uint8(0), img.RGBAAt(115, 5).A)
}

func TestProcess_MultiPartUnion(t *testing.T) {
	src := gradientImage(300, 300)
	doc := region.NewDocument(300, 300)
	r := doc.CreateRegion(geom.Pt(150, 150))
	// Two overlapping rectangles; the overlap must stay opaque.
	r.Parts[0] = region.NewRect(50, 50, 100, 100)
	r.Parts = append(r.Parts, region.NewRect(100, 100, 100, 100))

	out := NewRasterizer(nil).Process(doc, src, "union")
	require.Len(t, out, 1)
	img := out[0].Image
	require.Equal(t, 150, img.Bounds().Dx())
	// Overlap center (125,125) -> (75,75) in box space.
	require.Equal(t, uint8(255), img.RGBAAt(75, 75).A)
	// Outside both rects but inside the box: (175,75) -> (125,25).
	require.Equal(t, uint8(0), img.RGBAAt(125, 25).A)
}

func TestProcess_SkipsDegenerateRegions(t *testing.T) {
	src := gradientImage(100, 100)
	doc := region.NewDocument(100, 100)
	a := doc.CreateRegion(geom.Pt(50, 50))
	a.Parts[0] = region.NewRect(10, 10, 40, 40)
	b := doc.CreateRegion(geom.Pt(50, 50))
	b.Parts[0] = region.NewRect(20, 20, 0, 0)

	out := NewRasterizer(nil).Process(doc, src, "img")
	require.Len(t, out, 1)
	// Naming still follows region order, so the surviving region keeps its
	// 1-based collection index.
	require.Equal(t, "img_region_1.png", out[0].Name)
}

func TestProcess_NamesFollowRegionOrder(t *testing.T) {
	src := gradientImage(400, 400)
	doc := region.NewDocument(400, 400)
	doc.CreateRegion(geom.Pt(100, 100))
	doc.CreateRegion(geom.Pt(300, 300))

	out := NewRasterizer(nil).Process(doc, src, "photo")
	require.Len(t, out, 2)
	require.Equal(t, "photo_region_1.png", out[0].Name)
	require.Equal(t, "photo_region_2.png", out[1].Name)
	require.NotEqual(t, out[0].ID, out[1].ID)
}

func TestProcess_EmptyBaseFallsBack(t *testing.T) {
	src := gradientImage(100, 100)
	doc := region.NewDocument(100, 100)
	doc.CreateRegion(geom.Pt(50, 50))
	out := NewRasterizer(nil).Process(doc, src, "")
	require.Len(t, out, 1)
	require.Equal(t, "image_region_1.png", out[0].Name)
}

func TestZipName(t *testing.T) {
	require.Equal(t, "cropped_photo.zip", ZipName("photo"))
	require.Equal(t, "cropped_regions.zip", ZipName(""))
}

func TestWriteZip_ContainsAllArtifacts(t *testing.T) {
	src := gradientImage(200, 200)
	doc := region.NewDocument(200, 200)
	doc.CreateRegion(geom.Pt(60, 60))
	doc.CreateRegion(geom.Pt(140, 140))
	images := NewRasterizer(nil).Process(doc, src, "shot")

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, images))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	require.True(t, names["shot_region_1.png"])
	require.True(t, names["shot_region_2.png"])
}
