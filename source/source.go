// Package source acquires the image being edited, either from a file on
// disk or from a screen capture.
package source

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vova616/screenshot"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// LoadFile decodes the image at path and returns it as RGBA together with
// the base name (file name without extension) used for artifact naming.
func LoadFile(path string) (*image.RGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return toRGBA(img), base, nil
}

// CaptureScreen grabs the current screen as the editing target. The base
// name is timestamped so repeated captures produce distinct artifact sets.
func CaptureScreen() (*image.RGBA, string, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, "", err
	}
	if img == nil {
		return nil, "", errors.New("screen capture returned no frame")
	}
	base := "screen_" + time.Now().Format("20060102_150405")
	return img, base, nil
}

// toRGBA converts any decoded image into *image.RGBA with a zero origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
