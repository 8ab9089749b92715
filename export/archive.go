package export

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// ZipName returns the bundle archive name for a source base name. An empty
// base falls back to "regions".
func ZipName(base string) string {
	if base == "" {
		base = "regions"
	}
	return "cropped_" + base + ".zip"
}

// WriteZip writes every processed image as a PNG entry into a zip archive.
func WriteZip(w io.Writer, images []ProcessedImage) error {
	zw := zip.NewWriter(w)
	for _, img := range images {
		f, err := zw.Create(img.Name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", img.Name, err)
		}
		if err := png.Encode(f, img.Image); err != nil {
			return fmt.Errorf("encode %s: %w", img.Name, err)
		}
	}
	return zw.Close()
}

// SaveZip writes the bundle archive into dir and returns its path.
func SaveZip(dir, base string, images []ProcessedImage) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ZipName(base))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := WriteZip(f, images); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAll writes each processed image as an individual PNG file into dir.
func SaveAll(dir string, images []ProcessedImage) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, img := range images {
		f, err := os.Create(filepath.Join(dir, img.Name))
		if err != nil {
			return err
		}
		if err := png.Encode(f, img.Image); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
