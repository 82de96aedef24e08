// Package export writes board snapshots to files.
package export

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

var (
	// ErrEmptyRaster is returned when the snapshot has no pixels.
	ErrEmptyRaster = errors.New("raster has no area")
	// ErrUnsupportedFormat is returned for an output path whose extension
	// names no known format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// PNG writes img to path, keeping transparency.
func PNG(path string, img image.Image) error {
	if img.Bounds().Empty() {
		return ErrEmptyRaster
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// ToFile picks the format from the extension of path.
func ToFile(path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG(path, img)
	case ".pdf":
		return PDF(path, img)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}
