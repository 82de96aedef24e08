package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
)

// PDF writes img to path as a single page the size of the raster, one point
// per pixel, on a white background.
func PDF(path string, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return ErrEmptyRaster
	}

	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(color.White)
	dc.Clear()
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode page: %w", err)
	}

	w, h := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("board", opts, &buf)
	p.ImageOptions("board", 0, 0, w, h, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
