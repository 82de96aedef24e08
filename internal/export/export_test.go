package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 5; x < 35; x++ {
		img.Set(x, 15, color.NRGBA{R: 200, A: 255})
	}
	return img
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, ToFile(path, sample()))

	back, err := gg.LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), back.Bounds())

	_, _, _, a := back.At(0, 0).RGBA()
	assert.Zero(t, a, "background stays transparent")
	r, _, _, _ := back.At(10, 15).RGBA()
	assert.Equal(t, uint32(200*0x101), r)
}

func TestPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.PDF")
	require.NoError(t, ToFile(path, sample()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestToFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := ToFile(filepath.Join(dir, "board.gif"), sample())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	empty := image.NewRGBA(image.Rectangle{})
	assert.ErrorIs(t, ToFile(filepath.Join(dir, "a.png"), empty), ErrEmptyRaster)
	assert.ErrorIs(t, ToFile(filepath.Join(dir, "a.pdf"), empty), ErrEmptyRaster)

	err = ToFile(filepath.Join(dir, "missing", "a.png"), sample())
	assert.Error(t, err)
}
