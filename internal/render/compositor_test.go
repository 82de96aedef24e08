package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/state"
)

var red = state.Style{Color: color.NRGBA{R: 255, A: 255}, Width: 6}

func stroke(style state.Style, pts ...state.Point) *state.Draw {
	kind := state.KindCurve
	if len(pts) == 1 {
		kind = state.KindDot
	}
	return &state.Draw{Geometry: state.Geometry{Kind: kind, Points: pts}, Style: style}
}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func inked(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestCompositor_DrawsCurvesAndDots(t *testing.T) {
	c := NewCompositor(100, 100)
	c.Recomposite([]state.Action{
		stroke(red, state.Point{X: 10, Y: 50}, state.Point{X: 90, Y: 50}),
		stroke(red, state.Point{X: 50, Y: 10}),
	})

	img := c.Snapshot()
	assert.NotZero(t, alphaAt(img, 50, 50), "on the line")
	assert.NotZero(t, alphaAt(img, 50, 10), "on the dot")
	assert.Zero(t, alphaAt(img, 50, 80), "off any stroke")
	assert.Equal(t, uint8(255), img.RGBAAt(50, 50).R)
}

func TestCompositor_SkipsErase(t *testing.T) {
	c := NewCompositor(50, 50)
	c.Recomposite([]state.Action{&state.Erase{Removed: []state.Removed{
		{Index: 0, Draw: stroke(red, state.Point{X: 0, Y: 0}, state.Point{X: 50, Y: 50})},
	}}})
	assert.Zero(t, inked(c.Snapshot()))
}

func TestCompositor_ReplayStartsFromBlank(t *testing.T) {
	c := NewCompositor(60, 60)
	c.Recomposite([]state.Action{stroke(red, state.Point{X: 5, Y: 5}, state.Point{X: 55, Y: 5})})
	require.NotZero(t, inked(c.Snapshot()))

	c.Recomposite(nil)
	assert.Zero(t, inked(c.Snapshot()))
}

func TestCompositor_ResizeScalesContent(t *testing.T) {
	c := NewCompositor(100, 100)
	c.Recomposite([]state.Action{
		stroke(red, state.Point{X: 20, Y: 30}, state.Point{X: 80, Y: 30}),
	})
	before := c.Snapshot()

	require.True(t, c.Resize(200, 200))
	w, h := c.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)

	after := c.Snapshot()
	assert.NotZero(t, alphaAt(after, 100, 60), "line moved to twice its height")
	assert.Zero(t, alphaAt(after, 100, 160))
	assert.Greater(t, inked(after), 2*inked(before))
	assert.Less(t, inked(after), 6*inked(before))
}

func TestCompositor_RejectsNonPositiveResize(t *testing.T) {
	c := NewCompositor(40, 30)
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		assert.False(t, c.Resize(size[0], size[1]))
	}
	w, h := c.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
}

func TestCompositor_EmptyUntilResized(t *testing.T) {
	c := NewCompositor(0, 0)
	c.Recomposite([]state.Action{stroke(red, state.Point{X: 1, Y: 1})})
	assert.True(t, c.Snapshot().Bounds().Empty())

	require.True(t, c.Resize(10, 10))
	c.Recomposite([]state.Action{stroke(red, state.Point{X: 5, Y: 5})})
	assert.NotZero(t, alphaAt(c.Snapshot(), 5, 5))
}

func TestCompositor_SnapshotIsACopy(t *testing.T) {
	c := NewCompositor(10, 10)
	snap := c.Snapshot()
	snap.Set(1, 1, color.White)
	assert.Zero(t, alphaAt(c.Snapshot(), 1, 1))
}
