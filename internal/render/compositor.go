// Package render turns an action log into pixels.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"InkBoard/internal/state"
)

// Compositor owns the raster of one board. The raster is derived state: it
// is only ever produced by replaying a log, or by rescaling the previous
// replay when the surface changes size.
//
// The Compositor is not safe for concurrent use.
type Compositor struct {
	buf *image.RGBA
}

// NewCompositor allocates a transparent raster of the given size. Non-positive
// dimensions yield an empty raster that ignores replays until Resize is
// called with a usable size.
func NewCompositor(width, height int) *Compositor {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Compositor{buf: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the raster dimensions.
func (c *Compositor) Size() (width, height int) {
	b := c.buf.Bounds()
	return b.Dx(), b.Dy()
}

// Recomposite clears the raster and draws every Draw action in order. Erase
// actions carry no geometry and are skipped.
func (c *Compositor) Recomposite(actions []state.Action) {
	if c.buf.Bounds().Empty() {
		return
	}
	dc := gg.NewContextForRGBA(c.buf)
	dc.SetColor(color.Transparent)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, a := range actions {
		d, ok := a.(*state.Draw)
		if !ok {
			continue
		}
		paint(dc, d)
	}
}

func paint(dc *gg.Context, d *state.Draw) {
	g := d.Geometry
	if len(g.Points) == 0 {
		return
	}
	dc.SetColor(d.Style.Color)
	start := g.Points[0]

	if g.Kind == state.KindDot {
		// A round-capped point is a disc as wide as the pen.
		dc.DrawCircle(start.X, start.Y, d.Style.Width/2)
		dc.Fill()
		return
	}

	dc.SetLineWidth(d.Style.Width)
	dc.MoveTo(start.X, start.Y)
	for _, q := range g.Quads() {
		dc.QuadraticTo(q.Ctrl.X, q.Ctrl.Y, q.To.X, q.To.Y)
	}
	last := g.Points[len(g.Points)-1]
	dc.LineTo(last.X, last.Y)
	dc.Stroke()
}

// Resize rescales the current raster to the new dimensions. Vector data is
// not re-rasterized; the next Recomposite draws at the new size. It returns
// false and leaves the raster alone when either dimension is non-positive.
func (c *Compositor) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if !c.buf.Bounds().Empty() {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), c.buf, c.buf.Bounds(), xdraw.Src, nil)
	}
	c.buf = dst
	return true
}

// Snapshot returns a copy of the raster. Callers may keep or modify it
// without affecting the board.
func (c *Compositor) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.buf.Bounds())
	copy(out.Pix, c.buf.Pix)
	return out
}

// Preview returns a snapshot with pending painted over it. pending is a
// stroke still being captured; it never touches the raster itself.
func (c *Compositor) Preview(pending *state.Draw) *image.RGBA {
	out := c.Snapshot()
	if pending == nil || out.Bounds().Empty() {
		return out
	}
	dc := gg.NewContextForRGBA(out)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	paint(dc, pending)
	return out
}
