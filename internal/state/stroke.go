package state

import (
	"math"

	"github.com/gogpu/gg"
)

// flattenTolerance is the largest distance, in surface units, between a
// smoothed curve and the polyline standing in for it during hit testing.
const flattenTolerance = 0.25

// Quad is one quadratic segment of a smoothed curve, starting wherever the
// previous segment ended.
type Quad struct {
	Ctrl, To Point
}

// Quads returns the smoothed path of a curve: a quadratic segment from each
// recorded sample to the midpoint between it and the next one. The path then
// ends with a straight line to the last sample.
func (g Geometry) Quads() []Quad {
	if g.Kind != KindCurve || len(g.Points) < 2 {
		return nil
	}
	quads := make([]Quad, 0, len(g.Points)-1)
	for i := 1; i < len(g.Points); i++ {
		prev := g.Points[i-1]
		quads = append(quads, Quad{Ctrl: prev, To: prev.Mid(g.Points[i])})
	}
	return quads
}

// Path returns the smoothed stroke as an open path. A dot is a lone MoveTo.
func (g Geometry) Path() *gg.Path {
	p := gg.NewPath()
	if len(g.Points) == 0 {
		return p
	}
	start := g.Points[0]
	p.MoveTo(start.X, start.Y)
	if g.Kind == KindDot {
		return p
	}
	for _, q := range g.Quads() {
		p.QuadraticTo(q.Ctrl.X, q.Ctrl.Y, q.To.X, q.To.Y)
	}
	last := g.Points[len(g.Points)-1]
	p.LineTo(last.X, last.Y)
	return p
}

// Flatten approximates the smoothed path with a polyline.
func (g Geometry) Flatten() []Point {
	return fromPath(g.Path().Flatten(flattenTolerance))
}

func fromPath(pts []gg.Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// StrokeBuilder captures one stroke in progress. Samples closer than
// TouchTolerance to the last recorded one on both axes are dropped.
type StrokeBuilder struct {
	points []Point
	active bool
}

// Begin starts a new stroke at p, discarding anything in progress.
func (b *StrokeBuilder) Begin(p Point) {
	b.points = append(b.points[:0], p)
	b.active = true
}

// Active reports whether a stroke is being captured.
func (b *StrokeBuilder) Active() bool {
	return b.active
}

// Extend records p if it moved far enough from the last recorded sample.
func (b *StrokeBuilder) Extend(p Point) bool {
	if !b.active {
		return false
	}
	last := b.points[len(b.points)-1]
	if math.Abs(p.X-last.X) >= TouchTolerance || math.Abs(p.Y-last.Y) >= TouchTolerance {
		b.points = append(b.points, p)
		return true
	}
	return false
}

// Points returns a copy of the samples recorded so far.
func (b *StrokeBuilder) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

// Finish ends the stroke. It yields a curve when at least one sample passed
// the tolerance filter and a dot at the starting sample otherwise. ok is false
// when no stroke was in progress.
func (b *StrokeBuilder) Finish() (g Geometry, ok bool) {
	if !b.active {
		return Geometry{}, false
	}
	b.active = false
	pts := b.Points()
	b.points = b.points[:0]
	if len(pts) > 1 {
		return Geometry{Kind: KindCurve, Points: pts}, true
	}
	return Geometry{Kind: KindDot, Points: pts[:1]}, true
}
