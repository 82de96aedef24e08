package state

import (
	"math"

	"github.com/gogpu/gg"
)

// EraserHalfSize is half the side of the square an eraser sample covers.
const EraserHalfSize = 10.0

// degenerateArea is the enclosed area under which a path no longer counts as
// a region and is hit-tested by its bounding box instead.
const degenerateArea = 1e-6

// Rect is an axis-aligned rectangle with inclusive edges.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// HitRect returns the square of half side `half` centered on p.
func HitRect(p Point, half float64) Rect {
	return Rect{MinX: p.X - half, MinY: p.Y - half, MaxX: p.X + half, MaxY: p.Y + half}
}

func rectOf(b gg.Rect) Rect {
	return Rect{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y}
}

func (r Rect) ggRect() gg.Rect {
	return gg.Rect{Min: gg.Pt(r.MinX, r.MinY), Max: gg.Pt(r.MaxX, r.MaxY)}
}

// Overlaps reports whether r and o share at least one point.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.MaxX < o.MinX || o.MaxX < r.MinX ||
		r.MaxY < o.MinY || o.MaxY < r.MinY)
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Point) bool {
	return r.ggRect().Contains(gg.Pt(p.X, p.Y))
}

// Bounds returns the bounding box of the smoothed path.
func (g Geometry) Bounds() Rect {
	return rectOf(g.Path().BoundingBox())
}

// Hits reports whether the stroke's region intersects r.
//
// A dot is a point-in-rectangle test. A curve is treated as the region its
// path encloses once closed; a path with no area (a straight line, for one)
// cannot form a region and falls back to its bounding box grown by one unit,
// so short straight strokes stay erasable. For diagonal lines the box covers
// more than the ink does.
func (g Geometry) Hits(r Rect) bool {
	if len(g.Points) == 0 {
		return false
	}
	if g.Kind == KindDot {
		return r.Contains(g.Points[0])
	}
	region := g.Path()
	region.Close()

	bounds := rectOf(region.BoundingBox())
	if math.Abs(region.Area()) < degenerateArea {
		bounds.MaxX++
		bounds.MaxY++
		return bounds.Overlaps(r)
	}
	if !bounds.Overlaps(r) {
		return false
	}

	edges := fromPath(region.Flatten(flattenTolerance))
	for i := 1; i < len(edges); i++ {
		if segmentHitsRect(edges[i-1], edges[i], r) {
			return true
		}
	}
	// No edge touches the rectangle: either it sits fully inside the region
	// or the two are disjoint.
	center := gg.Pt((r.MinX+r.MaxX)/2, (r.MinY+r.MaxY)/2)
	return region.Contains(center)
}

// segmentHitsRect clips the segment a-b against r (Liang-Barsky).
func segmentHitsRect(a, b Point, r Rect) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	return clip(-dx, a.X-r.MinX) &&
		clip(dx, r.MaxX-a.X) &&
		clip(-dy, a.Y-r.MinY) &&
		clip(dy, r.MaxY-a.Y)
}
