package state

import (
	"image/color"
)

// TouchTolerance is the minimum per-axis movement, in surface units, for a
// new sample to be recorded in a stroke.
const TouchTolerance = 4.0

// Point is an immutable sample on the surface.
type Point struct{ X, Y float64 }

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Kind tells a Curve from a Dot.
type Kind int

const (
	KindCurve Kind = iota
	KindDot
)

func (k Kind) String() string {
	if k == KindDot {
		return "dot"
	}
	return "curve"
}

// Geometry is the shape of one stroke. A curve keeps every recorded sample,
// a dot keeps exactly one.
type Geometry struct {
	Kind   Kind
	Points []Point
}

// Style is snapshotted when a stroke is finalized.
type Style struct {
	Color color.NRGBA
	Width float64
}

// DefaultStyle matches the pen a fresh board starts with.
var DefaultStyle = Style{Color: color.NRGBA{A: 255}, Width: 6}

// Action is an entry of the action log: either a *Draw or an *Erase.
type Action interface {
	isAction()
}

// Draw is one finalized stroke.
type Draw struct {
	ID       string
	Seq      uint64
	Geometry Geometry
	Style    Style
}

// Removed records a stroke taken out of the log by an erase, along with its
// position in the log at the moment it was removed.
type Removed struct {
	Index int
	Draw  *Draw
}

// Erase is a placeholder for every stroke removed by one erase gesture.
type Erase struct {
	Removed []Removed
}

func (*Draw) isAction()  {}
func (*Erase) isAction() {}
