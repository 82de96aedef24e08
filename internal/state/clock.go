package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock hands out creation sequence numbers for strokes. Sequence numbers
// only ever grow, so they order strokes by the time they were finalized even
// after erase and undo have shuffled the log around.
type Clock struct {
	counter atomic.Uint64
}

// Next returns the next sequence number, starting at 1.
func (c *Clock) Next() uint64 {
	return c.counter.Add(1)
}

// Current returns the last issued sequence number.
func (c *Clock) Current() uint64 {
	return c.counter.Load()
}

// NewStrokeID returns a fresh identity for a stroke.
func NewStrokeID() string {
	return uuid.NewString()
}

// NewDraw stamps geometry and style with an identity and the next sequence
// number from c.
func NewDraw(c *Clock, g Geometry, s Style) *Draw {
	pts := make([]Point, len(g.Points))
	copy(pts, g.Points)
	return &Draw{
		ID:       NewStrokeID(),
		Seq:      c.Next(),
		Geometry: Geometry{Kind: g.Kind, Points: pts},
		Style:    s,
	}
}
