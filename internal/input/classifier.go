package input

import (
	"math"

	"InkBoard/internal/state"
)

// IntentKind is what the classifier made of an event.
type IntentKind int

const (
	// IntentNone means the event was consumed without effect.
	IntentNone IntentKind = iota
	IntentStroke
	IntentErase
	// IntentGesture means a second pointer is being tracked and has not yet
	// turned into a tap or a drag.
	IntentGesture
	IntentTap
	IntentDrag
	// IntentPassThrough means the board did not claim the event.
	IntentPassThrough
)

func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentStroke:
		return "stroke"
	case IntentErase:
		return "erase"
	case IntentGesture:
		return "gesture"
	case IntentTap:
		return "tap"
	case IntentDrag:
		return "drag"
	case IntentPassThrough:
		return "pass-through"
	}
	return "unknown"
}

// Intent is the outcome of one event.
type Intent struct {
	Kind  IntentKind
	Point state.Point
	DY    float64
}

// Claimed reports whether the board used the event.
func (i Intent) Claimed() bool {
	return i.Kind != IntentPassThrough
}

// Options are the input policies of a board.
type Options struct {
	// EraserMode turns every stroke into an erase.
	EraserMode bool
	// StylusOnly lets fingers and mice through to whatever is underneath.
	StylusOnly bool
	// MultiTouch enables second-pointer taps and drags.
	MultiTouch bool
}

// Classifier routes pointer events to a Surface. A second pointer aborts the
// stroke in progress and is tracked as a tap or a drag for the GestureSink.
//
// The Classifier is not safe for concurrent use.
type Classifier struct {
	surface Surface
	sink    GestureSink
	opts    Options

	primary int
	erasing bool
	second  secondPointer
}

type secondPointer struct {
	active    bool
	id        int
	start     state.Point
	last      state.Point
	withinTap bool
}

// NewClassifier returns a classifier driving s. sink may be nil, in which
// case second-pointer gestures are still classified but go nowhere.
func NewClassifier(s Surface, sink GestureSink, opts Options) *Classifier {
	return &Classifier{surface: s, sink: sink, opts: opts}
}

// SetEraserMode switches the eraser on or off.
func (c *Classifier) SetEraserMode(on bool) {
	if !on {
		c.endErase()
	}
	c.opts.EraserMode = on
}

// EraserMode reports whether the eraser is on.
func (c *Classifier) EraserMode() bool {
	return c.opts.EraserMode
}

// SetStylusOnly switches the stylus-only policy.
func (c *Classifier) SetStylusOnly(on bool) {
	c.opts.StylusOnly = on
}

// Handle classifies ev and applies it to the surface.
func (c *Classifier) Handle(ev Event) Intent {
	switch ev.Phase {
	case PointerDown:
		return c.pointerDown(ev)
	case PointerUp:
		return c.pointerUp(ev)
	case Move:
		if c.second.active {
			if ev.PointerID != c.second.id {
				return Intent{Kind: IntentPassThrough}
			}
			if ev.PointerCount != 2 {
				return Intent{Kind: IntentPassThrough}
			}
			return c.secondMove(ev)
		}
	}

	if c.isErase(ev) {
		return c.erase(ev)
	}
	c.endErase()

	if c.opts.StylusOnly && ev.Tool != ToolStylus {
		return Intent{Kind: IntentPassThrough}
	}
	return c.draw(ev)
}

func (c *Classifier) isErase(ev Event) bool {
	if ev.Tool == ToolEraser || c.opts.EraserMode {
		return true
	}
	return ev.Tool == ToolStylus &&
		(ev.Buttons.Has(ButtonStylusPrimary) || ev.Buttons.Has(ButtonStylusSecondary))
}

func (c *Classifier) erase(ev Event) Intent {
	switch ev.Phase {
	case Down, Move:
		if c.surface.Drawing() {
			c.surface.EndStroke()
		}
		if !c.erasing {
			c.surface.BeginErase()
			c.erasing = true
		}
		c.surface.EraseAt(ev.Pos)
	default:
		c.endErase()
	}
	return Intent{Kind: IntentErase, Point: ev.Pos}
}

func (c *Classifier) endErase() {
	if c.erasing {
		c.surface.EndErase()
		c.erasing = false
	}
}

func (c *Classifier) draw(ev Event) Intent {
	switch ev.Phase {
	case Down:
		c.primary = ev.PointerID
		c.second.active = false
		c.surface.BeginStroke(ev.Pos, c.surface.Style())
		return Intent{Kind: IntentStroke, Point: ev.Pos}
	case Move:
		if c.surface.Drawing() && ev.PointerID == c.primary {
			c.surface.ExtendStroke(ev.Pos)
			return Intent{Kind: IntentStroke, Point: ev.Pos}
		}
	case Up:
		c.second.active = false
		if c.surface.Drawing() {
			c.surface.EndStroke()
			return Intent{Kind: IntentStroke, Point: ev.Pos}
		}
	case Cancel:
		c.second.active = false
		if c.surface.Drawing() {
			c.surface.AbortStroke()
			return Intent{Kind: IntentNone}
		}
	}
	return Intent{Kind: IntentPassThrough}
}

func (c *Classifier) pointerDown(ev Event) Intent {
	if c.surface.Drawing() {
		c.surface.AbortStroke()
	}
	c.endErase()
	if !c.opts.MultiTouch || ev.PointerCount != 2 {
		return Intent{Kind: IntentPassThrough}
	}
	c.second = secondPointer{
		active:    true,
		id:        ev.PointerID,
		start:     ev.Pos,
		last:      ev.Pos,
		withinTap: true,
	}
	return Intent{Kind: IntentGesture, Point: ev.Pos}
}

func (c *Classifier) pointerUp(ev Event) Intent {
	if !c.second.active || ev.PointerID != c.second.id {
		return Intent{Kind: IntentPassThrough}
	}
	c.second.active = false
	if ev.PointerCount != 2 {
		return Intent{Kind: IntentPassThrough}
	}
	c.track(ev.Pos)
	if !c.second.withinTap {
		return Intent{Kind: IntentNone}
	}
	if c.sink != nil {
		c.sink.Tap(c.second.last)
	}
	return Intent{Kind: IntentTap, Point: c.second.last}
}

func (c *Classifier) secondMove(ev Event) Intent {
	c.track(ev.Pos)
	if c.second.withinTap {
		return Intent{Kind: IntentGesture, Point: ev.Pos}
	}
	dy := c.second.start.Y - c.second.last.Y
	if dy != 0 {
		if c.sink != nil {
			c.sink.Drag(dy)
		}
		c.second.start = c.second.last
	}
	return Intent{Kind: IntentDrag, Point: ev.Pos, DY: dy}
}

// track records the second pointer's position. Once it strays past the
// tolerance it can no longer be a tap.
func (c *Classifier) track(p state.Point) {
	s := &c.second
	s.last = p
	if math.Abs(p.X-s.start.X) >= state.TouchTolerance || math.Abs(p.Y-s.start.Y) >= state.TouchTolerance {
		s.withinTap = false
	}
}
