// Package input decides what a stream of pointer events means for a board:
// ink, erasing, or a gesture meant for whatever sits under the board.
package input

import "InkBoard/internal/state"

// Phase is the stage of a pointer event.
type Phase int

const (
	// Down is the first pointer touching the surface.
	Down Phase = iota
	Move
	// Up is the last pointer leaving the surface.
	Up
	// PointerDown is an additional pointer touching while another is down.
	PointerDown
	// PointerUp is a non-last pointer leaving the surface.
	PointerUp
	Cancel
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// ToolKind is what the host says produced the event.
type ToolKind int

const (
	ToolFinger ToolKind = iota
	ToolStylus
	ToolEraser
	ToolMouse
)

func (t ToolKind) String() string {
	switch t {
	case ToolFinger:
		return "finger"
	case ToolStylus:
		return "stylus"
	case ToolEraser:
		return "eraser"
	case ToolMouse:
		return "mouse"
	}
	return "unknown"
}

// Buttons is the set of buttons held during an event.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonStylusPrimary
	ButtonStylusSecondary
)

// Has reports whether every button in b is held.
func (bs Buttons) Has(b Buttons) bool {
	return bs&b == b
}

// Event is one pointer sample from the host. Hosts report multi-pointer
// moves as one event per pointer.
type Event struct {
	Phase        Phase
	PointerID    int
	Pos          state.Point
	Tool         ToolKind
	Buttons      Buttons
	PointerCount int
}

// GestureSink receives second-pointer gestures the board does not consume,
// so the host can click or scroll whatever the board overlays.
type GestureSink interface {
	Tap(p state.Point)
	Drag(dy float64)
}

// Surface is what the classifier drives.
type Surface interface {
	Style() state.Style
	Drawing() bool
	BeginStroke(p state.Point, style state.Style)
	ExtendStroke(p state.Point)
	EndStroke()
	AbortStroke()
	BeginErase()
	EraseAt(p state.Point) bool
	EndErase()
}
