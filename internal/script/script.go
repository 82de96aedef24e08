// Package script replays annotation sessions written in YAML against a
// board, without a window.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"InkBoard/internal/board"
	"InkBoard/internal/config"
	"InkBoard/internal/input"
	"InkBoard/internal/state"
)

var (
	// ErrUnknownStep is returned for a step whose op is not recognized.
	ErrUnknownStep = errors.New("unknown step")
	// ErrBadPoint is returned for a coordinate that is not an [x, y] pair.
	ErrBadPoint = errors.New("point must be [x, y]")
)

// Step ops.
const (
	OpDraw   = "draw"
	OpErase  = "erase"
	OpUndo   = "undo"
	OpRedo   = "redo"
	OpClear  = "clear"
	OpResize = "resize"
	OpStyle  = "style"
	OpEraser = "eraser"
	OpEvents = "events"
)

// Script is a recorded session.
type Script struct {
	Name string `yaml:"name"`

	// Width and Height size the surface before the first step.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Steps []Step `yaml:"steps"`
}

// Step is one operation on the board. Which fields apply depends on Op.
type Step struct {
	Op string `yaml:"op"`

	// Points are the samples of a draw, or the path of an erase drag.
	Points [][]float64 `yaml:"points,omitempty"`

	// Color and Width set the pen for style, or for a single draw.
	Color string  `yaml:"color,omitempty"`
	Width float64 `yaml:"width,omitempty"`

	// Size is the [width, height] of a resize.
	Size []int `yaml:"size,omitempty"`

	// On switches the eraser for an eraser step.
	On bool `yaml:"on,omitempty"`

	// Events are raw pointer events fed through the classifier.
	Events []EventStep `yaml:"events,omitempty"`
}

// EventStep is one raw pointer event.
type EventStep struct {
	Phase    string    `yaml:"phase"`
	ID       int       `yaml:"id,omitempty"`
	At       []float64 `yaml:"at"`
	Tool     string    `yaml:"tool,omitempty"`
	Buttons  []string  `yaml:"buttons,omitempty"`
	Pointers int       `yaml:"pointers,omitempty"`
}

// Load reads and validates a script file. Unknown fields are rejected.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

func (s *Script) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("surface must have an area, got %dx%d", s.Width, s.Height)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpDraw, OpErase:
		if len(st.Points) == 0 {
			return fmt.Errorf("%s needs points", st.Op)
		}
		for _, p := range st.Points {
			if _, err := point(p); err != nil {
				return err
			}
		}
	case OpResize:
		if len(st.Size) != 2 {
			return errors.New("resize needs size [width, height]")
		}
	case OpStyle:
		if _, err := config.ParseColor(st.Color, false); err != nil {
			return err
		}
	case OpEvents:
		for _, ev := range st.Events {
			if _, err := ev.event(); err != nil {
				return err
			}
		}
	case OpUndo, OpRedo, OpClear, OpEraser:
	default:
		return fmt.Errorf("%w %q", ErrUnknownStep, st.Op)
	}
	return nil
}

// Run applies every step to e in order.
func (s *Script) Run(e *board.Engine) error {
	for i, st := range s.Steps {
		if err := st.apply(e); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

func (st Step) apply(e *board.Engine) error {
	switch st.Op {
	case OpDraw:
		pts, err := points(st.Points)
		if err != nil {
			return err
		}
		pen, err := st.pen(e.Style())
		if err != nil {
			return err
		}
		e.BeginStroke(pts[0], pen)
		for _, p := range pts[1:] {
			e.ExtendStroke(p)
		}
		e.EndStroke()
	case OpErase:
		pts, err := points(st.Points)
		if err != nil {
			return err
		}
		e.BeginErase()
		for _, p := range pts {
			e.EraseAt(p)
		}
		e.EndErase()
	case OpUndo:
		e.Undo()
	case OpRedo:
		e.Redo()
	case OpClear:
		e.Clear()
	case OpResize:
		e.Resize(st.Size[0], st.Size[1])
	case OpStyle:
		pen, err := st.pen(e.Style())
		if err != nil {
			return err
		}
		e.SetStyle(pen)
	case OpEraser:
		e.SetEraserMode(st.On)
	case OpEvents:
		for _, es := range st.Events {
			ev, err := es.event()
			if err != nil {
				return err
			}
			e.Handle(ev)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownStep, st.Op)
	}
	return nil
}

// pen overrides base with the step's color and width, where given.
func (st Step) pen(base state.Style) (state.Style, error) {
	if st.Color != "" {
		c, err := config.ParseColor(st.Color, false)
		if err != nil {
			return base, err
		}
		base.Color = c
	}
	if st.Width > 0 {
		base.Width = st.Width
	}
	return base, nil
}

func point(v []float64) (state.Point, error) {
	if len(v) != 2 {
		return state.Point{}, fmt.Errorf("%w, got %v", ErrBadPoint, v)
	}
	return state.Point{X: v[0], Y: v[1]}, nil
}

func points(vs [][]float64) ([]state.Point, error) {
	out := make([]state.Point, 0, len(vs))
	for _, v := range vs {
		p, err := point(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

var (
	phases = map[string]input.Phase{
		"down":         input.Down,
		"move":         input.Move,
		"up":           input.Up,
		"pointer-down": input.PointerDown,
		"pointer-up":   input.PointerUp,
		"cancel":       input.Cancel,
	}
	tools = map[string]input.ToolKind{
		"":       input.ToolFinger,
		"finger": input.ToolFinger,
		"stylus": input.ToolStylus,
		"eraser": input.ToolEraser,
		"mouse":  input.ToolMouse,
	}
	buttons = map[string]input.Buttons{
		"primary":          input.ButtonPrimary,
		"secondary":        input.ButtonSecondary,
		"stylus-primary":   input.ButtonStylusPrimary,
		"stylus-secondary": input.ButtonStylusSecondary,
	}
)

func (es EventStep) event() (input.Event, error) {
	phase, ok := phases[es.Phase]
	if !ok {
		return input.Event{}, fmt.Errorf("unknown phase %q", es.Phase)
	}
	tool, ok := tools[es.Tool]
	if !ok {
		return input.Event{}, fmt.Errorf("unknown tool %q", es.Tool)
	}
	pos, err := point(es.At)
	if err != nil {
		return input.Event{}, err
	}
	var held input.Buttons
	for _, name := range es.Buttons {
		b, ok := buttons[name]
		if !ok {
			return input.Event{}, fmt.Errorf("unknown button %q", name)
		}
		held |= b
	}
	count := es.Pointers
	if count == 0 {
		count = 1
	}
	return input.Event{
		Phase:        phase,
		PointerID:    es.ID,
		Pos:          pos,
		Tool:         tool,
		Buttons:      held,
		PointerCount: count,
	}, nil
}
