// Package board is the stroke annotation engine: pointer input goes in, an
// action log records draws and erases, and a raster replayed from the log
// comes out.
//
// Every call runs to completion on the caller's goroutine. An Engine is
// meant to be driven by one UI thread and is not safe for concurrent use.
package board

import (
	"image"

	"github.com/charmbracelet/log"

	"InkBoard/internal/input"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// Engine is one annotation surface.
type Engine struct {
	log      *state.Log
	comp     *render.Compositor
	builder  state.StrokeBuilder
	style    state.Style
	pending  state.Style
	input    *input.Classifier
	logger   *log.Logger
	onChange func()
}

// New creates an engine with an empty log and a transparent raster of the
// given size.
func New(width, height int, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		log:      state.NewLog(),
		comp:     render.NewCompositor(width, height),
		style:    o.style,
		logger:   o.logger,
		onChange: o.onChange,
	}
	e.input = input.NewClassifier(e, o.sink, o.input)
	if width <= 0 || height <= 0 {
		e.logger.Warn("surface has no area yet", "width", width, "height", height)
	}
	return e
}

// Handle classifies a pointer event and applies it.
func (e *Engine) Handle(ev input.Event) input.Intent {
	return e.input.Handle(ev)
}

// SetEraserMode makes every stroke erase until switched off.
func (e *Engine) SetEraserMode(on bool) {
	e.input.SetEraserMode(on)
}

// EraserMode reports whether the eraser is on.
func (e *Engine) EraserMode() bool {
	return e.input.EraserMode()
}

// SetStylusOnly lets fingers and mice through to the host.
func (e *Engine) SetStylusOnly(on bool) {
	e.input.SetStylusOnly(on)
}

// Style returns the current pen. Pointer input starts each stroke with it.
func (e *Engine) Style() state.Style {
	return e.style
}

// SetStyle changes the pen. Strokes already begun keep theirs.
func (e *Engine) SetStyle(s state.Style) {
	e.style = s
}

// Drawing reports whether a stroke is being captured.
func (e *Engine) Drawing() bool {
	return e.builder.Active()
}

// BeginStroke starts capturing a stroke at p with the given pen. The pen
// applies to this stroke only; Style is left alone.
func (e *Engine) BeginStroke(p state.Point, s state.Style) {
	e.pending = s
	e.builder.Begin(p)
}

// ExtendStroke adds a sample to the stroke in progress. Samples within the
// touch tolerance of the last recorded one are dropped.
func (e *Engine) ExtendStroke(p state.Point) {
	e.builder.Extend(p)
}

// EndStroke finalizes the stroke in progress and appends it to the log.
func (e *Engine) EndStroke() {
	if d := e.finish(); d != nil {
		e.recomposite()
	}
}

func (e *Engine) finish() *state.Draw {
	g, ok := e.builder.Finish()
	if !ok {
		return nil
	}
	d := e.log.Record(g, e.pending)
	e.logger.Debug("stroke finalized", "id", d.ID, "kind", g.Kind, "points", len(g.Points))
	return d
}

// AbortStroke drops the stroke in progress. It is finalized and undone right
// away; the log and anything that could be redone stay as they were.
func (e *Engine) AbortStroke() {
	g, ok := e.builder.Finish()
	if !ok {
		return
	}
	d := e.log.Discard(g, e.pending)
	e.logger.Debug("stroke aborted", "id", d.ID)
	e.recomposite()
}

// BeginErase starts an erase gesture: erases until EndErase are undone
// together.
func (e *Engine) BeginErase() {
	e.log.BeginGesture()
}

// EndErase closes the erase gesture.
func (e *Engine) EndErase() {
	e.log.EndGesture()
}

// EraseAt removes every stroke under the eraser square centered on p. It
// reports whether anything was removed; when nothing was, neither the log
// nor the raster change.
func (e *Engine) EraseAt(p state.Point) bool {
	if !e.log.EraseAt(p, state.EraserHalfSize) {
		return false
	}
	e.logger.Debug("erased", "x", p.X, "y", p.Y, "entries", e.log.Len())
	e.recomposite()
	return true
}

// Undo reverts the last draw or erase. Nothing happens on an empty log.
func (e *Engine) Undo() {
	a := e.log.Undo()
	if a == nil {
		return
	}
	e.logger.Debug("undo", "erase", isErase(a), "entries", e.log.Len())
	e.recomposite()
}

// Redo re-applies the last undone draw or erase.
func (e *Engine) Redo() {
	a := e.log.Redo()
	if a == nil {
		return
	}
	e.logger.Debug("redo", "erase", isErase(a), "entries", e.log.Len())
	e.recomposite()
}

// Clear wipes the board. It cannot be undone.
func (e *Engine) Clear() {
	e.log.Clear()
	e.logger.Debug("cleared")
	e.recomposite()
}

// IsEmpty reports whether there is nothing to undo.
func (e *Engine) IsEmpty() bool {
	return e.log.IsEmpty()
}

// HasAnyStroke reports whether any stroke is visible.
func (e *Engine) HasAnyStroke() bool {
	return e.log.HasAnyStroke()
}

// IsTopUndoAnErase reports whether the next undo restores erased strokes.
func (e *Engine) IsTopUndoAnErase() bool {
	return e.log.IsTopUndoAnErase()
}

// CanRedo reports whether Redo would do anything.
func (e *Engine) CanRedo() bool {
	return e.log.CanRedo()
}

// Entries returns a copy of the action log.
func (e *Engine) Entries() []state.Action {
	return e.log.Entries()
}

// StrokeIDs returns the identities of the visible strokes, oldest first.
func (e *Engine) StrokeIDs() []string {
	draws := e.log.Draws()
	out := make([]string, len(draws))
	for i, d := range draws {
		out[i] = d.ID
	}
	return out
}

// Resize rescales the raster. Non-positive dimensions are ignored; hosts
// report those transiently while laying out.
func (e *Engine) Resize(width, height int) {
	oldW, oldH := e.comp.Size()
	if !e.comp.Resize(width, height) {
		e.logger.Warn("ignoring resize", "width", width, "height", height)
		return
	}
	e.logger.Debug("resized", "width", width, "height", height)
	if oldW <= 0 || oldH <= 0 {
		// Nothing was rasterized at zero size, so there is nothing to scale.
		e.recomposite()
		return
	}
	e.changed()
}

// Size returns the raster dimensions.
func (e *Engine) Size() (width, height int) {
	return e.comp.Size()
}

// SnapshotRaster returns a copy of the raster for export.
func (e *Engine) SnapshotRaster() image.Image {
	return e.comp.Snapshot()
}

// Preview returns the raster with the stroke in progress painted on top.
func (e *Engine) Preview() image.Image {
	if !e.builder.Active() {
		return e.comp.Snapshot()
	}
	pts := e.builder.Points()
	kind := state.KindCurve
	if len(pts) == 1 {
		kind = state.KindDot
	}
	return e.comp.Preview(&state.Draw{
		Geometry: state.Geometry{Kind: kind, Points: pts},
		Style:    e.pending,
	})
}

func (e *Engine) recomposite() {
	e.comp.Recomposite(e.log.Entries())
	e.changed()
}

func (e *Engine) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}

func isErase(a state.Action) bool {
	_, ok := a.(*state.Erase)
	return ok
}
