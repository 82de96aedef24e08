package state

import (
	"slices"
)

// Log is the ordered list of draw and erase actions of one annotation
// session. Read left to right, its Draw entries are the surviving strokes
// from oldest to newest. Erase entries hold the strokes they took out so
// that undo can put each one back where it was.
//
// A Log is not safe for concurrent use.
type Log struct {
	entries []Action
	redo    []Action
	clock   Clock

	gestureOpen  bool
	gestureErase *Erase
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record stamps a new stroke and appends it.
func (l *Log) Record(g Geometry, s Style) *Draw {
	d := NewDraw(&l.clock, g, s)
	l.Append(d)
	return d
}

// Append pushes d to the end of the log. Anything that could be redone is
// forgotten.
func (l *Log) Append(d *Draw) {
	l.entries = append(l.entries, d)
	l.redo = nil
}

// BeginGesture groups the erases that follow into a single Erase entry until
// EndGesture is called, so one eraser drag is undone in one step.
func (l *Log) BeginGesture() {
	l.gestureOpen = true
	l.gestureErase = nil
}

// EndGesture closes the erase gesture opened by BeginGesture.
func (l *Log) EndGesture() {
	l.gestureOpen = false
	l.gestureErase = nil
}

// EraseAt removes every stroke whose region intersects the square of half
// side radius centered on p. Each removed stroke keeps the index it had in
// the log at the moment it was taken out. When nothing matches the log is
// left untouched and false is returned.
func (l *Log) EraseAt(p Point, radius float64) bool {
	hit := HitRect(p, radius)
	var removed []Removed
	for i := 0; i < len(l.entries); {
		d, ok := l.entries[i].(*Draw)
		if !ok || !d.Geometry.Hits(hit) {
			i++
			continue
		}
		removed = append(removed, Removed{Index: i, Draw: d})
		l.entries = slices.Delete(l.entries, i, i+1)
	}
	if len(removed) == 0 {
		return false
	}
	l.redo = nil

	if l.gestureOpen && l.gestureErase != nil && l.top() == Action(l.gestureErase) {
		l.gestureErase.Removed = append(l.gestureErase.Removed, removed...)
		return true
	}
	e := &Erase{Removed: removed}
	l.entries = append(l.entries, e)
	if l.gestureOpen {
		l.gestureErase = e
	}
	return true
}

// Undo removes the trailing entry and returns it, or returns nil when the
// log is empty. Undoing an erase reinserts its strokes, last removed first,
// so every recorded index is valid at the time it is used.
func (l *Log) Undo() Action {
	top := l.top()
	if top == nil {
		return nil
	}
	l.gestureErase = nil
	l.entries = l.entries[:len(l.entries)-1]
	if e, ok := top.(*Erase); ok {
		l.restore(e)
	}
	l.redo = append(l.redo, top)
	return top
}

func (l *Log) restore(e *Erase) {
	for i := len(e.Removed) - 1; i >= 0; i-- {
		r := e.Removed[i]
		idx := min(r.Index, len(l.entries))
		l.entries = slices.Insert(l.entries, idx, Action(r.Draw))
	}
}

// Redo re-applies the most recently undone entry and returns it, or returns
// nil when there is nothing to redo.
func (l *Log) Redo() Action {
	if len(l.redo) == 0 {
		return nil
	}
	a := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	switch a := a.(type) {
	case *Draw:
		l.entries = append(l.entries, a)
	case *Erase:
		for _, r := range a.Removed {
			if i := l.indexOf(r.Draw, r.Index); i >= 0 {
				l.entries = slices.Delete(l.entries, i, i+1)
			}
		}
		l.entries = append(l.entries, a)
	}
	return a
}

// indexOf finds d, looking at the expected position first.
func (l *Log) indexOf(d *Draw, hint int) int {
	if hint >= 0 && hint < len(l.entries) && l.entries[hint] == Action(d) {
		return hint
	}
	return slices.Index(l.entries, Action(d))
}

// Discard finalizes a stroke and takes it back at once. Entries and the redo
// stack end up exactly as they were before the call.
func (l *Log) Discard(g Geometry, s Style) *Draw {
	redo := l.redo
	d := l.Record(g, s)
	l.Undo()
	l.redo = redo
	return d
}

// Clear empties the log. Clearing cannot be undone.
func (l *Log) Clear() {
	l.entries = nil
	l.redo = nil
	l.gestureErase = nil
}

func (l *Log) top() Action {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// IsEmpty reports whether there is nothing to undo.
func (l *Log) IsEmpty() bool {
	return len(l.entries) == 0
}

// HasAnyStroke reports whether at least one Draw entry is left.
func (l *Log) HasAnyStroke() bool {
	for _, a := range l.entries {
		if _, ok := a.(*Draw); ok {
			return true
		}
	}
	return false
}

// IsTopUndoAnErase reports whether the next undo would restore erased
// strokes.
func (l *Log) IsTopUndoAnErase() bool {
	_, ok := l.top().(*Erase)
	return ok
}

// CanRedo reports whether Redo would do anything.
func (l *Log) CanRedo() bool {
	return len(l.redo) > 0
}

// Len returns the number of entries, erases included.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log.
func (l *Log) Entries() []Action {
	return slices.Clone(l.entries)
}

// Draws returns the surviving strokes, oldest first.
func (l *Log) Draws() []*Draw {
	out := make([]*Draw, 0, len(l.entries))
	for _, a := range l.entries {
		if d, ok := a.(*Draw); ok {
			out = append(out, d)
		}
	}
	return out
}
