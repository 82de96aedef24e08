package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(from, to Point) Geometry {
	return Geometry{Kind: KindCurve, Points: []Point{from, to}}
}

func dot(p Point) Geometry {
	return Geometry{Kind: KindDot, Points: []Point{p}}
}

func ids(draws []*Draw) []string {
	out := make([]string, len(draws))
	for i, d := range draws {
		out[i] = d.ID
	}
	return out
}

func TestLog_RecordAppendsInOrder(t *testing.T) {
	l := NewLog()
	a := l.Record(line(Point{0, 0}, Point{50, 50}), DefaultStyle)
	b := l.Record(line(Point{100, 100}, Point{150, 150}), DefaultStyle)

	assert.Equal(t, []string{a.ID, b.ID}, ids(l.Draws()))
	assert.Less(t, a.Seq, b.Seq)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLog_EraseThenUndoRestoresOrder(t *testing.T) {
	l := NewLog()
	a := l.Record(line(Point{0, 0}, Point{50, 50}), DefaultStyle)
	b := l.Record(line(Point{100, 100}, Point{150, 150}), DefaultStyle)

	require.True(t, l.EraseAt(Point{25, 25}, EraserHalfSize))
	assert.Equal(t, []string{b.ID}, ids(l.Draws()))
	assert.True(t, l.IsTopUndoAnErase())

	undone := l.Undo()
	require.IsType(t, &Erase{}, undone)
	assert.Equal(t, []string{a.ID, b.ID}, ids(l.Draws()))
	assert.Equal(t, 2, l.Len())
}

func TestLog_EraseMiddleStrokeRestoresBetweenNeighbours(t *testing.T) {
	l := NewLog()
	a := l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	b := l.Record(line(Point{0, 100}, Point{40, 100}), DefaultStyle)
	c := l.Record(line(Point{0, 200}, Point{40, 200}), DefaultStyle)

	require.True(t, l.EraseAt(Point{20, 100}, EraserHalfSize))
	assert.Equal(t, []string{a.ID, c.ID}, ids(l.Draws()))

	l.Undo()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(l.Draws()))
}

func TestLog_CompositeEraseIsOneUndoStep(t *testing.T) {
	l := NewLog()
	var want []string
	for i := range 3 {
		y := float64(i * 5)
		want = append(want, l.Record(line(Point{0, y}, Point{40, y}), DefaultStyle).ID)
	}
	keep := l.Record(line(Point{300, 300}, Point{340, 300}), DefaultStyle)
	want = append(want, keep.ID)

	require.True(t, l.EraseAt(Point{20, 5}, EraserHalfSize))
	assert.Equal(t, []string{keep.ID}, ids(l.Draws()))

	top, ok := l.Entries()[l.Len()-1].(*Erase)
	require.True(t, ok)
	assert.Len(t, top.Removed, 3)

	l.Undo()
	assert.Equal(t, want, ids(l.Draws()))
}

func TestLog_EraseRecordsLiveIndices(t *testing.T) {
	l := NewLog()
	l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)     // 0: hit
	l.Record(line(Point{0, 500}, Point{40, 500}), DefaultStyle) // 1: miss
	l.Record(line(Point{0, 3}, Point{40, 3}), DefaultStyle)     // 2: hit

	require.True(t, l.EraseAt(Point{20, 2}, EraserHalfSize))
	e := l.Entries()[l.Len()-1].(*Erase)
	require.Len(t, e.Removed, 2)
	assert.Equal(t, 0, e.Removed[0].Index)
	assert.Equal(t, 1, e.Removed[1].Index, "index is taken after earlier removals")
}

func TestLog_EraseMissIsNoop(t *testing.T) {
	l := NewLog()
	l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	before := l.Entries()

	assert.False(t, l.EraseAt(Point{500, 500}, EraserHalfSize))
	assert.Equal(t, before, l.Entries())
	assert.False(t, l.IsTopUndoAnErase())
}

func TestLog_EraseOverErasedSpaceIsNoop(t *testing.T) {
	l := NewLog()
	l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	require.True(t, l.EraseAt(Point{20, 0}, EraserHalfSize))
	n := l.Len()

	assert.False(t, l.EraseAt(Point{20, 0}, EraserHalfSize))
	assert.Equal(t, n, l.Len())
}

func TestLog_UndoDrawDiscardsIt(t *testing.T) {
	l := NewLog()
	a := l.Record(dot(Point{1, 1}), DefaultStyle)
	l.Record(dot(Point{2, 2}), DefaultStyle)

	l.Undo()
	assert.Equal(t, []string{a.ID}, ids(l.Draws()))
}

func TestLog_UndoOnEmptyIsNoop(t *testing.T) {
	l := NewLog()
	assert.Nil(t, l.Undo())
	assert.True(t, l.IsEmpty())
}

func TestLog_ClearIsNotUndoable(t *testing.T) {
	l := NewLog()
	l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	l.Clear()

	assert.Nil(t, l.Undo())
	assert.False(t, l.HasAnyStroke())
	assert.False(t, l.CanRedo())
}

func TestLog_GestureCoalescesErases(t *testing.T) {
	l := NewLog()
	a := l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	b := l.Record(line(Point{0, 100}, Point{40, 100}), DefaultStyle)
	c := l.Record(line(Point{0, 200}, Point{40, 200}), DefaultStyle)

	l.BeginGesture()
	require.True(t, l.EraseAt(Point{20, 0}, EraserHalfSize))
	require.True(t, l.EraseAt(Point{20, 200}, EraserHalfSize))
	l.EndGesture()

	assert.Equal(t, []string{b.ID}, ids(l.Draws()))
	assert.Equal(t, 2, l.Len(), "one stroke and one erase batch")

	l.Undo()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(l.Draws()))
	assert.False(t, l.IsTopUndoAnErase())
}

func TestLog_EraseOutsideGestureMakesSeparateBatches(t *testing.T) {
	l := NewLog()
	l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	l.Record(line(Point{0, 100}, Point{40, 100}), DefaultStyle)

	require.True(t, l.EraseAt(Point{20, 0}, EraserHalfSize))
	require.True(t, l.EraseAt(Point{20, 100}, EraserHalfSize))
	assert.Equal(t, 2, l.Len())

	l.Undo()
	assert.Len(t, l.Draws(), 1)
	assert.True(t, l.IsTopUndoAnErase())
}

func TestLog_RedoErase(t *testing.T) {
	l := NewLog()
	a := l.Record(line(Point{0, 0}, Point{40, 0}), DefaultStyle)
	b := l.Record(line(Point{0, 100}, Point{40, 100}), DefaultStyle)
	c := l.Record(line(Point{0, 3}, Point{40, 3}), DefaultStyle)

	require.True(t, l.EraseAt(Point{20, 1}, EraserHalfSize))
	l.Undo()
	require.True(t, l.CanRedo())

	redone := l.Redo()
	require.IsType(t, &Erase{}, redone)
	assert.Equal(t, []string{b.ID}, ids(l.Draws()))

	l.Undo()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(l.Draws()))
}

func TestLog_RedoDraw(t *testing.T) {
	l := NewLog()
	a := l.Record(dot(Point{1, 1}), DefaultStyle)
	l.Undo()
	assert.True(t, l.IsEmpty())

	assert.Equal(t, Action(a), l.Redo())
	assert.Equal(t, []string{a.ID}, ids(l.Draws()))
	assert.Nil(t, l.Redo())
}

func TestLog_NewActionForgetsRedo(t *testing.T) {
	l := NewLog()
	l.Record(dot(Point{1, 1}), DefaultStyle)
	l.Undo()
	l.Record(dot(Point{2, 2}), DefaultStyle)
	assert.False(t, l.CanRedo())
}

func TestLog_DiscardKeepsEntriesAndRedo(t *testing.T) {
	l := NewLog()
	keep := l.Record(dot(Point{1, 1}), DefaultStyle)
	undone := l.Record(dot(Point{2, 2}), DefaultStyle)
	l.Undo()

	d := l.Discard(line(Point{0, 50}, Point{60, 50}), DefaultStyle)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, []string{keep.ID}, ids(l.Draws()))
	assert.True(t, l.CanRedo())
	assert.Equal(t, Action(undone), l.Redo())
	assert.False(t, l.CanRedo())
}

func TestLog_Queries(t *testing.T) {
	l := NewLog()
	assert.True(t, l.IsEmpty())
	assert.False(t, l.HasAnyStroke())
	assert.False(t, l.IsTopUndoAnErase())

	l.Record(dot(Point{5, 5}), DefaultStyle)
	require.True(t, l.EraseAt(Point{5, 5}, EraserHalfSize))

	assert.False(t, l.IsEmpty(), "an erase batch can still be undone")
	assert.False(t, l.HasAnyStroke())
	assert.True(t, l.IsTopUndoAnErase())
}
