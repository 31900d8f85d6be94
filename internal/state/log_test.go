package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

func moveEvent(id string, x float64) api.Event {
	return api.Event{
		ID:      id,
		Payload: api.MoveNodePayload{NodeID: "n1", To: geometry.Point{X: x}},
	}
}

func TestEmptyLog(t *testing.T) {
	l := NewLog()

	assert.Equal(t, -1, l.Current())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
	assert.False(t, l.Undo())
	assert.False(t, l.Redo())
}

func TestAppendAdvancesCursor(t *testing.T) {
	l := NewLog()
	l.Append(moveEvent("a", 1))
	l.Append(moveEvent("b", 2))

	assert.Equal(t, 1, l.Current())
	assert.True(t, l.CanUndo())
	assert.False(t, l.CanRedo())
}

func TestUndoRedoMoveCursor(t *testing.T) {
	l := NewLog()
	l.Append(moveEvent("a", 1))
	l.Append(moveEvent("b", 2))

	require.True(t, l.Undo())
	assert.Equal(t, 0, l.Current())
	assert.True(t, l.CanRedo())

	require.True(t, l.Redo())
	assert.Equal(t, 1, l.Current())
	assert.False(t, l.CanRedo())
}

func TestUndoPastStartIsNoOp(t *testing.T) {
	l := NewLog()
	l.Append(moveEvent("a", 1))

	require.True(t, l.Undo())
	assert.False(t, l.Undo())
	assert.Equal(t, -1, l.Current())
}

func TestAppendAfterUndoTruncatesRedoTail(t *testing.T) {
	l := NewLog()
	for i := 0; i < 5; i++ {
		l.Append(moveEvent(fmt.Sprintf("e%d", i), float64(i)))
	}

	// 3 undos leave the cursor at index 1.
	l.Undo()
	l.Undo()
	l.Undo()
	require.Equal(t, 1, l.Current())
	require.True(t, l.CanRedo())

	l.Append(moveEvent("new", 99))

	assert.Equal(t, 2, l.Current())
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.CanRedo())

	events := l.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "new", events[2].ID)
}

func TestFiveMovesThreeUndos(t *testing.T) {
	l := NewLog()
	for i := 1; i <= 5; i++ {
		l.Append(api.Event{
			ID:      fmt.Sprintf("m%d", i),
			Payload: api.MoveNodePayload{NodeID: "n1", To: geometry.Point{X: float64(i * 10)}},
		})
	}
	// Seed the node so the moves apply.
	seed := api.Event{ID: "seed", Payload: api.AddNodePayload{NodeID: "n1", NodeType: api.NodeDocument}}
	events := append([]api.Event{seed}, l.All()...)
	l = NewLogFromEvents(events)

	l.Undo()
	l.Undo()
	l.Undo()

	assert.Equal(t, 2, l.Current())
	s := l.State()
	require.Contains(t, s.Nodes, "n1")
	// Only the first two moves apply.
	assert.Equal(t, 20.0, s.Nodes["n1"].Position.X)
}

func TestUndoRedoSymmetry(t *testing.T) {
	l := NewLog()
	l.Append(api.Event{ID: "a", Payload: api.AddNodePayload{NodeID: "n1", NodeType: api.NodeAgent}})
	l.Append(moveEvent("b", 50))

	before := l.State()
	require.True(t, l.Undo())
	require.True(t, l.Redo())
	after := l.State()

	assert.Equal(t, before, after)
}

func TestNewLogFromEventsStartsAtTip(t *testing.T) {
	events := []api.Event{moveEvent("a", 1), moveEvent("b", 2)}
	l := NewLogFromEvents(events)

	assert.Equal(t, 1, l.Current())
	assert.False(t, l.CanRedo())
	assert.True(t, l.CanUndo())
}
