package state

import "github.com/jranta/kanvas/pkg/api"

// Log is an append-only event log with a movable cursor for undo/redo.
//
// The zero value is an empty log with the cursor at -1. Log is a plain
// value owned by the engine; it does no locking of its own.
type Log struct {
	events  []api.Event
	current int
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{current: -1}
}

// NewLogFromEvents builds a log positioned at the tip of the given
// events, e.g. after replaying from the event store.
func NewLogFromEvents(events []api.Event) *Log {
	cp := make([]api.Event, len(events))
	copy(cp, events)
	return &Log{events: cp, current: len(cp) - 1}
}

// Append adds an event after the cursor. If the cursor is behind the
// tip (after undos), everything past the cursor is discarded first:
// redo history is lost on a new action.
func (l *Log) Append(ev api.Event) {
	if l.current < len(l.events)-1 {
		l.events = l.events[:l.current+1]
	}
	l.events = append(l.events, ev)
	l.current = len(l.events) - 1
}

// Undo moves the cursor back one event. At the start of the log it is a
// no-op and reports false.
func (l *Log) Undo() bool {
	if l.current < 0 {
		return false
	}
	l.current--
	return true
}

// Redo moves the cursor forward one event. At the tip it is a no-op and
// reports false.
func (l *Log) Redo() bool {
	if l.current >= len(l.events)-1 {
		return false
	}
	l.current++
	return true
}

// CanUndo reports whether at least one event is behind the cursor.
func (l *Log) CanUndo() bool { return l.current >= 0 }

// CanRedo reports whether the cursor is behind the tip.
func (l *Log) CanRedo() bool { return l.current < len(l.events)-1 }

// Current returns the cursor index (-1 when empty or fully undone).
func (l *Log) Current() int { return l.current }

// Len returns the total number of events, including any undone tail.
func (l *Log) Len() int { return len(l.events) }

// Events returns a copy of the events up to and including the cursor.
func (l *Log) Events() []api.Event {
	out := make([]api.Event, l.current+1)
	copy(out, l.events[:l.current+1])
	return out
}

// All returns a copy of every event, including the undone tail.
func (l *Log) All() []api.Event {
	out := make([]api.Event, len(l.events))
	copy(out, l.events)
	return out
}

// State derives the canvas state at the current cursor.
func (l *Log) State() api.CanvasState {
	return Derive(l.events, l.current)
}
