// Package persistence provides append-only event stores used for
// durability and replay-on-load. The engine treats every store as
// fire-and-forget: local state stays authoritative when a store is
// unavailable.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jranta/kanvas/pkg/api"
)

// ErrEventNotFound is returned when a lookup matches no stored event.
var ErrEventNotFound = errors.New("event not found")

// EventFilter selects events from a store. CanvasID is required; zero
// values elsewhere mean "no filter" for that field.
type EventFilter struct {
	CanvasID string
	Kind     api.EventKind
	Since    time.Time
}

// Match reports whether ev passes the Kind/Since parts of the filter.
func (f EventFilter) Match(ev api.Event) bool {
	if f.Kind != "" && ev.Kind() != f.Kind {
		return false
	}
	if !f.Since.IsZero() && ev.At.Before(f.Since) {
		return false
	}
	return true
}

// EventStore is an append-only store for canvas events, keyed by canvas.
type EventStore interface {
	AppendEvent(ctx context.Context, canvasID string, ev api.Event) error
	ListEvents(ctx context.Context, f EventFilter) ([]api.Event, error)
}

// NoopEventStore discards all events. It is the default store, keeping
// the engine fully local.
type NoopEventStore struct{}

func (NoopEventStore) AppendEvent(ctx context.Context, canvasID string, ev api.Event) error {
	return nil
}

func (NoopEventStore) ListEvents(ctx context.Context, f EventFilter) ([]api.Event, error) {
	return nil, nil
}
