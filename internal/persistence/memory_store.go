package persistence

import (
	"context"
	"sync"

	"github.com/jranta/kanvas/pkg/api"
)

// MemoryEventStore is a simple, goroutine-safe EventStore backed by
// per-canvas slices. It is non-durable and intended for tests and
// single-process use.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string][]api.Event
}

var _ EventStore = (*MemoryEventStore)(nil)

// NewMemoryEventStore creates an empty MemoryEventStore.
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{
		events: make(map[string][]api.Event),
	}
}

func (s *MemoryEventStore) AppendEvent(ctx context.Context, canvasID string, ev api.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[canvasID] = append(s.events[canvasID], ev)
	return nil
}

func (s *MemoryEventStore) ListEvents(ctx context.Context, f EventFilter) ([]api.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []api.Event
	for _, ev := range s.events[f.CanvasID] {
		if f.Match(ev) {
			out = append(out, ev)
		}
	}
	return out, nil
}
