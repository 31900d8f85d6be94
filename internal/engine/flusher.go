package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jranta/kanvas/internal/persistence"
	"github.com/jranta/kanvas/pkg/api"
)

// Flush priorities. Structural events flush ahead of viewport and
// selection noise inside a batch.
const (
	priorityCritical = 0
	priorityLow      = 1
)

func priorityFor(kind api.EventKind) int {
	switch kind {
	case api.EventAddNode, api.EventDeleteNode,
		api.EventCreateEdge, api.EventDeleteEdge,
		api.EventUpdateEdgePath:
		return priorityCritical
	default:
		return priorityLow
	}
}

// flusher batches events and writes them to the event store on a fixed
// interval. Persistence is strictly best-effort: a failed batch is
// re-queued in order for the next tick (at-least-once delivery), and
// the engine's local state never waits on it.
type flusher struct {
	store    persistence.EventStore
	canvasID string
	observer api.Observer

	mu  sync.Mutex
	buf []api.Event

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func newFlusher(store persistence.EventStore, canvasID string, observer api.Observer, interval time.Duration) *flusher {
	f := &flusher{
		store:    store,
		canvasID: canvasID,
		observer: observer,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go f.run(interval)
	return f
}

// Enqueue adds an event to the pending batch. It never blocks.
func (f *flusher) Enqueue(ev api.Event) {
	f.mu.Lock()
	f.buf = append(f.buf, ev)
	f.mu.Unlock()
}

func (f *flusher) run(interval time.Duration) {
	defer close(f.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-f.stopCh:
			f.flush(context.Background())
			return
		case <-ticker.C:
			f.flush(context.Background())
		}
	}
}

// flush drains the buffer, writing critical events first. Order within
// a priority class is preserved, and on failure the unwritten tail goes
// back to the front of the buffer unchanged.
func (f *flusher) flush(ctx context.Context) {
	f.mu.Lock()
	batch := f.buf
	f.buf = nil
	f.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return priorityFor(batch[i].Kind()) < priorityFor(batch[j].Kind())
	})

	for i, ev := range batch {
		if err := f.store.AppendEvent(ctx, f.canvasID, ev); err != nil {
			remaining := batch[i:]
			f.mu.Lock()
			f.buf = append(append([]api.Event{}, remaining...), f.buf...)
			pending := len(f.buf)
			f.mu.Unlock()
			f.observer.OnPersistError(ctx, err, pending)
			return
		}
	}
	f.observer.OnBatchFlushed(ctx, len(batch))
}

// Close performs a final flush and stops the background goroutine.
func (f *flusher) Close() error {
	f.stopOnce.Do(func() {
		close(f.stopCh)
	})
	<-f.doneCh
	return nil
}
