package engine

import (
	"sync"
	"time"
)

// debouncer runs only the last function handed to Do once calls have
// been quiet for the configured duration. Used for wheel zoom, where
// only the settled scale should reach the event log.
type debouncer struct {
	d time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(d time.Duration) *debouncer {
	return &debouncer{d: d}
}

// Do schedules fn, replacing any previously scheduled function.
func (b *debouncer) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Stop cancels any pending function.
func (b *debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
