package api

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Observer receives callbacks from the canvas engine for logging and
// metrics, and doubles as the change-notification mechanism for UIs.
//
// Implementations should be fast and non-blocking; heavy work should be
// done asynchronously so as not to delay dispatch.
type Observer interface {
	// OnEventAppended is called after an event has been appended and the
	// state rederived.
	OnEventAppended(ctx context.Context, ev Event, state CanvasState)

	// OnUndo / OnRedo are called after a successful cursor move, with
	// the state derived at the new cursor.
	OnUndo(ctx context.Context, state CanvasState)
	OnRedo(ctx context.Context, state CanvasState)

	// OnPersistError is called when a batch flush to the event store
	// fails. pending is the number of events re-queued for retry.
	OnPersistError(ctx context.Context, err error, pending int)

	// OnBatchFlushed is called after a successful flush of n events.
	OnBatchFlushed(ctx context.Context, n int)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnEventAppended(ctx context.Context, ev Event, state CanvasState) {}
func (NoopObserver) OnUndo(ctx context.Context, state CanvasState)                    {}
func (NoopObserver) OnRedo(ctx context.Context, state CanvasState)                    {}
func (NoopObserver) OnPersistError(ctx context.Context, err error, pending int)       {}
func (NoopObserver) OnBatchFlushed(ctx context.Context, n int)                        {}

// CompositeObserver fans out callbacks to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards callbacks to
// each non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnEventAppended(ctx context.Context, ev Event, state CanvasState) {
	for _, o := range c.observers {
		o.OnEventAppended(ctx, ev, state)
	}
}

func (c *CompositeObserver) OnUndo(ctx context.Context, state CanvasState) {
	for _, o := range c.observers {
		o.OnUndo(ctx, state)
	}
}

func (c *CompositeObserver) OnRedo(ctx context.Context, state CanvasState) {
	for _, o := range c.observers {
		o.OnRedo(ctx, state)
	}
}

func (c *CompositeObserver) OnPersistError(ctx context.Context, err error, pending int) {
	for _, o := range c.observers {
		o.OnPersistError(ctx, err, pending)
	}
}

func (c *CompositeObserver) OnBatchFlushed(ctx context.Context, n int) {
	for _, o := range c.observers {
		o.OnBatchFlushed(ctx, n)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs engine activity using
// the provided slog.Logger. If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnEventAppended(ctx context.Context, ev Event, state CanvasState) {
	o.Logger.DebugContext(ctx, "event_appended",
		slog.String("event_id", ev.ID),
		slog.String("kind", string(ev.Kind())),
		slog.Int("nodes", len(state.Nodes)),
		slog.Int("edges", len(state.Edges)),
	)
}

func (o *LoggingObserver) OnUndo(ctx context.Context, state CanvasState) {
	o.Logger.DebugContext(ctx, "undo",
		slog.Int("nodes", len(state.Nodes)),
		slog.Int("edges", len(state.Edges)),
	)
}

func (o *LoggingObserver) OnRedo(ctx context.Context, state CanvasState) {
	o.Logger.DebugContext(ctx, "redo",
		slog.Int("nodes", len(state.Nodes)),
		slog.Int("edges", len(state.Edges)),
	)
}

func (o *LoggingObserver) OnPersistError(ctx context.Context, err error, pending int) {
	o.Logger.WarnContext(ctx, "persist_failed",
		slog.Any("error", err),
		slog.Int("pending", pending),
	)
}

func (o *LoggingObserver) OnBatchFlushed(ctx context.Context, n int) {
	o.Logger.DebugContext(ctx, "batch_flushed",
		slog.Int("events", n),
	)
}

// BasicMetrics collects simple counters. It implements Observer and can
// be combined with LoggingObserver via NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	eventsAppended  atomic.Int64
	undos           atomic.Int64
	redos           atomic.Int64
	persistFailures atomic.Int64
	eventsFlushed   atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	EventsAppended  int64
	Undos           int64
	Redos           int64
	PersistFailures int64
	EventsFlushed   int64
}

func (m *BasicMetrics) OnEventAppended(ctx context.Context, ev Event, state CanvasState) {
	m.eventsAppended.Add(1)
}

func (m *BasicMetrics) OnUndo(ctx context.Context, state CanvasState) {
	m.undos.Add(1)
}

func (m *BasicMetrics) OnRedo(ctx context.Context, state CanvasState) {
	m.redos.Add(1)
}

func (m *BasicMetrics) OnPersistError(ctx context.Context, err error, pending int) {
	m.persistFailures.Add(1)
}

func (m *BasicMetrics) OnBatchFlushed(ctx context.Context, n int) {
	m.eventsFlushed.Add(int64(n))
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	return BasicMetricsSnapshot{
		EventsAppended:  m.eventsAppended.Load(),
		Undos:           m.undos.Load(),
		Redos:           m.redos.Load(),
		PersistFailures: m.persistFailures.Load(),
		EventsFlushed:   m.eventsFlushed.Load(),
	}
}
