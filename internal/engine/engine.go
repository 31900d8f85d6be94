// Package engine wires the event log, reducer, connection sessions, and
// persistence flusher into the api.Engine implementation.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jranta/kanvas/internal/connection"
	"github.com/jranta/kanvas/internal/persistence"
	"github.com/jranta/kanvas/internal/state"
	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// Config describes how to construct a canvas engine. Zero fields fall
// back to defaults: NoopEventStore, NoopObserver, empty registry,
// canvas "default".
type Config struct {
	Store    persistence.EventStore
	Registry api.AnchorRegistry
	Observer api.Observer

	CanvasID string
	UserID   string

	SnapDistance         float64
	AllowSelfConnections bool
	EdgeKind             geometry.PathKind

	// FlushInterval is the batching window for persistence.
	FlushInterval time.Duration

	// ZoomDebounce coalesces rapid ZOOM_CANVAS dispatches so only the
	// settled scale reaches the log. Zero disables debouncing.
	ZoomDebounce time.Duration
}

// Defaults for Config.
const (
	DefaultFlushInterval = 500 * time.Millisecond
	DefaultZoomDebounce  = 50 * time.Millisecond
	DefaultCanvasID      = "default"
)

// emptyRegistry satisfies AnchorRegistry when the host supplies none.
type emptyRegistry struct{}

func (emptyRegistry) Anchors(nodeID string) []api.Anchor { return nil }

type canvasEngine struct {
	cfg Config

	mu      sync.Mutex
	log     *state.Log
	current api.CanvasState
	session *connection.Session

	flusher  *flusher
	debounce *debouncer
}

var _ api.Engine = (*canvasEngine)(nil)

// New constructs an engine from cfg.
func New(cfg Config) api.Engine {
	if cfg.Store == nil {
		cfg.Store = persistence.NoopEventStore{}
	}
	if cfg.Observer == nil {
		cfg.Observer = api.NoopObserver{}
	}
	if cfg.Registry == nil {
		cfg.Registry = emptyRegistry{}
	}
	if cfg.CanvasID == "" {
		cfg.CanvasID = DefaultCanvasID
	}
	if cfg.SnapDistance <= 0 {
		cfg.SnapDistance = connection.DefaultSnapDistance
	}
	if cfg.EdgeKind == "" {
		cfg.EdgeKind = geometry.PathBezier
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}

	e := &canvasEngine{
		cfg:     cfg,
		log:     state.NewLog(),
		current: api.NewCanvasState(),
	}
	e.flusher = newFlusher(cfg.Store, cfg.CanvasID, cfg.Observer, cfg.FlushInterval)
	if cfg.ZoomDebounce > 0 {
		e.debounce = newDebouncer(cfg.ZoomDebounce)
	}
	return e
}

func (e *canvasEngine) Dispatch(ctx context.Context, p api.EventPayload) error {
	if p == nil {
		return fmt.Errorf("dispatch: nil payload")
	}

	// Wheel zoom arrives at high frequency; only the settled value may
	// reach the log.
	if zp, ok := p.(api.ZoomCanvasPayload); ok && e.debounce != nil {
		e.debounce.Do(func() {
			e.dispatchNow(context.Background(), zp)
		})
		return nil
	}

	return e.dispatchNow(ctx, p)
}

func (e *canvasEngine) dispatchNow(ctx context.Context, p api.EventPayload) error {
	e.mu.Lock()

	var before api.Node
	var hadBefore bool
	switch tp := p.(type) {
	case api.MoveNodePayload:
		before, hadBefore = e.current.Nodes[tp.NodeID]
	case api.CreateEdgePayload:
		// Endpoint positions are authoritative from the registry; fix
		// them up so the reducer computes the path from real anchors.
		if cp, _, err := connection.ResolveAnchor(e.current, e.cfg.Registry, tp.Source.NodeID, tp.Source.AnchorID); err == nil {
			tp.Source = cp
		}
		if cp, _, err := connection.ResolveAnchor(e.current, e.cfg.Registry, tp.Target.NodeID, tp.Target.AnchorID); err == nil {
			tp.Target = cp
		}
		p = tp
	}

	e.append(ctx, p)

	// A node move invalidates the paths of every edge touching it; emit
	// follow-up path updates so path.start/end track the endpoints.
	if mp, ok := p.(api.MoveNodePayload); ok && hadBefore {
		for _, up := range e.edgePathUpdates(mp.NodeID, before.Position) {
			e.append(ctx, up)
		}
	}

	e.mu.Unlock()
	return nil
}

// append stamps and appends a single event, rederives state, and hands
// the event to the observer and the flusher. Caller holds e.mu.
func (e *canvasEngine) append(ctx context.Context, p api.EventPayload) api.Event {
	ev := api.Event{
		ID:      uuid.NewString(),
		At:      time.Now(),
		UserID:  e.cfg.UserID,
		Payload: p,
	}
	e.log.Append(ev)
	e.current = e.log.State()
	e.cfg.Observer.OnEventAppended(ctx, ev, e.current)
	e.flusher.Enqueue(ev)
	return ev
}

// edgePathUpdates recomputes the path of every edge whose endpoint sits
// on the moved node. Anchors are re-resolved through the registry; if
// the registry no longer knows the anchor, the endpoint is translated
// by the node's movement delta instead.
func (e *canvasEngine) edgePathUpdates(nodeID string, oldPos geometry.Point) []api.UpdateEdgePathPayload {
	node, ok := e.current.Nodes[nodeID]
	if !ok {
		return nil
	}
	delta := node.Position.Sub(oldPos)

	var updates []api.UpdateEdgePathPayload
	for _, edge := range e.current.Edges {
		if edge.Source.NodeID != nodeID && edge.Target.NodeID != nodeID {
			continue
		}
		start := e.resolveEndpoint(edge.Source, nodeID, delta)
		end := e.resolveEndpoint(edge.Target, nodeID, delta)
		updates = append(updates, api.UpdateEdgePathPayload{
			EdgeID: edge.ID,
			Path:   geometry.NewPath(edge.Kind, start, end, geometry.PathOptions{}),
			Reason: api.ReasonNodeMoved,
		})
	}
	return updates
}

func (e *canvasEngine) resolveEndpoint(cp api.ConnectionPoint, movedNodeID string, delta geometry.Point) geometry.Point {
	if resolved, _, err := connection.ResolveAnchor(e.current, e.cfg.Registry, cp.NodeID, cp.AnchorID); err == nil {
		return resolved.Position
	}
	if cp.NodeID == movedNodeID {
		return cp.Position.Add(delta)
	}
	return cp.Position
}

func (e *canvasEngine) State() api.CanvasState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

func (e *canvasEngine) Events() []api.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Events()
}

func (e *canvasEngine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.log.Undo() {
		return false
	}
	e.current = e.log.State()
	e.cfg.Observer.OnUndo(context.Background(), e.current)
	return true
}

func (e *canvasEngine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.log.Redo() {
		return false
	}
	e.current = e.log.State()
	e.cfg.Observer.OnRedo(context.Background(), e.current)
	return true
}

func (e *canvasEngine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.CanUndo()
}

func (e *canvasEngine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.CanRedo()
}

func (e *canvasEngine) Load(ctx context.Context) error {
	events, err := e.cfg.Store.ListEvents(ctx, persistence.EventFilter{CanvasID: e.cfg.CanvasID})
	if err != nil {
		// Local state stays authoritative; the caller decides whether to
		// retry or carry on offline.
		e.cfg.Observer.OnPersistError(ctx, err, 0)
		return fmt.Errorf("load events: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = state.NewLogFromEvents(events)
	e.current = e.log.State()
	return nil
}

func (e *canvasEngine) BeginEdgeCreation(nodeID, anchorID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.Phase() == connection.PhaseCreating {
		return api.ErrSessionActive
	}

	source, anchor, err := connection.ResolveAnchor(e.current, e.cfg.Registry, nodeID, anchorID)
	if err != nil {
		return err
	}
	sess, err := connection.Begin(source, anchor, e.cfg.EdgeKind, e.cfg.SnapDistance)
	if err != nil {
		return err
	}
	e.session = sess
	return nil
}

func (e *canvasEngine) UpdateEdgeCreation(pointer geometry.Point) (geometry.Path, *api.ConnectionPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.session.Phase() != connection.PhaseCreating {
		return geometry.Path{}, nil, api.ErrNoSession
	}
	preview, target := e.session.Update(e.current, e.cfg.Registry, pointer)
	return preview, target, nil
}

func (e *canvasEngine) CommitEdgeCreation(ctx context.Context) error {
	e.mu.Lock()

	if e.session == nil || e.session.Phase() != connection.PhaseCreating {
		e.mu.Unlock()
		return api.ErrNoSession
	}

	source, target, err := e.session.Commit(e.cfg.AllowSelfConnections)
	kind := e.session.EdgeKind()
	e.session = nil
	e.mu.Unlock()

	if err != nil {
		return err
	}

	return e.Dispatch(ctx, api.CreateEdgePayload{
		EdgeID:   uuid.NewString(),
		Source:   source,
		Target:   target,
		EdgeKind: kind,
	})
}

func (e *canvasEngine) CancelEdgeCreation() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		e.session.Cancel()
		e.session = nil
	}
}

func (e *canvasEngine) Close() error {
	if e.debounce != nil {
		e.debounce.Stop()
	}
	return e.flusher.Close()
}
