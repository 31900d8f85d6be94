package api

import (
	"context"
	"errors"

	"github.com/jranta/kanvas/pkg/geometry"
)

var (
	// ErrSessionActive is returned when a second edge-creation session
	// is started while one is already in progress.
	ErrSessionActive = errors.New("edge creation session already active")

	// ErrNoSession is returned when committing or updating an edge
	// creation while no session is active.
	ErrNoSession = errors.New("no edge creation session active")

	// ErrNotConnectable is returned when an edge endpoint refers to an
	// anchor with Connectable == false.
	ErrNotConnectable = errors.New("anchor is not connectable")

	// ErrIncompatibleAnchors is returned for input-input or
	// output-output pairings.
	ErrIncompatibleAnchors = errors.New("incompatible anchor directions")

	// ErrSelfConnection is returned when both endpoints belong to the
	// same node and self connections are disabled.
	ErrSelfConnection = errors.New("self connection not allowed")

	// ErrNoTarget is returned when committing an edge creation with no
	// anchor within snap distance.
	ErrNoTarget = errors.New("no connection target within snap distance")

	// ErrUnknownAnchor is returned when a referenced anchor cannot be
	// resolved through the registry.
	ErrUnknownAnchor = errors.New("unknown anchor")
)

// Engine is the canvas state engine handed to the rendering/UI layer.
//
// All state changes flow through Dispatch as events; State is always the
// fold of the event log up to the current cursor. Persistence is
// fire-and-forget: Dispatch never blocks on the event store, and store
// failures leave local state authoritative.
type Engine interface {
	// Dispatch stamps the payload into an Event, appends it to the log,
	// rederives state, and queues the event for persistence.
	// Dispatching after undos truncates the redo tail first.
	//
	// A MOVE_NODE on a node with attached edges also appends one
	// UPDATE_EDGE_PATH event per affected edge, so undoing such a move
	// takes one Undo call per appended event.
	Dispatch(ctx context.Context, p EventPayload) error

	// State returns the current derived canvas state.
	State() CanvasState

	// Events returns a copy of the event log up to and including the
	// current cursor.
	Events() []Event

	// Undo moves the cursor back one event. It reports false when there
	// is nothing to undo; that is a no-op, not an error. Undo granularity
	// is one event, not one user gesture: see Dispatch for moves that
	// append follow-up path updates.
	Undo() bool

	// Redo moves the cursor forward one event. It reports false at the
	// log tip.
	Redo() bool

	CanUndo() bool
	CanRedo() bool

	// Load replays persisted events from the event store, replacing the
	// local log. A store failure is returned but leaves the engine
	// usable with its local state.
	Load(ctx context.Context) error

	// BeginEdgeCreation opens a drag session from the given source
	// anchor on the given node. Only one session may be active.
	BeginEdgeCreation(nodeID, anchorID string) error

	// UpdateEdgeCreation feeds the current pointer position (world
	// coordinates) into the active session and returns the live preview
	// path. The returned target is non-nil when an anchor is within
	// snap distance.
	UpdateEdgeCreation(pointer geometry.Point) (preview geometry.Path, target *ConnectionPoint, err error)

	// CommitEdgeCreation validates the provisional target and, on
	// success, dispatches CREATE_EDGE. On any validation failure the
	// session is cancelled and the error returned.
	CommitEdgeCreation(ctx context.Context) error

	// CancelEdgeCreation discards the session. It never emits an event
	// and is safe to call when no session is active.
	CancelEdgeCreation()

	// Close flushes pending persistence work and stops background
	// goroutines.
	Close() error
}
