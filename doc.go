// Package kanvas provides an embeddable, event-sourced state engine for
// visual canvas editors (nodes, edges, pan/zoom) in Go.
//
// Kanvas is designed for applications that render a node-and-edge
// workspace — document/agent workflow editors, diagram tools — and want
// the canvas truth derived from an append-only event log rather than
// mutable UI state. It runs fully in Go, supports multiple persistence
// backends, and keeps rendering, dialogs, and editing concerns outside
// the core.
//
// # Core Concepts
//
// The kanvas programming model is intentionally small:
//
//  1. Engine
//  2. Events
//  3. CanvasState
//  4. Edge-creation sessions
//  5. Geometry
//
// # Engine
//
// The Engine owns the event log. Every change — adding a node, moving
// it, creating an edge, panning the view — is dispatched as a typed
// event, appended to the log, and folded into a fresh CanvasState.
// Undo and redo are cursor moves over the same log; dispatching after
// an undo discards the redo tail.
//
// Engines can persist their log to different backends:
//
//   - None (fully local)
//   - In-memory (tests)
//   - SQLite (embedded durability)
//   - Redis
//
// Persistence is fire-and-forget: events are batched and flushed in the
// background, failed batches are retried, and local state never waits
// on a store.
//
// # Events
//
// Each event kind has a typed payload (AddNodePayload, MoveNodePayload,
// CreateEdgePayload, ...). The reducer matches the closed set
// exhaustively and skips anything malformed, so replaying a partially
// corrupted log still yields a usable state.
//
// # CanvasState
//
// CanvasState is derived, never stored: nodes, edges with computed
// paths, the view box, scale, and the current selection. The fold is
// deterministic — the same log prefix always produces the same state,
// which is what makes time travel trivial.
//
// # Edge-creation sessions
//
// BeginEdgeCreation/UpdateEdgeCreation/CommitEdgeCreation drive the
// drag interaction: the engine snaps the pointer to the nearest
// connectable anchor within the snap distance, validates direction
// compatibility (input/output/bidirectional) on commit, and emits a
// CREATE_EDGE event only for valid pairs.
//
// # Geometry
//
// Package pkg/geometry holds the pure math renderers consume directly:
// straight/bezier/orthogonal path construction, point- and
// tangent-at-ratio sampling, SVG path strings, and the viewport
// transform (clamped pan/zoom, screen/world conversion).
//
// For runnable programs, see the /examples directory.
package kanvas
