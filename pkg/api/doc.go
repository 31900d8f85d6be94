// Package api contains the core building blocks of the kanvas canvas
// engine: the event model, the derived canvas state, the Engine
// interface handed to rendering layers, and the Observer family used
// for change notification, logging, and metrics.
//
// Most users interact with the higher-level kanvas package, which
// re-exports selected types and constructors from this package. The api
// package is intended for custom integrations or contributors extending
// the engine itself.
//
// # Concepts
//
//   - Events: immutable records of state-changing intents, one typed
//     payload per EventKind.
//   - CanvasState: derived by folding the event log; never mutated in
//     place.
//   - Engine: dispatch, undo/redo, edge-creation sessions.
//   - Observer: callbacks for state changes and persistence outcomes.
package api
