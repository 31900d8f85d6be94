// Package geometry contains the pure math used by the canvas engine and
// its renderers: edge path construction (straight, bezier, orthogonal),
// parametric sampling, length estimation, nearest-point queries, and the
// viewport transform (pan/zoom clamping, screen/world conversion).
//
// Everything in this package is deterministic and allocation-light; it
// holds no state and knows nothing about nodes, edges, or events.
package geometry
