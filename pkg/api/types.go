package api

import (
	"github.com/jranta/kanvas/pkg/geometry"
)

// NodeType classifies a canvas node.
type NodeType string

const (
	NodeDocument NodeType = "document"
	NodeAgent    NodeType = "agent"
)

// Node is a positioned element on the canvas.
type Node struct {
	ID       string
	Type     NodeType
	Position geometry.Point
	Title    string
}

// ConnectionType is the directionality of an anchor.
type ConnectionType string

const (
	ConnectionInput         ConnectionType = "input"
	ConnectionOutput        ConnectionType = "output"
	ConnectionBidirectional ConnectionType = "bidirectional"
)

// Anchor is a named connection slot on a node. Offset is relative to the
// node position; anchor layout is owned by the registry, not the engine.
type Anchor struct {
	ID          string
	Offset      geometry.Point
	Type        ConnectionType
	Connectable bool
	Visible     bool
}

// AnchorRegistry resolves the anchors of a node. It is supplied by the
// hosting application; the engine only reads from it.
type AnchorRegistry interface {
	// Anchors returns the anchors of the given node, or nil if the node
	// is unknown to the registry.
	Anchors(nodeID string) []Anchor
}

// ConnectionPoint is a resolved (node, anchor, world position) triple
// used as an edge endpoint.
type ConnectionPoint struct {
	NodeID   string
	AnchorID string
	Position geometry.Point
}

// EdgeStyle carries renderer-facing styling. The engine stores it
// opaquely and never interprets it.
type EdgeStyle struct {
	Stroke string
	Width  float64
	Dashed bool
}

// Edge connects two anchors. Path is derived from the endpoints and
// kind; it is recomputed whenever an endpoint node moves, never edited
// as independent truth.
type Edge struct {
	ID     string
	Kind   geometry.PathKind
	Source ConnectionPoint
	Target ConnectionPoint
	Path   geometry.Path
	Style  EdgeStyle
}

// CanvasState is the state derived by folding the event log. It is a
// value: the fold builds a fresh one on every derivation, and nothing
// outside the fold ever mutates it.
type CanvasState struct {
	Nodes map[string]Node
	Edges map[string]Edge

	ViewBox geometry.ViewBox
	Scale   float64

	// At most one of these is non-empty (mutually exclusive selection).
	SelectedNodeID string
	SelectedEdgeID string
}

// Default view dimensions used by the initial state and ResetView.
const (
	DefaultViewWidth  = 1200.0
	DefaultViewHeight = 800.0
)

// NewCanvasState returns the fixed initial state every derivation
// starts from.
func NewCanvasState() CanvasState {
	return CanvasState{
		Nodes:   make(map[string]Node),
		Edges:   make(map[string]Edge),
		ViewBox: geometry.ViewBox{Width: DefaultViewWidth, Height: DefaultViewHeight},
		Scale:   1.0,
	}
}
