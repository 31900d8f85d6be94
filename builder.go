package kanvas

import (
	"context"
	"fmt"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// CanvasBuilder provides a fluent API for seeding a canvas:
//
//	err := kanvas.Build().
//	    Document("n1", "Spec", kanvas.Point{X: 0, Y: 0}).
//	    Agent("n2", "Reviewer", kanvas.Point{X: 300, Y: 0}).
//	    Edge("e1", "n1", "right", "n2", "left", kanvas.PathStraight).
//	    Apply(ctx, eng)
//
// The builder only accumulates event payloads; nothing touches the
// engine until Apply, which dispatches them in order.
type CanvasBuilder struct {
	payloads []api.EventPayload
}

// Build creates an empty CanvasBuilder.
func Build() *CanvasBuilder {
	return &CanvasBuilder{}
}

// Node appends an ADD_NODE payload.
func (b *CanvasBuilder) Node(id string, t api.NodeType, title string, at geometry.Point) *CanvasBuilder {
	if id == "" {
		panic("kanvas: node id must not be empty")
	}
	b.payloads = append(b.payloads, api.AddNodePayload{
		NodeID:   id,
		NodeType: t,
		Position: at,
		Title:    title,
	})
	return b
}

// Document appends a document node.
func (b *CanvasBuilder) Document(id, title string, at geometry.Point) *CanvasBuilder {
	return b.Node(id, api.NodeDocument, title, at)
}

// Agent appends an agent node.
func (b *CanvasBuilder) Agent(id, title string, at geometry.Point) *CanvasBuilder {
	return b.Node(id, api.NodeAgent, title, at)
}

// Edge appends a CREATE_EDGE payload between two anchors. Endpoint
// positions are resolved by the engine's registry at dispatch time when
// available; here they default to the anchor owners' positions.
func (b *CanvasBuilder) Edge(id, sourceNode, sourceAnchor, targetNode, targetAnchor string, kind geometry.PathKind) *CanvasBuilder {
	if id == "" {
		panic("kanvas: edge id must not be empty")
	}
	b.payloads = append(b.payloads, api.CreateEdgePayload{
		EdgeID:   id,
		Source:   api.ConnectionPoint{NodeID: sourceNode, AnchorID: sourceAnchor},
		Target:   api.ConnectionPoint{NodeID: targetNode, AnchorID: targetAnchor},
		EdgeKind: kind,
	})
	return b
}

// Payloads returns the accumulated payloads without dispatching them.
func (b *CanvasBuilder) Payloads() []api.EventPayload {
	out := make([]api.EventPayload, len(b.payloads))
	copy(out, b.payloads)
	return out
}

// Apply dispatches the accumulated payloads in order. It stops at the
// first failure.
func (b *CanvasBuilder) Apply(ctx context.Context, eng Engine) error {
	for i, p := range b.payloads {
		if err := eng.Dispatch(ctx, p); err != nil {
			return fmt.Errorf("apply payload %d (%s): %w", i, p.Kind(), err)
		}
	}
	return nil
}
