package state

import (
	"fmt"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// Derive folds events[0..index] into a canvas state, starting from the
// fixed initial state. It is pure and deterministic: the same inputs
// always produce the same output, which is what makes undo/redo a
// matter of moving the index.
//
// Malformed events (nil payload, missing IDs, references to entities
// that do not exist) are skipped, not fatal; replay must survive
// partial corruption of a persisted log.
func Derive(events []api.Event, index int) api.CanvasState {
	s := api.NewCanvasState()
	if index >= len(events) {
		index = len(events) - 1
	}
	for i := 0; i <= index; i++ {
		s = apply(s, events[i])
	}
	return s
}

// apply is the per-event transition function. It mutates only the maps
// it owns within this derivation; callers never see intermediate states.
func apply(s api.CanvasState, ev api.Event) api.CanvasState {
	switch p := ev.Payload.(type) {
	case api.AddNodePayload:
		if p.NodeID == "" {
			return s
		}
		title := p.Title
		if title == "" {
			title = defaultTitle(s, p.NodeType)
		}
		s.Nodes[p.NodeID] = api.Node{
			ID:       p.NodeID,
			Type:     p.NodeType,
			Position: p.Position,
			Title:    title,
		}

	case api.MoveNodePayload:
		n, ok := s.Nodes[p.NodeID]
		if !ok {
			return s
		}
		n.Position = p.To
		s.Nodes[p.NodeID] = n

	case api.DeleteNodePayload:
		if _, ok := s.Nodes[p.NodeID]; !ok {
			return s
		}
		delete(s.Nodes, p.NodeID)
		// Cascade: edges referencing the node would dangle otherwise.
		for id, e := range s.Edges {
			if e.Source.NodeID == p.NodeID || e.Target.NodeID == p.NodeID {
				delete(s.Edges, id)
				if s.SelectedEdgeID == id {
					s.SelectedEdgeID = ""
				}
			}
		}
		if s.SelectedNodeID == p.NodeID {
			s.SelectedNodeID = ""
		}

	case api.SelectElementPayload:
		s.SelectedNodeID = ""
		s.SelectedEdgeID = ""
		switch p.ElementType {
		case api.ElementNode:
			s.SelectedNodeID = p.ElementID
		case api.ElementEdge:
			s.SelectedEdgeID = p.ElementID
		}

	case api.PanCanvasPayload:
		s.ViewBox = p.To

	case api.ZoomCanvasPayload:
		s.Scale = p.Scale
		s.ViewBox = p.To

	case api.ResetViewPayload:
		s.ViewBox = p.To
		s.Scale = p.Scale

	case api.CreateEdgePayload:
		if p.EdgeID == "" || p.Source.NodeID == "" || p.Target.NodeID == "" {
			return s
		}
		s.Edges[p.EdgeID] = api.Edge{
			ID:     p.EdgeID,
			Kind:   p.EdgeKind,
			Source: p.Source,
			Target: p.Target,
			Path:   geometry.NewPath(p.EdgeKind, p.Source.Position, p.Target.Position, geometry.PathOptions{}),
			Style:  p.Style,
		}

	case api.DeleteEdgePayload:
		delete(s.Edges, p.EdgeID)
		if s.SelectedEdgeID == p.EdgeID {
			s.SelectedEdgeID = ""
		}

	case api.UpdateEdgePathPayload:
		e, ok := s.Edges[p.EdgeID]
		if !ok {
			return s
		}
		e.Path = p.Path
		e.Source.Position = p.Path.Start
		e.Target.Position = p.Path.End
		s.Edges[p.EdgeID] = e

	default:
		// Unknown or nil payload: skip and keep replaying.
	}
	return s
}

// defaultTitle numbers nodes per type: "Document 1", "Agent 2", ...
func defaultTitle(s api.CanvasState, t api.NodeType) string {
	count := 0
	for _, n := range s.Nodes {
		if n.Type == t {
			count++
		}
	}
	label := "Node"
	switch t {
	case api.NodeDocument:
		label = "Document"
	case api.NodeAgent:
		label = "Agent"
	}
	return fmt.Sprintf("%s %d", label, count+1)
}
