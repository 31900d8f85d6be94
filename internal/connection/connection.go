// Package connection implements the edge-creation drag session: anchor
// lookup, snap-distance target search, and compatibility validation.
package connection

import (
	"sort"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// DefaultSnapDistance is the maximum pointer-to-anchor distance, in
// world units, for automatic target selection.
const DefaultSnapDistance = 20.0

// ResolveAnchor looks up an anchor through the registry and resolves its
// world position against the node's current position.
func ResolveAnchor(s api.CanvasState, reg api.AnchorRegistry, nodeID, anchorID string) (api.ConnectionPoint, api.Anchor, error) {
	n, ok := s.Nodes[nodeID]
	if !ok {
		return api.ConnectionPoint{}, api.Anchor{}, api.ErrUnknownAnchor
	}
	for _, a := range reg.Anchors(nodeID) {
		if a.ID == anchorID {
			return api.ConnectionPoint{
				NodeID:   nodeID,
				AnchorID: anchorID,
				Position: n.Position.Add(a.Offset),
			}, a, nil
		}
	}
	return api.ConnectionPoint{}, api.Anchor{}, api.ErrUnknownAnchor
}

// candidate pairs an anchor with its resolved position and owner.
type candidate struct {
	nodeID string
	anchor api.Anchor
	pos    geometry.Point
	dist   float64
}

// NearestAnchor scans the anchors of every node except the excluded
// source anchor, keeps those that are visible and connectable, and
// returns the nearest one within snapDistance. Ties on distance are
// broken by (nodeID, anchorID) so the result does not depend on map
// iteration order.
func NearestAnchor(s api.CanvasState, reg api.AnchorRegistry, pointer geometry.Point, snapDistance float64, exclude api.ConnectionPoint) (api.ConnectionPoint, api.Anchor, bool) {
	if snapDistance <= 0 {
		snapDistance = DefaultSnapDistance
	}

	var cands []candidate
	for id, n := range s.Nodes {
		for _, a := range reg.Anchors(id) {
			if !a.Visible || !a.Connectable {
				continue
			}
			if id == exclude.NodeID && a.ID == exclude.AnchorID {
				continue
			}
			pos := n.Position.Add(a.Offset)
			d := pos.Dist(pointer)
			if d <= snapDistance {
				cands = append(cands, candidate{nodeID: id, anchor: a, pos: pos, dist: d})
			}
		}
	}
	if len(cands) == 0 {
		return api.ConnectionPoint{}, api.Anchor{}, false
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		if cands[i].nodeID != cands[j].nodeID {
			return cands[i].nodeID < cands[j].nodeID
		}
		return cands[i].anchor.ID < cands[j].anchor.ID
	})

	best := cands[0]
	return api.ConnectionPoint{
		NodeID:   best.nodeID,
		AnchorID: best.anchor.ID,
		Position: best.pos,
	}, best.anchor, true
}

// ValidatePair checks whether two anchors may be connected:
// input-input and output-output are invalid, either side not
// connectable is invalid, and same-node connections are invalid unless
// allowSelf is set.
func ValidatePair(source, target api.Anchor, sameNode, allowSelf bool) error {
	if !source.Connectable || !target.Connectable {
		return api.ErrNotConnectable
	}
	if sameNode && !allowSelf {
		return api.ErrSelfConnection
	}
	if source.Type == api.ConnectionInput && target.Type == api.ConnectionInput {
		return api.ErrIncompatibleAnchors
	}
	if source.Type == api.ConnectionOutput && target.Type == api.ConnectionOutput {
		return api.ErrIncompatibleAnchors
	}
	return nil
}
