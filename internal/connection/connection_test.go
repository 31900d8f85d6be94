package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// mapRegistry is a test AnchorRegistry backed by a map.
type mapRegistry map[string][]api.Anchor

func (r mapRegistry) Anchors(nodeID string) []api.Anchor { return r[nodeID] }

func anchor(id string, t api.ConnectionType, x, y float64) api.Anchor {
	return api.Anchor{
		ID:          id,
		Offset:      geometry.Point{X: x, Y: y},
		Type:        t,
		Connectable: true,
		Visible:     true,
	}
}

func testState() api.CanvasState {
	s := api.NewCanvasState()
	s.Nodes["n1"] = api.Node{ID: "n1", Type: api.NodeDocument, Position: geometry.Point{X: 0, Y: 0}}
	s.Nodes["n2"] = api.Node{ID: "n2", Type: api.NodeAgent, Position: geometry.Point{X: 300, Y: 0}}
	return s
}

func TestValidatePair(t *testing.T) {
	in := api.Anchor{Type: api.ConnectionInput, Connectable: true}
	out := api.Anchor{Type: api.ConnectionOutput, Connectable: true}
	bidi := api.Anchor{Type: api.ConnectionBidirectional, Connectable: true}
	dead := api.Anchor{Type: api.ConnectionOutput, Connectable: false}

	tests := []struct {
		name     string
		source   api.Anchor
		target   api.Anchor
		sameNode bool
		want     error
	}{
		{"output to input", out, in, false, nil},
		{"input to output", in, out, false, nil},
		{"input to input", in, in, false, api.ErrIncompatibleAnchors},
		{"output to output", out, out, false, api.ErrIncompatibleAnchors},
		{"bidirectional to input", bidi, in, false, nil},
		{"bidirectional to output", bidi, out, false, nil},
		{"bidirectional to bidirectional", bidi, bidi, false, nil},
		{"source not connectable", dead, in, false, api.ErrNotConnectable},
		{"target not connectable", out, dead, false, api.ErrNotConnectable},
		{"self connection", out, in, true, api.ErrSelfConnection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePair(tt.source, tt.target, tt.sameNode, false)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidatePairAllowsSelfWhenEnabled(t *testing.T) {
	out := api.Anchor{Type: api.ConnectionOutput, Connectable: true}
	in := api.Anchor{Type: api.ConnectionInput, Connectable: true}

	assert.NoError(t, ValidatePair(out, in, true, true))
}

func TestNearestAnchorWithinSnapDistance(t *testing.T) {
	reg := mapRegistry{
		"n1": {anchor("right", api.ConnectionOutput, 10, 0)},
		"n2": {anchor("left", api.ConnectionInput, 0, 0)},
	}
	s := testState()
	source := api.ConnectionPoint{NodeID: "n1", AnchorID: "right"}

	// n2.left sits at (300, 0); pointer 15px away snaps.
	cp, a, ok := NearestAnchor(s, reg, geometry.Point{X: 315, Y: 0}, 20, source)
	require.True(t, ok)
	assert.Equal(t, "n2", cp.NodeID)
	assert.Equal(t, "left", cp.AnchorID)
	assert.Equal(t, geometry.Point{X: 300, Y: 0}, cp.Position)
	assert.Equal(t, api.ConnectionInput, a.Type)

	// 25px away does not.
	_, _, ok = NearestAnchor(s, reg, geometry.Point{X: 325, Y: 0}, 20, source)
	assert.False(t, ok)
}

func TestNearestAnchorExcludesSource(t *testing.T) {
	reg := mapRegistry{
		"n1": {anchor("right", api.ConnectionOutput, 10, 0)},
	}
	s := testState()
	source := api.ConnectionPoint{NodeID: "n1", AnchorID: "right"}

	_, _, ok := NearestAnchor(s, reg, geometry.Point{X: 10, Y: 0}, 20, source)
	assert.False(t, ok)
}

func TestNearestAnchorSkipsHiddenAndNotConnectable(t *testing.T) {
	hidden := anchor("h", api.ConnectionInput, 0, 0)
	hidden.Visible = false
	dead := anchor("d", api.ConnectionInput, 0, 10)
	dead.Connectable = false

	reg := mapRegistry{"n2": {hidden, dead}}
	s := testState()

	_, _, ok := NearestAnchor(s, reg, geometry.Point{X: 300, Y: 5}, 20, api.ConnectionPoint{})
	assert.False(t, ok)
}

func TestNearestAnchorPicksClosest(t *testing.T) {
	reg := mapRegistry{
		"n2": {
			anchor("near", api.ConnectionInput, 0, 0),
			anchor("far", api.ConnectionInput, 0, 15),
		},
	}
	s := testState()

	cp, _, ok := NearestAnchor(s, reg, geometry.Point{X: 300, Y: 2}, 20, api.ConnectionPoint{})
	require.True(t, ok)
	assert.Equal(t, "near", cp.AnchorID)
}

func TestNearestAnchorTieBreaksByNodeThenAnchorID(t *testing.T) {
	// Two anchors at identical distance from the pointer.
	reg := mapRegistry{
		"n1": {anchor("b", api.ConnectionInput, 0, 10)},
		"n2": {anchor("a", api.ConnectionInput, -300, -10)},
	}
	s := testState()
	// n1.b at (0,10); n2.a at (0,-10); pointer at origin: both 10 away.
	cp, _, ok := NearestAnchor(s, reg, geometry.Point{X: 0, Y: 0}, 20, api.ConnectionPoint{})
	require.True(t, ok)
	assert.Equal(t, "n1", cp.NodeID)
	assert.Equal(t, "b", cp.AnchorID)
}

func TestResolveAnchor(t *testing.T) {
	reg := mapRegistry{
		"n2": {anchor("left", api.ConnectionInput, -5, 3)},
	}
	s := testState()

	cp, a, err := ResolveAnchor(s, reg, "n2", "left")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 295, Y: 3}, cp.Position)
	assert.Equal(t, api.ConnectionInput, a.Type)

	_, _, err = ResolveAnchor(s, reg, "n2", "ghost")
	assert.ErrorIs(t, err, api.ErrUnknownAnchor)

	_, _, err = ResolveAnchor(s, reg, "ghost", "left")
	assert.ErrorIs(t, err, api.ErrUnknownAnchor)
}
