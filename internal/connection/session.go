package connection

import (
	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// Phase is the lifecycle state of a drag session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCreating
	PhaseCommitted
	PhaseCancelled
)

// Session is a single edge-creation drag. It moves
// Idle -> Creating -> Committed | Cancelled and is discarded afterwards;
// the engine enforces that at most one session is active.
type Session struct {
	phase        Phase
	source       api.ConnectionPoint
	sourceAnchor api.Anchor
	target       *api.ConnectionPoint
	targetAnchor api.Anchor
	edgeKind     geometry.PathKind
	snapDistance float64
}

// Begin opens a session from the given resolved source anchor. The
// source must be connectable.
func Begin(source api.ConnectionPoint, anchor api.Anchor, edgeKind geometry.PathKind, snapDistance float64) (*Session, error) {
	if !anchor.Connectable {
		return nil, api.ErrNotConnectable
	}
	if snapDistance <= 0 {
		snapDistance = DefaultSnapDistance
	}
	return &Session{
		phase:        PhaseCreating,
		source:       source,
		sourceAnchor: anchor,
		edgeKind:     edgeKind,
		snapDistance: snapDistance,
	}, nil
}

// Update feeds the current pointer position into the session. It
// reselects the provisional target (nearest connectable anchor within
// snap distance, excluding the source) and returns the live preview
// path from the source to the snapped target or, when nothing is in
// range, to the pointer itself.
func (s *Session) Update(state api.CanvasState, reg api.AnchorRegistry, pointer geometry.Point) (geometry.Path, *api.ConnectionPoint) {
	if s.phase != PhaseCreating {
		return geometry.Path{}, nil
	}

	end := pointer
	if cp, anchor, ok := NearestAnchor(state, reg, pointer, s.snapDistance, s.source); ok {
		s.target = &cp
		s.targetAnchor = anchor
		end = cp.Position
	} else {
		s.target = nil
		s.targetAnchor = api.Anchor{}
	}

	preview := geometry.NewPath(s.edgeKind, s.source.Position, end, geometry.PathOptions{})
	return preview, s.target
}

// Commit validates the provisional connection. On success the session
// becomes Committed and the resolved endpoints are returned for the
// engine to turn into a CREATE_EDGE event. On failure the session is
// cancelled; commit is never silently retried.
func (s *Session) Commit(allowSelf bool) (source, target api.ConnectionPoint, err error) {
	if s.phase != PhaseCreating {
		return api.ConnectionPoint{}, api.ConnectionPoint{}, api.ErrNoSession
	}
	if s.target == nil {
		s.phase = PhaseCancelled
		return api.ConnectionPoint{}, api.ConnectionPoint{}, api.ErrNoTarget
	}
	sameNode := s.source.NodeID == s.target.NodeID
	if err := ValidatePair(s.sourceAnchor, s.targetAnchor, sameNode, allowSelf); err != nil {
		s.phase = PhaseCancelled
		return api.ConnectionPoint{}, api.ConnectionPoint{}, err
	}
	s.phase = PhaseCommitted
	return s.source, *s.target, nil
}

// Cancel discards the provisional connection and returns the session to
// a terminal state. It never emits an event and is idempotent.
func (s *Session) Cancel() {
	if s.phase == PhaseCreating {
		s.phase = PhaseCancelled
	}
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Source returns the session's source connection point.
func (s *Session) Source() api.ConnectionPoint { return s.source }

// EdgeKind returns the path kind previews and the committed edge use.
func (s *Session) EdgeKind() geometry.PathKind { return s.edgeKind }
