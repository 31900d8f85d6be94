package api

import (
	"encoding/gob"
	"time"

	"github.com/jranta/kanvas/pkg/geometry"
)

func init() {
	// Payloads cross the persistence boundary gob-encoded.
	gob.Register(AddNodePayload{})
	gob.Register(MoveNodePayload{})
	gob.Register(DeleteNodePayload{})
	gob.Register(SelectElementPayload{})
	gob.Register(PanCanvasPayload{})
	gob.Register(ZoomCanvasPayload{})
	gob.Register(ResetViewPayload{})
	gob.Register(CreateEdgePayload{})
	gob.Register(DeleteEdgePayload{})
	gob.Register(UpdateEdgePathPayload{})
}

// EventKind identifies a canvas event. The set is closed; the reducer
// matches it exhaustively and skips anything it does not recognize.
type EventKind string

const (
	EventAddNode        EventKind = "ADD_NODE"
	EventMoveNode       EventKind = "MOVE_NODE"
	EventDeleteNode     EventKind = "DELETE_NODE"
	EventSelectElement  EventKind = "SELECT_ELEMENT"
	EventPanCanvas      EventKind = "PAN_CANVAS"
	EventZoomCanvas     EventKind = "ZOOM_CANVAS"
	EventResetView      EventKind = "RESET_VIEW"
	EventCreateEdge     EventKind = "CREATE_EDGE"
	EventDeleteEdge     EventKind = "DELETE_EDGE"
	EventUpdateEdgePath EventKind = "UPDATE_EDGE_PATH"
)

// EventPayload is the kind-specific half of an Event. One concrete
// struct exists per EventKind.
type EventPayload interface {
	Kind() EventKind
}

// Event is an immutable record of a single state-changing intent.
type Event struct {
	ID      string
	At      time.Time
	UserID  string
	Payload EventPayload
}

// Kind returns the kind of the payload, or "" for a malformed event
// with no payload.
func (e Event) Kind() EventKind {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.Kind()
}

// ElementType discriminates selection targets.
type ElementType string

const (
	ElementNode ElementType = "node"
	ElementEdge ElementType = "edge"
)

// UpdateReason says why an edge path was rewritten. It is informational
// only; the reducer does not branch on it.
type UpdateReason string

const (
	ReasonNodeMoved  UpdateReason = "node_moved"
	ReasonManualEdit UpdateReason = "manual_edit"
)

type AddNodePayload struct {
	NodeID   string
	NodeType NodeType
	Position geometry.Point
	// Title is optional; the reducer generates "<Type> <n>" when empty.
	Title string
}

func (AddNodePayload) Kind() EventKind { return EventAddNode }

type MoveNodePayload struct {
	NodeID string
	To     geometry.Point
}

func (MoveNodePayload) Kind() EventKind { return EventMoveNode }

type DeleteNodePayload struct {
	NodeID string
}

func (DeleteNodePayload) Kind() EventKind { return EventDeleteNode }

type SelectElementPayload struct {
	// ElementID empty clears the selection entirely.
	ElementID   string
	ElementType ElementType
}

func (SelectElementPayload) Kind() EventKind { return EventSelectElement }

// PanCanvasPayload carries the already-clamped target view box; clamping
// happens at the caller before the event is created.
type PanCanvasPayload struct {
	To geometry.ViewBox
}

func (PanCanvasPayload) Kind() EventKind { return EventPanCanvas }

type ZoomCanvasPayload struct {
	Scale float64
	To    geometry.ViewBox
}

func (ZoomCanvasPayload) Kind() EventKind { return EventZoomCanvas }

type ResetViewPayload struct {
	To    geometry.ViewBox
	Scale float64
}

func (ResetViewPayload) Kind() EventKind { return EventResetView }

// NewResetView builds the payload for returning to the default view.
func NewResetView() ResetViewPayload {
	return ResetViewPayload{
		To:    geometry.ViewBox{Width: DefaultViewWidth, Height: DefaultViewHeight},
		Scale: 1.0,
	}
}

type CreateEdgePayload struct {
	EdgeID   string
	Source   ConnectionPoint
	Target   ConnectionPoint
	EdgeKind geometry.PathKind
	Style    EdgeStyle
}

func (CreateEdgePayload) Kind() EventKind { return EventCreateEdge }

type DeleteEdgePayload struct {
	EdgeID string
}

func (DeleteEdgePayload) Kind() EventKind { return EventDeleteEdge }

type UpdateEdgePathPayload struct {
	EdgeID string
	Path   geometry.Path
	Reason UpdateReason
}

func (UpdateEdgePathPayload) Kind() EventKind { return EventUpdateEdgePath }
