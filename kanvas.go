package kanvas

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jranta/kanvas/internal/engine"
	"github.com/jranta/kanvas/internal/persistence"
	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Engine               = api.Engine
	CanvasState          = api.CanvasState
	Node                 = api.Node
	Edge                 = api.Edge
	Anchor               = api.Anchor
	AnchorRegistry       = api.AnchorRegistry
	ConnectionPoint      = api.ConnectionPoint
	Event                = api.Event
	EventKind            = api.EventKind
	EventPayload         = api.EventPayload
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	NoopObserver         = api.NoopObserver
	Point                = geometry.Point
	ViewBox              = geometry.ViewBox
	Path                 = geometry.Path
	PathKind             = geometry.PathKind
)

// Event payloads, re-exported so callers can dispatch without importing
// pkg/api.

type (
	AddNodePayload        = api.AddNodePayload
	MoveNodePayload       = api.MoveNodePayload
	DeleteNodePayload     = api.DeleteNodePayload
	SelectElementPayload  = api.SelectElementPayload
	PanCanvasPayload      = api.PanCanvasPayload
	ZoomCanvasPayload     = api.ZoomCanvasPayload
	ResetViewPayload      = api.ResetViewPayload
	CreateEdgePayload     = api.CreateEdgePayload
	DeleteEdgePayload     = api.DeleteEdgePayload
	UpdateEdgePathPayload = api.UpdateEdgePathPayload
)

// Re-export common observer helpers.

var (
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
)

// Re-export node and connection classifications for convenience.

const (
	NodeDocument = api.NodeDocument
	NodeAgent    = api.NodeAgent

	ConnectionInput         = api.ConnectionInput
	ConnectionOutput        = api.ConnectionOutput
	ConnectionBidirectional = api.ConnectionBidirectional

	PathStraight   = geometry.PathStraight
	PathBezier     = geometry.PathBezier
	PathOrthogonal = geometry.PathOrthogonal
)

// Option configures an engine at construction time.
type Option func(*engine.Config)

// WithObserver registers an observer for state changes, logging, and
// metrics.
func WithObserver(o api.Observer) Option {
	return func(c *engine.Config) { c.Observer = o }
}

// WithRegistry supplies the node/anchor registry the engine resolves
// connection points through.
func WithRegistry(r api.AnchorRegistry) Option {
	return func(c *engine.Config) { c.Registry = r }
}

// WithCanvasID scopes persisted events to a canvas.
func WithCanvasID(id string) Option {
	return func(c *engine.Config) { c.CanvasID = id }
}

// WithUserID stamps dispatched events with a user.
func WithUserID(id string) Option {
	return func(c *engine.Config) { c.UserID = id }
}

// WithSnapDistance overrides the anchor snap distance for edge creation.
func WithSnapDistance(d float64) Option {
	return func(c *engine.Config) { c.SnapDistance = d }
}

// WithSelfConnections allows edges whose endpoints share a node.
func WithSelfConnections() Option {
	return func(c *engine.Config) { c.AllowSelfConnections = true }
}

// WithEdgeKind sets the path kind for edges created through drag
// sessions. Default is bezier.
func WithEdgeKind(k geometry.PathKind) Option {
	return func(c *engine.Config) { c.EdgeKind = k }
}

// WithFlushInterval sets the persistence batching window.
func WithFlushInterval(d time.Duration) Option {
	return func(c *engine.Config) { c.FlushInterval = d }
}

// WithZoomDebounce coalesces rapid zoom dispatches; only the settled
// scale reaches the event log. Zero disables debouncing.
func WithZoomDebounce(d time.Duration) Option {
	return func(c *engine.Config) { c.ZoomDebounce = d }
}

// Engine constructors
// These wrap the internal/engine package so external callers
// never need to import internal packages.

func build(store persistence.EventStore, opts []Option) api.Engine {
	cfg := engine.Config{Store: store}
	for _, opt := range opts {
		opt(&cfg)
	}
	return engine.New(cfg)
}

// NewEngine returns a fully local engine: events are kept in the
// in-process log only and never persisted.
func NewEngine(opts ...Option) Engine {
	return build(persistence.NoopEventStore{}, opts)
}

// NewInMemoryEngine returns an engine persisting events to an in-memory
// store. Useful for tests that exercise Load/replay without a database.
func NewInMemoryEngine(opts ...Option) Engine {
	return build(persistence.NewMemoryEventStore(), opts)
}

// NewSQLiteEngine returns an engine that persists canvas events in a
// SQLite database.
func NewSQLiteEngine(db *sql.DB, opts ...Option) (Engine, error) {
	store, err := persistence.NewSQLiteEventStore(db)
	if err != nil {
		return nil, err
	}
	return build(store, opts), nil
}

// NewRedisEngine returns an engine that persists canvas events in
// Redis. prefix is optional (default "kanvas:").
func NewRedisEngine(client *redis.Client, prefix string, opts ...Option) Engine {
	return build(persistence.NewRedisEventStore(client, prefix), opts)
}
