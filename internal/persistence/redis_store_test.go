package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jranta/kanvas/pkg/api"
	"github.com/jranta/kanvas/pkg/geometry"
)

func newTestRedisStore(t *testing.T) *RedisEventStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisEventStore(client, "kanvas:test:")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	ev := api.Event{
		ID: "ev-1",
		Payload: api.CreateEdgePayload{
			EdgeID:   "e1",
			Source:   api.ConnectionPoint{NodeID: "n1", AnchorID: "right", Position: geometry.Point{X: 10}},
			Target:   api.ConnectionPoint{NodeID: "n2", AnchorID: "left", Position: geometry.Point{X: 300}},
			EdgeKind: geometry.PathBezier,
		},
	}
	require.NoError(t, store.AppendEvent(ctx, "c1", ev))

	events, err := store.ListEvents(ctx, EventFilter{CanvasID: "c1"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	payload, ok := events[0].Payload.(api.CreateEdgePayload)
	require.True(t, ok, "payload should round-trip as CreateEdgePayload, got %T", events[0].Payload)
	assert.Equal(t, "e1", payload.EdgeID)
	assert.Equal(t, geometry.PathBezier, payload.EdgeKind)
}

func TestRedisStorePreservesOrderAndScopesByCanvas(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	require.NoError(t, store.AppendEvent(ctx, "c1", api.Event{ID: "a", Payload: api.AddNodePayload{NodeID: "n1"}}))
	require.NoError(t, store.AppendEvent(ctx, "c1", api.Event{ID: "b", Payload: api.DeleteNodePayload{NodeID: "n1"}}))
	require.NoError(t, store.AppendEvent(ctx, "c2", api.Event{ID: "x", Payload: api.AddNodePayload{NodeID: "n9"}}))

	events, err := store.ListEvents(ctx, EventFilter{CanvasID: "c1"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
}

func TestRedisStoreFiltersByKind(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	require.NoError(t, store.AppendEvent(ctx, "c1", api.Event{ID: "a", Payload: api.AddNodePayload{NodeID: "n1"}}))
	require.NoError(t, store.AppendEvent(ctx, "c1", api.Event{ID: "b", Payload: api.MoveNodePayload{NodeID: "n1"}}))

	events, err := store.ListEvents(ctx, EventFilter{CanvasID: "c1", Kind: api.EventAddNode})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a", events[0].ID)
}
