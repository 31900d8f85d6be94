package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jranta/kanvas/pkg/api"
)

// RedisEventStore is an EventStore backed by Redis. It uses a simple
// key structure:
//
//	<prefix>log:<canvasID> => LIST of gob-encoded events, append order
//
// Kind/Since filtering happens client-side after decoding; the log per
// canvas is expected to stay small enough for that to be cheap.
type RedisEventStore struct {
	client *redis.Client
	prefix string
}

var _ EventStore = (*RedisEventStore)(nil)

// NewRedisEventStore creates a RedisEventStore.
// prefix is optional but recommended (e.g. "kanvas:").
func NewRedisEventStore(client *redis.Client, prefix string) *RedisEventStore {
	if prefix == "" {
		prefix = "kanvas:"
	}
	return &RedisEventStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisEventStore) keyLog(canvasID string) string {
	return s.prefix + "log:" + canvasID
}

func (s *RedisEventStore) AppendEvent(ctx context.Context, canvasID string, ev api.Event) error {
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, s.keyLog(canvasID), payload).Err()
}

func (s *RedisEventStore) ListEvents(ctx context.Context, f EventFilter) ([]api.Event, error) {
	raw, err := s.client.LRange(ctx, s.keyLog(f.CanvasID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var out []api.Event
	for _, item := range raw {
		ev, err := decodeEvent([]byte(item))
		if err != nil {
			// Skip corrupt entries; replay is resilient by contract.
			continue
		}
		if f.Match(ev) {
			out = append(out, ev)
		}
	}
	return out, nil
}
