package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/jranta/kanvas/pkg/api"
)

// SQLiteEventStore stores canvas events in SQLite. Payloads are gob
// blobs; the kind and timestamp are denormalized into columns so they
// can be filtered server-side.
type SQLiteEventStore struct {
	db *sql.DB
}

var _ EventStore = (*SQLiteEventStore)(nil)

// NewSQLiteEventStore creates the store and its schema.
func NewSQLiteEventStore(db *sql.DB) (*SQLiteEventStore, error) {
	s := &SQLiteEventStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteEventStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS canvas_events (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT NOT NULL,
			canvas_id TEXT NOT NULL,
			at INTEGER NOT NULL,
			kind TEXT NOT NULL,
			user_id TEXT NOT NULL DEFAULT '',
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_canvas_events_canvas ON canvas_events(canvas_id, seq);
	`)
	return err
}

func (s *SQLiteEventStore) AppendEvent(ctx context.Context, canvasID string, ev api.Event) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO canvas_events (event_id, canvas_id, at, kind, user_id, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID,
		canvasID,
		at.UnixNano(),
		string(ev.Kind()),
		ev.UserID,
		payload,
	)
	return err
}

func (s *SQLiteEventStore) ListEvents(ctx context.Context, f EventFilter) ([]api.Event, error) {
	query := `
		SELECT payload FROM canvas_events
		WHERE canvas_id = ?`
	args := []any{f.CanvasID}

	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(f.Kind))
	}
	if !f.Since.IsZero() {
		query += ` AND at >= ?`
		args = append(args, f.Since.UnixNano())
	}
	query += ` ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		ev, err := decodeEvent(payload)
		if err != nil {
			// A corrupt row must not poison the whole replay.
			continue
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
