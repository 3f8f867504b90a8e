package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL,
	text TEXT NOT NULL,
	context TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id, id);
`

// SQLiteStore is the durable single-file Store implementation.
type SQLiteStore struct {
	db        *sql.DB
	retention int
}

// NewSQLiteStore opens (creating if missing) the database at path and
// applies the schema.
func NewSQLiteStore(ctx context.Context, path string, retention int) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite history: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite history: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &SQLiteStore{db: db, retention: retention}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (session_id, role, text, context, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID, entry.Role, entry.Text, entry.Context, entry.CreatedAt,
	)
	if err != nil {
		return err
	}
	// Retention: drop everything older than the newest N rows of the session.
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM history WHERE session_id = ? AND id NOT IN (
			SELECT id FROM history WHERE session_id = ? ORDER BY id DESC LIMIT ?
		)`,
		entry.SessionID, entry.SessionID, s.retention,
	)
	return err
}

func (s *SQLiteStore) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.retention
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, text, context, created_at FROM (
			SELECT id, session_id, role, text, context, created_at
			FROM history WHERE session_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Role, &e.Text, &e.Context, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close(context.Context) error { return s.db.Close() }
