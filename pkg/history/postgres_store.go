package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS history (
	id BIGSERIAL PRIMARY KEY,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL,
	text TEXT NOT NULL,
	context TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id, id);
`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool      *pgxpool.Pool
	retention int
}

func NewPostgresStore(ctx context.Context, connStr string, retention int) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect postgres history: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &PostgresStore{pool: pool, retention: retention}, nil
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO history (session_id, role, text, context, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.SessionID, entry.Role, entry.Text, entry.Context, entry.CreatedAt,
	)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`DELETE FROM history WHERE session_id = $1 AND id NOT IN (
			SELECT id FROM history WHERE session_id = $1 ORDER BY id DESC LIMIT $2
		)`,
		entry.SessionID, s.retention,
	)
	return err
}

func (s *PostgresStore) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.retention
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, session_id, role, text, context, created_at FROM (
			SELECT id, session_id, role, text, context, created_at
			FROM history WHERE session_id = $1 ORDER BY id DESC LIMIT $2
		) newest ORDER BY id ASC`,
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

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
