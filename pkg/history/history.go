// Package history provides the session-scoped, append-only audit log of user
// and admin exchanges. Entries are keyed by session id; the admin channel is
// distinguished by a context tag rather than a separate log.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Roles recorded in the log.
const (
	RoleUser   = "user"
	RoleModel  = "model"
	RoleAdmin  = "admin"
	RoleSystem = "system"
)

// ContextAdmin tags entries produced on the admin command channel.
const ContextAdmin = "admin"

// DefaultRetention is the per-session entry cap applied when a store is
// opened without an explicit cap. Oldest entries are pruned on append.
const DefaultRetention = 500

// Entry is one logged exchange line.
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// Store persists history entries. Append is atomic per session; List returns
// the newest entries in chronological order.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, sessionID string, limit int) ([]Entry, error)
	Close(ctx context.Context) error
}

// Open selects a store implementation from the DSN scheme:
//
//	""            in-memory
//	memory:       in-memory
//	file:x.db     SQLite
//	sqlite:x.db   SQLite
//	postgres://   Postgres
//	mongodb://    MongoDB (dsn|database|collection)
func Open(ctx context.Context, dsn string, retention int) (Store, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "" || dsn == "memory:" || dsn == "memory":
		return NewInMemoryStore(retention), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return NewSQLiteStore(ctx, strings.TrimPrefix(dsn, "sqlite:"), retention)
	case strings.HasPrefix(dsn, "file:"):
		return NewSQLiteStore(ctx, dsn, retention)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewPostgresStore(ctx, dsn, retention)
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		uri, database, collection := splitMongoDSN(dsn)
		return NewMongoStore(ctx, uri, database, collection, retention)
	default:
		return nil, fmt.Errorf("unsupported history DSN: %s", dsn)
	}
}

// splitMongoDSN splits "uri|database|collection", defaulting the database to
// "indomind" and the collection to "history".
func splitMongoDSN(dsn string) (uri, database, collection string) {
	parts := strings.SplitN(dsn, "|", 3)
	uri, database, collection = parts[0], "indomind", "history"
	if len(parts) > 1 && parts[1] != "" {
		database = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		collection = parts[2]
	}
	return uri, database, collection
}
