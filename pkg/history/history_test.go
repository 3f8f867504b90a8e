package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestInMemoryAppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(10)

	entries := []Entry{
		{SessionID: "s1", Role: RoleUser, Text: "hello"},
		{SessionID: "s1", Role: RoleModel, Text: "hi there"},
		{SessionID: "s2", Role: RoleAdmin, Text: "disable chat", Context: ContextAdmin},
	}
	for _, e := range entries {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	s1, err := store.List(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("expected 2 entries for s1, got %d", len(s1))
	}
	if s1[0].Role != RoleUser || s1[1].Role != RoleModel {
		t.Fatalf("entries out of order: %+v", s1)
	}
	if s1[0].ID >= s1[1].ID {
		t.Fatalf("ids must be monotonically increasing, got %d then %d", s1[0].ID, s1[1].ID)
	}
	if s1[0].CreatedAt.IsZero() {
		t.Fatalf("expected Append to stamp CreatedAt")
	}

	s2, err := store.List(ctx, "s2", 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(s2) != 1 || s2[0].Context != ContextAdmin {
		t.Fatalf("expected a single admin-tagged entry for s2, got %+v", s2)
	}
}

func TestInMemoryRetentionPrunesOldest(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(3)

	for i := 0; i < 5; i++ {
		err := store.Append(ctx, Entry{SessionID: "s", Role: RoleUser, Text: fmt.Sprintf("msg-%d", i)})
		if err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	entries, err := store.List(ctx, "s", 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected retention to cap at 3 entries, got %d", len(entries))
	}
	if entries[0].Text != "msg-2" {
		t.Fatalf("expected oldest surviving entry msg-2, got %q", entries[0].Text)
	}
}

func TestInMemoryListLimitReturnsNewest(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(10)
	for i := 0; i < 4; i++ {
		_ = store.Append(ctx, Entry{SessionID: "s", Role: RoleUser, Text: fmt.Sprintf("msg-%d", i)})
	}

	entries, err := store.List(ctx, "s", 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].Text != "msg-2" || entries[1].Text != "msg-3" {
		t.Fatalf("expected the two newest entries, got %+v", entries)
	}
}

func TestOpenSelectsInMemoryForEmptyDSN(t *testing.T) {
	store, err := Open(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, ok := store.(*InMemoryStore); !ok {
		t.Fatalf("expected in-memory store, got %T", store)
	}
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	if _, err := Open(context.Background(), "redis://localhost", 0); err == nil {
		t.Fatalf("expected error for unsupported DSN")
	}
}

func TestSplitMongoDSNDefaults(t *testing.T) {
	uri, db, coll := splitMongoDSN("mongodb://localhost:27017")
	if uri != "mongodb://localhost:27017" || db != "indomind" || coll != "history" {
		t.Fatalf("unexpected defaults: %q %q %q", uri, db, coll)
	}

	uri, db, coll = splitMongoDSN("mongodb://h|mydb|mylog")
	if uri != "mongodb://h" || db != "mydb" || coll != "mylog" {
		t.Fatalf("unexpected split: %q %q %q", uri, db, coll)
	}
}

func TestMongoDocumentRoundTrip(t *testing.T) {
	ts := time.Now().UTC().Truncate(time.Millisecond)
	doc := mongoHistoryDocument{
		ID:        7,
		SessionID: "session-1",
		Role:      RoleAdmin,
		Text:      "toggle Image Generator",
		Context:   ContextAdmin,
		CreatedAt: ts,
	}
	entry := doc.toEntry()
	if entry.ID != 7 || entry.SessionID != "session-1" || entry.Role != RoleAdmin {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Context != ContextAdmin || !entry.CreatedAt.Equal(ts) {
		t.Fatalf("document fields lost in conversion: %+v", entry)
	}
}

func TestMongoStoreCloseNilClient(t *testing.T) {
	store := &MongoStore{}
	if err := store.Close(context.Background()); err != nil {
		t.Fatalf("Close on zero-value store returned error: %v", err)
	}
}
