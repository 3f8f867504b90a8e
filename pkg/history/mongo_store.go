package history

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCloseTimeout = 5 * time.Second

// MongoStore implements Store on a MongoDB collection. Entry ids come from a
// counters collection so that ordering survives restarts.
type MongoStore struct {
	client            *mongo.Client
	collection        *mongo.Collection
	counterCollection *mongo.Collection
	retention         int
}

type mongoHistoryDocument struct {
	ID        int64     `bson:"_id"`
	SessionID string    `bson:"session_id"`
	Role      string    `bson:"role"`
	Text      string    `bson:"text"`
	Context   string    `bson:"context,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d mongoHistoryDocument) toEntry() Entry {
	return Entry{
		ID:        d.ID,
		SessionID: d.SessionID,
		Role:      d.Role,
		Text:      d.Text,
		Context:   d.Context,
		CreatedAt: d.CreatedAt,
	}
}

func NewMongoStore(ctx context.Context, uri, database, collection string, retention int) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	if database == "" {
		return nil, errors.New("mongo database name is required")
	}
	if collection == "" {
		return nil, errors.New("mongo collection name is required")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	db := client.Database(database)
	return &MongoStore{
		client:            client,
		collection:        db.Collection(collection),
		counterCollection: db.Collection("counters"),
		retention:         retention,
	}, nil
}

func (s *MongoStore) Append(ctx context.Context, entry Entry) error {
	if s == nil || s.collection == nil {
		return nil
	}
	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	doc := mongoHistoryDocument{
		ID:        id,
		SessionID: entry.SessionID,
		Role:      entry.Role,
		Text:      entry.Text,
		Context:   entry.Context,
		CreatedAt: entry.CreatedAt,
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	return s.prune(ctx, entry.SessionID)
}

func (s *MongoStore) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if s == nil || s.collection == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = s.retention
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoHistoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toEntry())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, mongoCloseTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) nextID(ctx context.Context) (int64, error) {
	res := s.counterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "history"},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var counter struct {
		Value int64 `bson:"value"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// prune deletes everything older than the newest retention entries.
func (s *MongoStore) prune(ctx context.Context, sessionID string) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(s.retention)).
		SetProjection(bson.M{"_id": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var stale []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID int64 `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return err
		}
		stale = append(stale, doc.ID)
	}
	if len(stale) == 0 {
		return cursor.Err()
	}
	_, err = s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": stale}})
	return err
}
