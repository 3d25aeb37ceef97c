package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config tells Connect where the document store lives.
type Config struct {
	URI      string
	Database string
}

// Store is the document store handle shared by all handlers. It is
// constructed once at startup and passed in explicitly; there is no
// package-level connection state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New("store: DATABASE_URL not set")
	}
	if cfg.Database == "" {
		return nil, errors.New("store: DATABASE_NAME not set")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// CreateDocument inserts fields into the named collection and returns the
// new document id as a hex string. The native ObjectID type never leaves
// this package.
func (s *Store) CreateDocument(ctx context.Context, collection string, fields any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// GetDocuments returns up to limit documents from the named collection
// matching an equality filter (empty filter means all). Ordering is the
// store default. Each document's _id is rewritten to its hex string.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []map[string]any{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
		docs = append(docs, map[string]any(doc))
	}
	return docs, cursor.Err()
}

// Collections lists the collection names, for the diagnostic endpoint.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Ping checks store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
