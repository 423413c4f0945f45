package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollectionName = "collections"

// collectionDoc holds one whole store collection as a single document, so
// ReplaceOne gives the same full-overwrite semantics as the file backend.
// Records stay opaque JSON; the store enforces no schema either way.
type collectionDoc struct {
	ID      string `bson:"_id"`
	Records []byte `bson:"records"`
}

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(mongoCollectionName)}
}

func (s *MongoStore) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var doc collectionDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to load collection %q: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(doc.Records, &records); err != nil {
		return nil, fmt.Errorf("failed to parse collection %q: %w", collection, err)
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func (s *MongoStore) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", collection, err)
	}

	doc := collectionDoc{ID: collection, Records: data}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": collection}, doc, opts); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", collection, err)
	}
	return nil
}
