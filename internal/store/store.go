// Package store implements the persistent key-value layer: a durable
// mapping from a collection name to an ordered sequence of records.
// The store enforces no schema; repositories above it own record shape.
//
// All higher-level mutation is load full collection, transform, save full
// collection. Save overwrites the entire collection; there is no partial
// write.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	Rooms    = "rooms"
	Assets   = "assets"
	Bookings = "bookings"
)

type Store interface {
	// Load returns the collection's records in stored order. A collection
	// that has never been written yields an empty sequence, not an error.
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Save overwrites the whole collection with the given records.
	Save(ctx context.Context, collection string, records []json.RawMessage) error
}

// LoadAll loads a collection and decodes each record into T.
func LoadAll[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raw))
	for i, record := range raw {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("failed to decode record %d in %q: %w", i, collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// SaveAll encodes the items and overwrites the collection with them.
func SaveAll[T any](ctx context.Context, s Store, collection string, items []T) error {
	records := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode record %d for %q: %w", i, collection, err)
		}
		records = append(records, data)
	}
	return s.Save(ctx, collection, records)
}
