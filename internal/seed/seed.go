// Package seed imports the bundled example dataset on first run. Seeding
// is idempotent: it only fires when the room collection has never been
// written, and any failure is logged and swallowed so the application
// still starts with an empty store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"roomly/internal/store"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

const fetchTimeout = 10 * time.Second

type Seeder struct {
	store  store.Store
	source string
	log    *logger.Logger
}

// NewSeeder builds a seeder reading from source, either a local file path
// or an http(s) URL.
func NewSeeder(s store.Store, source string, log *logger.Logger) *Seeder {
	return &Seeder{
		store:  s,
		source: source,
		log:    log,
	}
}

// Run seeds the store if it is empty. Safe to call unconditionally on
// every startup; never returns an error.
func (s *Seeder) Run(ctx context.Context) {
	rooms, err := s.store.Load(ctx, store.Rooms)
	if err != nil {
		s.log.Warn("Seeding skipped: failed to inspect store", "error", err)
		return
	}
	if len(rooms) > 0 {
		s.log.Debug("Seeding skipped: store already has data", "rooms", len(rooms))
		return
	}

	data, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("Seeding skipped: failed to fetch dataset", "source", s.source, "error", err)
		return
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.log.Warn("Seeding skipped: failed to parse dataset", "source", s.source, "error", err)
		return
	}

	if err := store.SaveAll(ctx, s.store, store.Rooms, snapshot.Rooms); err != nil {
		s.log.Warn("Seeding failed: could not write rooms", "error", err)
		return
	}
	if err := store.SaveAll(ctx, s.store, store.Assets, snapshot.Assets); err != nil {
		s.log.Warn("Seeding failed: could not write assets", "error", err)
		return
	}
	if err := store.SaveAll(ctx, s.store, store.Bookings, snapshot.Bookings); err != nil {
		s.log.Warn("Seeding failed: could not write bookings", "error", err)
		return
	}

	s.log.Info("Store seeded with example data",
		"rooms", len(snapshot.Rooms),
		"assets", len(snapshot.Assets),
		"bookings", len(snapshot.Bookings))
}

func (s *Seeder) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(s.source, "http://") || strings.HasPrefix(s.source, "https://") {
		return s.fetchRemote(ctx)
	}
	return os.ReadFile(s.source)
}

func (s *Seeder) fetchRemote(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching seed data", resp.StatusCode)
	}

	const maxSeedBytes = 8 << 20
	return io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes))
}
