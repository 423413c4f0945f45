package service

import (
	"context"
	"encoding/json"

	assetsrepo "roomly/internal/assets/repository"
	bookingsrepo "roomly/internal/bookings/repository"
	roomsrepo "roomly/internal/rooms/repository"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

var snapshotKeys = []string{"rooms", "assets", "bookings"}

type SnapshotService interface {
	Export(ctx context.Context) (*model.Snapshot, error)
	Import(ctx context.Context, data []byte) (*model.Snapshot, error)
}

type snapshotService struct {
	rooms    roomsrepo.RoomRepository
	assets   assetsrepo.AssetRepository
	bookings bookingsrepo.BookingRepository
	log      *logger.Logger
}

func NewSnapshotService(rooms roomsrepo.RoomRepository, assets assetsrepo.AssetRepository, bookings bookingsrepo.BookingRepository, log *logger.Logger) SnapshotService {
	return &snapshotService{
		rooms:    rooms,
		assets:   assets,
		bookings: bookings,
		log:      log,
	}
}

// Export returns all three collections in storage order.
func (s *snapshotService) Export(ctx context.Context) (*model.Snapshot, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		s.log.Error("Failed to export rooms", "error", err)
		return nil, apperrors.Internal("Failed to export data", err)
	}
	assets, err := s.assets.List(ctx)
	if err != nil {
		s.log.Error("Failed to export assets", "error", err)
		return nil, apperrors.Internal("Failed to export data", err)
	}
	bookings, err := s.bookings.List(ctx, "")
	if err != nil {
		s.log.Error("Failed to export bookings", "error", err)
		return nil, apperrors.Internal("Failed to export data", err)
	}

	return &model.Snapshot{
		Rooms:    rooms,
		Assets:   assets,
		Bookings: bookings,
	}, nil
}

// Import overwrites all three collections with the document's contents.
// The only acceptance check is that all three keys are present; records
// are taken as-is, no merge with existing data.
func (s *snapshotService) Import(ctx context.Context, data []byte) (*model.Snapshot, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, apperrors.Validation("Malformed import document", map[string]any{"error": err.Error()})
	}

	var missing []string
	for _, key := range snapshotKeys {
		if _, ok := document[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.Validation("Import document is missing required collections", map[string]any{
			"missing": missing,
		})
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, apperrors.Validation("Malformed import document", map[string]any{"error": err.Error()})
	}

	if err := s.rooms.ReplaceAll(ctx, snapshot.Rooms); err != nil {
		s.log.Error("Failed to import rooms", "error", err)
		return nil, apperrors.Internal("Failed to import data", err)
	}
	if err := s.assets.ReplaceAll(ctx, snapshot.Assets); err != nil {
		s.log.Error("Failed to import assets", "error", err)
		return nil, apperrors.Internal("Failed to import data", err)
	}
	if err := s.bookings.ReplaceAll(ctx, snapshot.Bookings); err != nil {
		s.log.Error("Failed to import bookings", "error", err)
		return nil, apperrors.Internal("Failed to import data", err)
	}

	s.log.Info("Snapshot imported",
		"rooms", len(snapshot.Rooms),
		"assets", len(snapshot.Assets),
		"bookings", len(snapshot.Bookings))
	return &snapshot, nil
}
