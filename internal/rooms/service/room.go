package service

import (
	"context"
	"errors"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/validator"
	"roomly/internal/search"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

// DefaultRoomName is the placeholder assigned on minimal creation, so the
// create-then-edit flow always yields a renderable record.
const DefaultRoomName = "New room"

// ListFilter carries the optional query criteria for listing rooms.
type ListFilter struct {
	Query       string
	Features    []string
	MinCapacity int
}

type RoomService interface {
	List(ctx context.Context, filter ListFilter) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error)
	Delete(ctx context.Context, id string) (bool, error)
	MassUpdate(ctx context.Context, updates map[string]*model.RoomUpdate) (int, error)
}

type roomService struct {
	repo      repository.RoomRepository
	validator *validator.RoomValidator
	log       *logger.Logger
}

func NewRoomService(repo repository.RoomRepository, v *validator.RoomValidator, log *logger.Logger) RoomService {
	return &roomService{
		repo:      repo,
		validator: v,
		log:       log,
	}
}

func (s *roomService) List(ctx context.Context, filter ListFilter) ([]model.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}

	rooms = search.RankByQuery(rooms, filter.Query)
	rooms = search.FilterByFeatures(rooms, sanitizer.Features(filter.Features))
	rooms = search.FilterByMinCapacity(rooms, filter.MinCapacity)
	return search.SortRoomsByName(rooms), nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}
	return room, nil
}

func (s *roomService) Create(ctx context.Context, room *model.Room) error {
	s.applyDefaults(room)
	s.sanitize(room)

	if err := s.validator.Validate(room); err != nil {
		s.log.Warn("Room validation failed", "error", err)
		return apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", "error", err)
		return apperrors.Internal("Failed to create room", err)
	}

	s.log.Info("Room created", "id", room.ID, "name", room.Name)
	return nil
}

func (s *roomService) Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.log.Warn("Room update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}
	if updates.Name != nil {
		name := sanitizer.Label(*updates.Name)
		updates.Name = &name
	}
	if updates.Features != nil {
		features := sanitizer.Features(*updates.Features)
		updates.Features = &features
	}

	room, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		s.log.Error("Failed to update room", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update room", err)
	}

	s.log.Info("Room updated", "id", id)
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.InvalidInput("Room ID cannot be empty")
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete room", "id", id, "error", err)
		return false, apperrors.Internal("Failed to delete room", err)
	}

	s.log.Info("Room delete finished", "id", id, "removed", removed)
	return removed, nil
}

func (s *roomService) MassUpdate(ctx context.Context, updates map[string]*model.RoomUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	for id, u := range updates {
		if u == nil {
			continue
		}
		if err := s.validator.ValidateUpdate(u); err != nil {
			s.log.Warn("Mass update validation failed", "id", id, "error", err)
			return 0, apperrors.Validation("Invalid update input", map[string]any{
				"id":    id,
				"error": err.Error(),
			})
		}
	}

	applied, err := s.repo.MassUpdate(ctx, updates)
	if err != nil {
		s.log.Error("Failed to mass update rooms", "error", err)
		return 0, apperrors.Internal("Failed to update rooms", err)
	}

	s.log.Info("Rooms mass updated", "requested", len(updates), "applied", applied)
	return applied, nil
}

func (s *roomService) applyDefaults(room *model.Room) {
	if room.Name == "" {
		room.Name = DefaultRoomName
	}
	if room.Features == nil {
		room.Features = []string{}
	}
}

func (s *roomService) sanitize(room *model.Room) {
	room.Name = sanitizer.Label(room.Name)
	room.Location = sanitizer.Label(room.Location)
	room.Features = sanitizer.Features(room.Features)
}
