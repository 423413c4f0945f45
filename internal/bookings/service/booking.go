package service

import (
	"context"
	"errors"

	"roomly/internal/availability"
	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	"roomly/internal/events"
	"roomly/internal/search"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

type BookingService interface {
	List(ctx context.Context, resourceID string) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
	CheckAvailability(ctx context.Context, resourceID, start, end, excludeID string) (availability.Result, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(repo repository.BookingRepository, v *validator.BookingValidator, publisher events.Publisher, log *logger.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) List(ctx context.Context, resourceID string) ([]model.Booking, error) {
	bookings, err := s.repo.List(ctx, resourceID)
	if err != nil {
		s.log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return search.SortBookingsByStart(bookings), nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if booking.Status == "" {
		booking.Status = model.BookingPending
	}
	if booking.ResourceType == "" {
		booking.ResourceType = model.ResourceRoom
	}
	booking.Title = sanitizer.Label(booking.Title)

	if err := s.validator.Validate(booking); err != nil {
		s.log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.log.Info("Booking created", "id", booking.ID, "resource_id", booking.ResourceID)
	s.emit(ctx, events.BookingCreated, booking.ID, booking)
	return nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}
	if updates.Title != nil {
		title := sanitizer.Label(*updates.Title)
		updates.Title = &title
	}

	booking, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.log.Info("Booking updated", "id", id)
	s.emit(ctx, events.BookingUpdated, id, booking)
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete booking", "id", id, "error", err)
		return false, apperrors.Internal("Failed to delete booking", err)
	}

	s.log.Info("Booking delete finished", "id", id, "removed", removed)
	if removed {
		s.emit(ctx, events.BookingDeleted, id, nil)
	}
	return removed, nil
}

// CheckAvailability is an advisory read: it reports whether the proposed
// interval collides with existing bookings for the resource, but nothing
// stops a caller from creating a colliding booking anyway.
func (s *bookingService) CheckAvailability(ctx context.Context, resourceID, start, end, excludeID string) (availability.Result, error) {
	if resourceID == "" {
		return availability.Result{}, apperrors.InvalidInput("Resource ID cannot be empty")
	}

	bookings, err := s.repo.List(ctx, resourceID)
	if err != nil {
		s.log.Error("Failed to load bookings for availability check", "resource_id", resourceID, "error", err)
		return availability.Result{}, apperrors.Internal("Failed to check availability", err)
	}

	return availability.Check(resourceID, start, end, bookings, excludeID), nil
}

func (s *bookingService) emit(ctx context.Context, eventType, id string, booking *model.Booking) {
	event := events.BookingEvent{
		Type:      eventType,
		BookingID: id,
		Booking:   booking,
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.log.Warn("Failed to publish booking event", "type", eventType, "id", id, "error", err)
	}
}
