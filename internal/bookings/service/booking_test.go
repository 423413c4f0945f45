package service

import (
	"context"
	"testing"
	"time"

	"roomly/internal/availability"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	"roomly/internal/events"
	"roomly/internal/store"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type recordingPublisher struct {
	published []events.BookingEvent
	fail      error
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, event events.BookingEvent) error {
	if p.fail != nil {
		return p.fail
	}
	p.published = append(p.published, event)
	return nil
}

func newTestService(t *testing.T) (BookingService, *recordingPublisher) {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	log := logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
	publisher := &recordingPublisher{}
	repo := repository.NewStoreBookingRepository(fileStore)
	svc := NewBookingService(repo, validator.NewBookingValidator(log), publisher, log)
	return svc, publisher
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestCreate_AppliesDefaultsAndPublishes(t *testing.T) {
	svc, publisher := newTestService(t)
	ctx := context.Background()

	booking := &model.Booking{
		ResourceID: "r-1a2b3c4d",
		Start:      mustTime(t, "2026-03-01T09:00:00Z"),
		End:        mustTime(t, "2026-03-01T10:00:00Z"),
	}
	if err := svc.Create(ctx, booking); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.Status != model.BookingPending {
		t.Errorf("status = %q, want %q", booking.Status, model.BookingPending)
	}
	if booking.ResourceType != model.ResourceRoom {
		t.Errorf("resourceType = %q, want %q", booking.ResourceType, model.ResourceRoom)
	}
	if booking.ID == "" {
		t.Error("Create must assign an id")
	}

	if len(publisher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.published))
	}
	if publisher.published[0].Type != events.BookingCreated {
		t.Errorf("event type = %q, want %q", publisher.published[0].Type, events.BookingCreated)
	}
}

func TestCreate_MissingResourceFailsValidation(t *testing.T) {
	svc, publisher := newTestService(t)

	booking := &model.Booking{
		Start: mustTime(t, "2026-03-01T09:00:00Z"),
		End:   mustTime(t, "2026-03-01T10:00:00Z"),
	}
	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error without resource id")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	if len(publisher.published) != 0 {
		t.Errorf("no event should be published on validation failure, got %d", len(publisher.published))
	}
}

func TestCreate_PublishFailureDoesNotFailWrite(t *testing.T) {
	svc, publisher := newTestService(t)
	publisher.fail = context.DeadlineExceeded
	ctx := context.Background()

	booking := &model.Booking{
		ResourceID: "r-1a2b3c4d",
		Start:      mustTime(t, "2026-03-01T09:00:00Z"),
		End:        mustTime(t, "2026-03-01T10:00:00Z"),
	}
	if err := svc.Create(ctx, booking); err != nil {
		t.Fatalf("Create must succeed even when publishing fails: %v", err)
	}

	if _, err := svc.GetByID(ctx, booking.ID); err != nil {
		t.Errorf("booking should be persisted: %v", err)
	}
}

func TestList_FiltersByResourceAndSortsByStart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []model.Booking{
		{ResourceID: "r-aaaa1111", Title: "Late", Start: mustTime(t, "2026-03-01T14:00:00Z"), End: mustTime(t, "2026-03-01T15:00:00Z")},
		{ResourceID: "r-bbbb2222", Title: "Other room", Start: mustTime(t, "2026-03-01T08:00:00Z"), End: mustTime(t, "2026-03-01T09:00:00Z")},
		{ResourceID: "r-aaaa1111", Title: "Early", Start: mustTime(t, "2026-03-01T09:00:00Z"), End: mustTime(t, "2026-03-01T10:00:00Z")},
	}
	for i := range seed {
		if err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	bookings, err := svc.List(ctx, "r-aaaa1111")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].Title != "Early" || bookings[1].Title != "Late" {
		t.Errorf("wrong order: %q then %q", bookings[0].Title, bookings[1].Title)
	}
}

func TestUpdate_StatusTransitionPublishes(t *testing.T) {
	svc, publisher := newTestService(t)
	ctx := context.Background()

	booking := &model.Booking{
		ResourceID: "r-1a2b3c4d",
		Start:      mustTime(t, "2026-03-01T09:00:00Z"),
		End:        mustTime(t, "2026-03-01T10:00:00Z"),
	}
	if err := svc.Create(ctx, booking); err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmed := model.BookingConfirmed
	updated, err := svc.Update(ctx, booking.ID, &model.BookingUpdate{Status: &confirmed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Status != model.BookingConfirmed {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}
	if updated.ResourceID != booking.ResourceID {
		t.Errorf("partial update must not touch resource id")
	}

	last := publisher.published[len(publisher.published)-1]
	if last.Type != events.BookingUpdated {
		t.Errorf("last event = %q, want %q", last.Type, events.BookingUpdated)
	}
}

func TestUpdate_MissingIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	title := "Renamed"
	_, err := svc.Update(context.Background(), "b-missing1", &model.BookingUpdate{Title: &title})
	if err == nil {
		t.Fatal("expected not found")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}
}

func TestDelete_PublishesOnlyWhenRemoved(t *testing.T) {
	svc, publisher := newTestService(t)
	ctx := context.Background()

	booking := &model.Booking{
		ResourceID: "r-1a2b3c4d",
		Start:      mustTime(t, "2026-03-01T09:00:00Z"),
		End:        mustTime(t, "2026-03-01T10:00:00Z"),
	}
	if err := svc.Create(ctx, booking); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := len(publisher.published)

	removed, err := svc.Delete(ctx, "b-missing1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Error("expected removed=false")
	}
	if len(publisher.published) != before {
		t.Error("no event expected for a no-op delete")
	}

	removed, err = svc.Delete(ctx, booking.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}
	last := publisher.published[len(publisher.published)-1]
	if last.Type != events.BookingDeleted || last.BookingID != booking.ID {
		t.Errorf("unexpected delete event: %+v", last)
	}
}

func TestCheckAvailability_ConflictAndExclude(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking := &model.Booking{
		ResourceID: "r-1a2b3c4d",
		Start:      mustTime(t, "2026-03-01T09:00:00Z"),
		End:        mustTime(t, "2026-03-01T10:00:00Z"),
	}
	if err := svc.Create(ctx, booking); err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.CheckAvailability(ctx, "r-1a2b3c4d", "2026-03-01T09:30:00Z", "2026-03-01T10:30:00Z", "")
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.Status != availability.StatusConflict {
		t.Errorf("status = %q, want conflict", result.Status)
	}

	// Excluding the booking itself is the edit flow: its own slot is free.
	result, err = svc.CheckAvailability(ctx, "r-1a2b3c4d", "2026-03-01T09:30:00Z", "2026-03-01T10:30:00Z", booking.ID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.Status != availability.StatusAvailable {
		t.Errorf("status = %q, want available", result.Status)
	}

	// Touching intervals share an endpoint only; that is not a conflict.
	result, err = svc.CheckAvailability(ctx, "r-1a2b3c4d", "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z", "")
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.Status != availability.StatusAvailable {
		t.Errorf("status = %q, want available", result.Status)
	}
}

func TestCheckAvailability_EmptyResourceIsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CheckAvailability(context.Background(), "", "2026-03-01T09:00:00Z", "2026-03-01T10:00:00Z", "")
	if err == nil {
		t.Fatal("expected error for empty resource id")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
	}
}
