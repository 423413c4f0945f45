package repository

import (
	"context"
	"fmt"
	"sync"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/store"
	"roomly/pkg/ident"
	"roomly/pkg/model"
)

type BookingRepository interface {
	List(ctx context.Context, resourceID string) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, bookings []model.Booking) error
}

type storeBookingRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewStoreBookingRepository(s store.Store) BookingRepository {
	return &storeBookingRepository{store: s}
}

// List returns bookings in storage order (newest first); pass a
// resourceID to narrow to a single room or asset. Callers impose the
// start-ascending display order themselves.
func (r *storeBookingRepository) List(ctx context.Context, resourceID string) ([]model.Booking, error) {
	bookings, err := store.LoadAll[model.Booking](ctx, r.store, store.Bookings)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if resourceID == "" {
		return bookings, nil
	}

	filtered := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ResourceID == resourceID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *storeBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	bookings, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (r *storeBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = ident.New(ident.BookingPrefix)
	}

	bookings, err := r.List(ctx, "")
	if err != nil {
		return err
	}

	bookings = append([]model.Booking{*booking}, bookings...)

	if err := store.SaveAll(ctx, r.store, store.Bookings, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

func (r *storeBookingRepository) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		updates.Apply(&bookings[i])
		if err := store.SaveAll(ctx, r.store, store.Bookings, bookings); err != nil {
			return nil, fmt.Errorf("failed to save bookings: %w", err)
		}
		updated := bookings[i]
		return &updated, nil
	}

	return nil, bookingserrors.ErrNotFound
}

func (r *storeBookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.List(ctx, "")
	if err != nil {
		return false, err
	}

	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		bookings = append(bookings[:i], bookings[i+1:]...)
		if err := store.SaveAll(ctx, r.store, store.Bookings, bookings); err != nil {
			return false, fmt.Errorf("failed to save bookings: %w", err)
		}
		return true, nil
	}

	return false, nil
}

func (r *storeBookingRepository) ReplaceAll(ctx context.Context, bookings []model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := store.SaveAll(ctx, r.store, store.Bookings, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}
