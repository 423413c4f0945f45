package repository

import (
	"context"
	"fmt"
	"sync"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/store"
	"roomly/pkg/ident"
	"roomly/pkg/model"
)

type RoomRepository interface {
	List(ctx context.Context) ([]model.Room, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error)
	Delete(ctx context.Context, id string) (bool, error)
	MassUpdate(ctx context.Context, updates map[string]*model.RoomUpdate) (int, error)
	ReplaceAll(ctx context.Context, rooms []model.Room) error
}

// storeRoomRepository keeps the whole room collection in the key-value
// store. Every mutation is one load-transform-save cycle; mu serializes
// writers so interleaved cycles cannot drop each other's changes.
type storeRoomRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewStoreRoomRepository(s store.Store) RoomRepository {
	return &storeRoomRepository{store: s}
}

func (r *storeRoomRepository) List(ctx context.Context) ([]model.Room, error) {
	rooms, err := store.LoadAll[model.Room](ctx, r.store, store.Rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	return rooms, nil
}

func (r *storeRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	rooms, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, roomserrors.ErrNotFound
}

func (r *storeRoomRepository) Create(ctx context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if room.ID == "" {
		room.ID = ident.New(ident.RoomPrefix)
	}

	rooms, err := r.List(ctx)
	if err != nil {
		return err
	}

	// Newest first at the storage level; display order is imposed by sort.
	rooms = append([]model.Room{*room}, rooms...)

	if err := store.SaveAll(ctx, r.store, store.Rooms, rooms); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}
	return nil
}

func (r *storeRoomRepository) Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		if rooms[i].ID != id {
			continue
		}
		updates.Apply(&rooms[i])
		if err := store.SaveAll(ctx, r.store, store.Rooms, rooms); err != nil {
			return nil, fmt.Errorf("failed to save rooms: %w", err)
		}
		updated := rooms[i]
		return &updated, nil
	}

	return nil, roomserrors.ErrNotFound
}

func (r *storeRoomRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range rooms {
		if rooms[i].ID != id {
			continue
		}
		rooms = append(rooms[:i], rooms[i+1:]...)
		if err := store.SaveAll(ctx, r.store, store.Rooms, rooms); err != nil {
			return false, fmt.Errorf("failed to save rooms: %w", err)
		}
		return true, nil
	}

	// Absence is a normal outcome here, not an error.
	return false, nil
}

func (r *storeRoomRepository) MassUpdate(ctx context.Context, updates map[string]*model.RoomUpdate) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for i := range rooms {
		if u, ok := updates[rooms[i].ID]; ok && u != nil {
			u.Apply(&rooms[i])
			applied++
		}
	}

	if applied == 0 {
		return 0, nil
	}
	if err := store.SaveAll(ctx, r.store, store.Rooms, rooms); err != nil {
		return 0, fmt.Errorf("failed to save rooms: %w", err)
	}
	return applied, nil
}

func (r *storeRoomRepository) ReplaceAll(ctx context.Context, rooms []model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := store.SaveAll(ctx, r.store, store.Rooms, rooms); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}
	return nil
}
