package service

import (
	"context"
	"reflect"
	"testing"

	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/validator"
	"roomly/internal/store"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestService(t *testing.T) RoomService {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	log := logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
	repo := repository.NewStoreRoomRepository(fileStore)
	return NewRoomService(repo, validator.NewRoomValidator(log), log)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreate_ThenGetByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{Name: "Room 101", Location: "North wing", Capacity: 30, Features: []string{"projector"}}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.ID == "" {
		t.Fatal("Create must assign an id")
	}

	got, err := svc.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(got, room) {
		t.Errorf("GetByID = %+v, want %+v", got, room)
	}
}

func TestCreate_MinimalAppliesDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if room.Name != DefaultRoomName {
		t.Errorf("expected placeholder name, got %q", room.Name)
	}
	if room.Capacity != 0 {
		t.Errorf("expected capacity 0, got %d", room.Capacity)
	}
	if room.Features == nil || len(room.Features) != 0 {
		t.Errorf("expected empty feature set, got %v", room.Features)
	}
}

func TestUpdate_PartialMergeKeepsOtherFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{Name: "X", Capacity: 0}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, room.ID, &model.RoomUpdate{Capacity: intPtr(5)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Capacity != 5 {
		t.Errorf("capacity = %d, want 5", updated.Capacity)
	}
	if updated.Name != "X" {
		t.Errorf("name = %q, want unchanged %q", updated.Name, "X")
	}
}

func TestUpdate_EmptyPartialIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{Name: "Room 7", Location: "Annex", Capacity: 12, Features: []string{"wifi"}}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, room.ID, &model.RoomUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !reflect.DeepEqual(updated, room) {
		t.Errorf("empty partial changed the record: %+v vs %+v", updated, room)
	}
}

func TestUpdate_MissingIDIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), "r-missing1", &model.RoomUpdate{Name: strPtr("Y")})
	if err == nil {
		t.Fatal("expected error for missing id")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestDelete_NonexistentReturnsFalseAndKeepsCollection(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		if err := svc.Create(ctx, &model.Room{Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	removed, err := svc.Delete(ctx, "r-nope0000")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Error("expected removed=false for nonexistent id")
	}

	rooms, err := svc.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rooms) != 2 {
		t.Errorf("collection length changed: got %d, want 2", len(rooms))
	}
}

func TestDelete_ExistingReturnsTrue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{Name: "To remove"}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := svc.Delete(ctx, room.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}

	if _, err := svc.GetByID(ctx, room.ID); err == nil {
		t.Error("deleted room should not be retrievable")
	}
}

func TestList_QueryAndFeatureFilterCompose(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedRooms := []model.Room{
		{Name: "Studio B", Features: []string{"wifi", "projector"}},
		{Name: "Studio A", Features: []string{"wifi"}},
		{Name: "Kitchen", Features: []string{"wifi", "projector"}},
	}
	for i := range seedRooms {
		if err := svc.Create(ctx, &seedRooms[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rooms, err := svc.List(ctx, ListFilter{Query: "studio", Features: []string{"wifi", "projector"}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Studio B" {
		t.Errorf("expected only Studio B, got %+v", rooms)
	}
}

func TestList_SortedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		if err := svc.Create(ctx, &model.Room{Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rooms, err := svc.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Alpha", "Bravo", "Charlie"}
	for i, name := range want {
		if rooms[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, rooms[i].Name, name)
		}
	}
}

func TestMassUpdate_SinglePassAppliesAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := &model.Room{Name: "First", Capacity: 10}
	second := &model.Room{Name: "Second", Capacity: 20}
	for _, r := range []*model.Room{first, second} {
		if err := svc.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	applied, err := svc.MassUpdate(ctx, map[string]*model.RoomUpdate{
		first.ID:     {Capacity: intPtr(15)},
		second.ID:    {Name: strPtr("Second renamed")},
		"r-missing1": {Capacity: intPtr(99)},
	})
	if err != nil {
		t.Fatalf("MassUpdate: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2 (missing ids are skipped)", applied)
	}

	got, err := svc.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Capacity != 15 || got.Name != "First" {
		t.Errorf("first room after mass update: %+v", got)
	}
}

func TestCreate_NormalizesFeatures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	room := &model.Room{Name: "Lab", Features: []string{"Projector", "projector", "Sound System"}}
	if err := svc.Create(ctx, room); err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := []string{"projector", "sound_system"}
	if !reflect.DeepEqual(room.Features, want) {
		t.Errorf("features = %v, want %v", room.Features, want)
	}
}
