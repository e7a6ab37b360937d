package repository

import (
	"context"

	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// RoomRepository exposes access to the physical room collection.
type RoomRepository interface {
	Add(ctx context.Context, room models.Room) (models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id int) (models.Room, error)
}

type roomRepository struct {
	store *store.Store
}

// NewRoomRepository constructs the repository implementation.
func NewRoomRepository(s *store.Store) RoomRepository {
	return &roomRepository{store: s}
}

func (r *roomRepository) Add(_ context.Context, room models.Room) (models.Room, error) {
	return r.store.AddRoom(room), nil
}

func (r *roomRepository) List(_ context.Context) ([]models.Room, error) {
	return r.store.Rooms(), nil
}

func (r *roomRepository) FindByID(_ context.Context, id int) (models.Room, error) {
	room, ok := r.store.RoomByID(id)
	if !ok {
		return models.Room{}, store.ErrNotFound
	}
	return room, nil
}
