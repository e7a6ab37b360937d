package repository

import (
	"context"

	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// ClassGroupRepository exposes access to the class group collection.
type ClassGroupRepository interface {
	Add(ctx context.Context, class models.ClassGroup) (models.ClassGroup, error)
	List(ctx context.Context) ([]models.ClassGroup, error)
	FindByID(ctx context.Context, id int) (models.ClassGroup, error)
	// NextSequence returns the sequence number used to derive the next
	// class group code.
	NextSequence(ctx context.Context) (int, error)
}

type classGroupRepository struct {
	store *store.Store
}

// NewClassGroupRepository constructs the repository implementation.
func NewClassGroupRepository(s *store.Store) ClassGroupRepository {
	return &classGroupRepository{store: s}
}

func (r *classGroupRepository) Add(_ context.Context, class models.ClassGroup) (models.ClassGroup, error) {
	return r.store.AddClassGroup(class)
}

func (r *classGroupRepository) List(_ context.Context) ([]models.ClassGroup, error) {
	return r.store.ClassGroups(), nil
}

func (r *classGroupRepository) FindByID(_ context.Context, id int) (models.ClassGroup, error) {
	class, ok := r.store.ClassGroupByID(id)
	if !ok {
		return models.ClassGroup{}, store.ErrNotFound
	}
	return class, nil
}

func (r *classGroupRepository) NextSequence(_ context.Context) (int, error) {
	return r.store.NextClassSequence(), nil
}
