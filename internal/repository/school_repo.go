package repository

import (
	"context"

	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// SchoolRepository exposes access to the institutional singleton record.
type SchoolRepository interface {
	Save(ctx context.Context, info models.SchoolInfo) error
	Get(ctx context.Context) (models.SchoolInfo, error)
}

type schoolRepository struct {
	store *store.Store
}

// NewSchoolRepository constructs the repository implementation.
func NewSchoolRepository(s *store.Store) SchoolRepository {
	return &schoolRepository{store: s}
}

func (r *schoolRepository) Save(_ context.Context, info models.SchoolInfo) error {
	r.store.SaveSchool(info)
	return nil
}

func (r *schoolRepository) Get(_ context.Context) (models.SchoolInfo, error) {
	info, ok := r.store.School()
	if !ok {
		return models.SchoolInfo{}, store.ErrNotFound
	}
	return info, nil
}
