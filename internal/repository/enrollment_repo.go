package repository

import (
	"context"

	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// EnrollmentRepository exposes access to the enrollment collection. Create is
// the commit step of the enrollment workflow: the store applies the capacity
// gate, the duplicate check and the enrolled-count increment atomically.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
	List(ctx context.Context) ([]models.Enrollment, error)
	FindByID(ctx context.Context, id int) (models.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int) ([]models.Enrollment, error)
}

type enrollmentRepository struct {
	store *store.Store
}

// NewEnrollmentRepository constructs the repository implementation.
func NewEnrollmentRepository(s *store.Store) EnrollmentRepository {
	return &enrollmentRepository{store: s}
}

func (r *enrollmentRepository) Create(_ context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	return r.store.CreateEnrollment(enrollment)
}

func (r *enrollmentRepository) List(_ context.Context) ([]models.Enrollment, error) {
	return r.store.Enrollments(), nil
}

func (r *enrollmentRepository) FindByID(_ context.Context, id int) (models.Enrollment, error) {
	enrollment, ok := r.store.EnrollmentByID(id)
	if !ok {
		return models.Enrollment{}, store.ErrNotFound
	}
	return enrollment, nil
}

func (r *enrollmentRepository) ListByStudent(_ context.Context, studentID int) ([]models.Enrollment, error) {
	return r.store.EnrollmentsByStudent(studentID), nil
}
