package repository

import (
	"context"

	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// StudentRepository exposes access to the student collection.
type StudentRepository interface {
	Add(ctx context.Context, student models.Student) (models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int) (models.Student, error)
	SetRegistrationNumber(ctx context.Context, id int, nra string) (models.Student, error)
}

type studentRepository struct {
	store *store.Store
}

// NewStudentRepository constructs the repository implementation.
func NewStudentRepository(s *store.Store) StudentRepository {
	return &studentRepository{store: s}
}

func (r *studentRepository) Add(_ context.Context, student models.Student) (models.Student, error) {
	return r.store.AddStudent(student), nil
}

func (r *studentRepository) List(_ context.Context) ([]models.Student, error) {
	return r.store.Students(), nil
}

func (r *studentRepository) FindByID(_ context.Context, id int) (models.Student, error) {
	student, ok := r.store.StudentByID(id)
	if !ok {
		return models.Student{}, store.ErrNotFound
	}
	return student, nil
}

func (r *studentRepository) SetRegistrationNumber(_ context.Context, id int, nra string) (models.Student, error) {
	return r.store.SetRegistrationNumber(id, nra)
}
