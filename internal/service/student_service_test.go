package service

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/store"
)

func newStudentFixture(t *testing.T) (*store.Store, *studentService) {
	t.Helper()

	s := store.New()
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewStudentService(
		repository.NewStudentRepository(s),
		repository.NewEnrollmentRepository(s),
		validate,
		zerolog.Nop(),
	).(*studentService)
	svc.now = func() time.Time {
		return time.Date(2025, 2, 10, 10, 1, 0, 0, time.UTC)
	}
	svc.rng = rand.New(rand.NewSource(7))

	return s, svc
}

func TestStudentCreateMinimalRecord(t *testing.T) {
	s, svc := newStudentFixture(t)

	resp, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		FullName:  "Ana Souza",
		BirthDate: "2016-01-01",
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.ID)
	require.Equal(t, "Ana Souza", resp.FullName)
	require.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), resp.BirthDate)
	require.Empty(t, resp.RegistrationNumber)

	stored, ok := s.StudentByID(resp.ID)
	require.True(t, ok)
	require.Equal(t, "Brasileira", stored.Nationality)
}

func TestStudentCreateFullRecord(t *testing.T) {
	s, svc := newStudentFixture(t)

	resp, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		FullName:       "Bruno Lima",
		BirthDate:      "2015-06-20",
		Sex:            "Masculino",
		Race:           "Parda",
		RA:             "RA-0099",
		RGIssueDate:    "2020-01-15",
		RGState:        "sp",
		Filiation1:     "José Lima",
		Email:          "familia.lima@example.com",
		HasDisability:  true,
		DisabilityType: "Auditiva",
		SupportLevel:   "Nível 1",
	})
	require.NoError(t, err)

	stored, ok := s.StudentByID(resp.ID)
	require.True(t, ok)
	require.Equal(t, "SP", stored.RGState)
	require.NotNil(t, stored.RGIssueDate)
	require.Equal(t, 2020, stored.RGIssueDate.Year())
	require.True(t, stored.HasDisability)
}

func TestStudentCreateRequiresNameAndBirthDate(t *testing.T) {
	_, svc := newStudentFixture(t)

	var validationErrors validator.ValidationErrors

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{BirthDate: "2016-01-01"})
	require.ErrorAs(t, err, &validationErrors)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{FullName: "Sem Data"})
	require.ErrorAs(t, err, &validationErrors)

	_, err = svc.Create(context.Background(), dto.StudentCreateRequest{FullName: "Data Ruim", BirthDate: "01/01/2016"})
	require.ErrorAs(t, err, &validationErrors)
}

func TestStudentGenerateRegistrationNumber(t *testing.T) {
	s, svc := newStudentFixture(t)
	student := s.AddStudent(models.Student{FullName: "Carla"})

	resp, err := svc.GenerateRegistrationNumber(context.Background(), student.ID)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^NRA\d{14}$`), resp.RegistrationNumber)
	require.Equal(t, "NRA202502101001", resp.RegistrationNumber[:15])

	// Regenerating overwrites the previous value.
	second, err := svc.GenerateRegistrationNumber(context.Background(), student.ID)
	require.NoError(t, err)

	stored, _ := s.StudentByID(student.ID)
	require.Equal(t, second.RegistrationNumber, stored.RegistrationNumber)
}

func TestStudentGenerateRegistrationNumberUnknownStudent(t *testing.T) {
	_, svc := newStudentFixture(t)

	_, err := svc.GenerateRegistrationNumber(context.Background(), 42)
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentHistory(t *testing.T) {
	s, svc := newStudentFixture(t)
	student := s.AddStudent(models.Student{FullName: "Diego"})
	class, err := s.AddClassGroup(models.ClassGroup{Code: "025.201.001", AcademicYear: 2025, MaxCapacity: 5})
	require.NoError(t, err)

	_, err = s.CreateEnrollment(models.Enrollment{
		StudentID:    student.ID,
		ClassGroupID: class.ID,
		Status:       models.EnrollmentStatusInProgress,
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "025.201.001", history[0].ClassCode)
	require.Equal(t, models.EnrollmentStatusInProgress, history[0].Status)
}

func TestStudentHistoryUnknownStudent(t *testing.T) {
	_, svc := newStudentFixture(t)

	_, err := svc.History(context.Background(), 42)
	require.ErrorIs(t, err, ErrStudentNotFound)
}
