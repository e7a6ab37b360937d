package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/observability"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/rules"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// ErrClassGroupNotFound indicates the referenced class group does not exist.
var ErrClassGroupNotFound = errors.New("class group not found")

// ErrClassGroupFull indicates the class group is at maximum capacity.
var ErrClassGroupFull = errors.New("class group at maximum capacity")

// ErrDuplicateEnrollment indicates the student already holds an enrollment
// in the class group.
var ErrDuplicateEnrollment = errors.New("student already enrolled in this class group")

// EligibilityError reports an age-eligibility rejection. Reason carries the
// operator-facing message produced by the rule, surfaced verbatim.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string { return e.Reason }

// EnrollmentService runs the enrollment workflow ("enturmação"), the one
// multi-step transaction of the system.
type EnrollmentService interface {
	Enroll(ctx context.Context, payload dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error)
	List(ctx context.Context) ([]dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	repo      repository.EnrollmentRepository
	students  repository.StudentRepository
	classes   repository.ClassGroupRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo repository.EnrollmentRepository, students repository.StudentRepository, classes repository.ClassGroupRepository, validate *validator.Validate, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		students:  students,
		classes:   classes,
		validator: validate,
		logger:    logger.With().Str("component", "enrollment_service").Logger(),
		now:       time.Now,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, payload dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EnrollmentResponse{}, err
	}

	student, err := s.students.FindByID(ctx, payload.StudentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.EnrollmentResponse{}, ErrStudentNotFound
		}
		return dto.EnrollmentResponse{}, err
	}

	class, err := s.classes.FindByID(ctx, payload.ClassGroupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.EnrollmentResponse{}, ErrClassGroupNotFound
		}
		return dto.EnrollmentResponse{}, err
	}

	eligible, reason := rules.CheckAgeEligibility(student.BirthDate, class.LevelLabel, s.now())
	if !eligible {
		observability.EnrollmentDecisions().WithLabelValues("ineligible").Inc()
		s.logger.Warn().
			Int("student_id", student.ID).
			Str("class_code", class.Code).
			Str("reason", reason).
			Msg("enrollment blocked by age rule")
		return dto.EnrollmentResponse{}, &EligibilityError{Reason: reason}
	}

	// Capacity is rechecked inside the store at commit time; this early
	// check only short-circuits the obvious case.
	if class.EnrolledCount >= class.MaxCapacity {
		observability.EnrollmentDecisions().WithLabelValues("full").Inc()
		return dto.EnrollmentResponse{}, ErrClassGroupFull
	}

	enrollment := models.Enrollment{
		StudentID:    student.ID,
		ClassGroupID: class.ID,
		EnrolledAt:   s.now(),
		Status:       models.EnrollmentStatusInProgress,
	}

	enrollment, err = s.repo.Create(ctx, enrollment)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrClassGroupFull):
			observability.EnrollmentDecisions().WithLabelValues("full").Inc()
			return dto.EnrollmentResponse{}, ErrClassGroupFull
		case errors.Is(err, store.ErrDuplicateEnrollment):
			observability.EnrollmentDecisions().WithLabelValues("duplicate").Inc()
			return dto.EnrollmentResponse{}, ErrDuplicateEnrollment
		case errors.Is(err, store.ErrNotFound):
			return dto.EnrollmentResponse{}, ErrClassGroupNotFound
		default:
			return dto.EnrollmentResponse{}, err
		}
	}

	observability.EnrollmentDecisions().WithLabelValues("accepted").Inc()
	s.logger.Info().
		Int("enrollment_id", enrollment.ID).
		Int("student_id", student.ID).
		Str("class_code", enrollment.ClassCode).
		Msg("enrollment committed")
	return dto.NewEnrollmentResponse(enrollment), nil
}

func (s *enrollmentService) List(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewEnrollmentResponseSlice(enrollments), nil
}
