package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/rules"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// ErrStudentNotFound indicates the referenced student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentService manages student records and their per-student actions.
type StudentService interface {
	Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id int) (dto.StudentResponse, error)
	// GenerateRegistrationNumber assigns a fresh NRA to the student,
	// overwriting any previous value.
	GenerateRegistrationNumber(ctx context.Context, id int) (dto.RegistrationNumberResponse, error)
	// History returns the student's enrollment records in creation order.
	History(ctx context.Context, id int) ([]dto.EnrollmentResponse, error)
}

type studentService struct {
	repo        repository.StudentRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	policy      *bluemonday.Policy
	logger      zerolog.Logger
	now         func() time.Time
	rng         *rand.Rand
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, enrollments repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:        repo,
		enrollments: enrollments,
		validator:   validate,
		policy:      bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "student_service").Logger(),
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	birthDate, err := payload.BirthDateValue()
	if err != nil {
		return dto.StudentResponse{}, err
	}

	var rgIssueDate *time.Time
	if strings.TrimSpace(payload.RGIssueDate) != "" {
		parsed, err := time.Parse("2006-01-02", payload.RGIssueDate)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		rgIssueDate = &parsed
	}

	nationality := strings.TrimSpace(payload.Nationality)
	if nationality == "" {
		nationality = "Brasileira"
	}

	student := models.Student{
		FullName:          s.clean(payload.FullName),
		BirthDate:         birthDate,
		SocialName:        s.clean(payload.SocialName),
		AffectiveName:     s.clean(payload.AffectiveName),
		Sex:               strings.TrimSpace(payload.Sex),
		Race:              strings.TrimSpace(payload.Race),
		Nationality:       nationality,
		BirthMunicipality: s.clean(payload.BirthMunicipality),

		RA:           strings.TrimSpace(payload.RA),
		EducacensoID: strings.TrimSpace(payload.EducacensoID),
		RGNumber:     strings.TrimSpace(payload.RGNumber),
		RGDigit:      strings.TrimSpace(payload.RGDigit),
		RGIssueDate:  rgIssueDate,
		RGState:      strings.ToUpper(strings.TrimSpace(payload.RGState)),
		CertRecord:   strings.TrimSpace(payload.CertRecord),
		CertBook:     strings.TrimSpace(payload.CertBook),
		CertPage:     strings.TrimSpace(payload.CertPage),
		CertDistrict: s.clean(payload.CertDistrict),
		CertJudicial: s.clean(payload.CertJudicial),
		CPF:          strings.TrimSpace(payload.CPF),
		NIS:          strings.TrimSpace(payload.NIS),
		SUSCard:      strings.TrimSpace(payload.SUSCard),

		Filiation1:   s.clean(payload.Filiation1),
		Filiation2:   s.clean(payload.Filiation2),
		BolsaFamilia: payload.BolsaFamilia,
		Street:       s.clean(payload.Street),
		HouseNumber:  strings.TrimSpace(payload.HouseNumber),
		Neighborhood: s.clean(payload.Neighborhood),
		PostalCode:   strings.TrimSpace(payload.PostalCode),
		City:         s.clean(payload.City),
		Phones:       strings.TrimSpace(payload.Phones),
		Email:        strings.TrimSpace(payload.Email),

		HasDisability:      payload.HasDisability,
		DisabilityType:     s.clean(payload.DisabilityType),
		TGDTEA:             s.clean(payload.TGDTEA),
		SupportLevel:       strings.TrimSpace(payload.SupportLevel),
		HasMedicalReport:   payload.HasMedicalReport,
		NeedsSupportWorker: payload.NeedsSupportWorker,
		ReducedMobility:    payload.ReducedMobility,
	}

	student, err = s.repo.Add(ctx, student)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Int("student_id", student.ID).Str("name", student.FullName).Msg("student registered")
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, id int) (dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) GenerateRegistrationNumber(ctx context.Context, id int) (dto.RegistrationNumberResponse, error) {
	nra := rules.RegistrationNumber(s.now(), s.rng)

	student, err := s.repo.SetRegistrationNumber(ctx, id, nra)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.RegistrationNumberResponse{}, ErrStudentNotFound
		}
		return dto.RegistrationNumberResponse{}, err
	}

	s.logger.Info().Int("student_id", student.ID).Str("nra", nra).Msg("registration number generated")
	return dto.RegistrationNumberResponse{StudentID: student.ID, RegistrationNumber: nra}, nil
}

func (s *studentService) History(ctx context.Context, id int) ([]dto.EnrollmentResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollments, err := s.enrollments.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewEnrollmentResponseSlice(enrollments), nil
}

func (s *studentService) clean(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
