package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/rules"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// ErrSchoolInvalidCNPJ indicates the institutional tax id failed the format check.
var ErrSchoolInvalidCNPJ = errors.New("CNPJ Inválido.")

// ErrSchoolNotRegistered indicates no institutional record has been saved yet.
var ErrSchoolNotRegistered = errors.New("school record not registered")

// SchoolService manages the institutional singleton.
type SchoolService interface {
	Save(ctx context.Context, payload dto.SchoolSaveRequest) (dto.SchoolResponse, error)
	Get(ctx context.Context) (dto.SchoolResponse, error)
}

type schoolService struct {
	repo      repository.SchoolRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewSchoolService constructs the school service.
func NewSchoolService(repo repository.SchoolRepository, validate *validator.Validate, logger zerolog.Logger) SchoolService {
	return &schoolService{
		repo:      repo,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "school_service").Logger(),
	}
}

func (s *schoolService) Save(ctx context.Context, payload dto.SchoolSaveRequest) (dto.SchoolResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SchoolResponse{}, err
	}

	cnpj := strings.TrimSpace(payload.CNPJ)
	if cnpj != "" && !rules.ValidateCNPJ(cnpj) {
		return dto.SchoolResponse{}, ErrSchoolInvalidCNPJ
	}

	info := models.SchoolInfo{
		Manager:   s.clean(payload.Manager),
		Name:      s.clean(payload.Name),
		LegalName: s.clean(payload.LegalName),
		CNPJ:      cnpj,
		Address:   s.clean(payload.Address),
		Region:    strings.TrimSpace(payload.Region),
		INEPCode:  payload.INEPCode,
	}

	if err := s.repo.Save(ctx, info); err != nil {
		return dto.SchoolResponse{}, err
	}

	s.logger.Info().Str("school", info.Name).Msg("institutional record saved")
	return dto.NewSchoolResponse(info), nil
}

func (s *schoolService) Get(ctx context.Context) (dto.SchoolResponse, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.SchoolResponse{}, ErrSchoolNotRegistered
		}
		return dto.SchoolResponse{}, err
	}
	return dto.NewSchoolResponse(info), nil
}

func (s *schoolService) clean(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
