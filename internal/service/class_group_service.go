package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/rules"
	"github.com/sgde-edu/sgde-api/internal/store"
)

// ErrUnknownLevel indicates the level code is not in the curriculum table.
var ErrUnknownLevel = errors.New("unknown curriculum level code")

// ErrInvalidAcademicYear indicates the academic year is outside the accepted range.
var ErrInvalidAcademicYear = errors.New("academic year outside accepted range")

// ErrClassCodeTaken indicates a class group with the generated code already exists.
var ErrClassCodeTaken = errors.New("class group code already exists")

// ClassGroupService manages cohort creation and listing.
type ClassGroupService interface {
	Create(ctx context.Context, payload dto.ClassGroupCreateRequest) (dto.ClassGroupResponse, error)
	List(ctx context.Context) ([]dto.ClassGroupResponse, error)
	Levels() []dto.LevelResponse
}

type classGroupService struct {
	repo      repository.ClassGroupRepository
	rooms     repository.RoomRepository
	validator *validator.Validate
	yearMin   int
	yearMax   int
	logger    zerolog.Logger
}

// NewClassGroupService constructs the class group service. yearMin and
// yearMax bound the accepted academic years; zero values fall back to the
// registration form defaults.
func NewClassGroupService(repo repository.ClassGroupRepository, rooms repository.RoomRepository, validate *validator.Validate, yearMin, yearMax int, logger zerolog.Logger) ClassGroupService {
	if yearMin <= 0 {
		yearMin = 2024
	}
	if yearMax <= 0 {
		yearMax = 2030
	}
	return &classGroupService{
		repo:      repo,
		rooms:     rooms,
		validator: validate,
		yearMin:   yearMin,
		yearMax:   yearMax,
		logger:    logger.With().Str("component", "class_group_service").Logger(),
	}
}

func (s *classGroupService) Create(ctx context.Context, payload dto.ClassGroupCreateRequest) (dto.ClassGroupResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassGroupResponse{}, err
	}

	if payload.AcademicYear < s.yearMin || payload.AcademicYear > s.yearMax {
		return dto.ClassGroupResponse{}, ErrInvalidAcademicYear
	}

	level, ok := models.LevelByCode(payload.LevelCode)
	if !ok {
		return dto.ClassGroupResponse{}, ErrUnknownLevel
	}

	room, err := s.rooms.FindByID(ctx, payload.RoomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dto.ClassGroupResponse{}, ErrRoomNotFound
		}
		return dto.ClassGroupResponse{}, err
	}

	sequence, err := s.repo.NextSequence(ctx)
	if err != nil {
		return dto.ClassGroupResponse{}, err
	}

	class := models.ClassGroup{
		Code:         rules.ClassCode(payload.AcademicYear, level.Code, sequence),
		AcademicYear: payload.AcademicYear,
		LevelCode:    level.Code,
		LevelLabel:   level.Label,
		Shift:        payload.Shift,
		RoomID:       room.ID,
		// Snapshot, not a live reference: later room edits would not
		// retroactively change the class limit.
		MaxCapacity: room.Capacity,
	}

	class, err = s.repo.Add(ctx, class)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateClassCode) {
			return dto.ClassGroupResponse{}, ErrClassCodeTaken
		}
		return dto.ClassGroupResponse{}, err
	}

	s.logger.Info().
		Int("class_group_id", class.ID).
		Str("code", class.Code).
		Int("max_capacity", class.MaxCapacity).
		Msg("class group created")
	return dto.NewClassGroupResponse(class), nil
}

func (s *classGroupService) List(ctx context.Context) ([]dto.ClassGroupResponse, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewClassGroupResponseSlice(classes), nil
}

func (s *classGroupService) Levels() []dto.LevelResponse {
	return dto.NewLevelResponseSlice(models.Levels())
}
