package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/models"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/rules"
)

// ErrRoomNotFound indicates the referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// RoomService manages the physical room inventory.
type RoomService interface {
	Create(ctx context.Context, payload dto.RoomCreateRequest) (dto.RoomResponse, error)
	List(ctx context.Context) ([]dto.RoomResponse, error)
	SuggestCapacity(floorArea float64) dto.CapacitySuggestionResponse
}

type roomService struct {
	repo      repository.RoomRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewRoomService constructs the room service.
func NewRoomService(repo repository.RoomRepository, validate *validator.Validate, logger zerolog.Logger) RoomService {
	return &roomService{
		repo:      repo,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "room_service").Logger(),
	}
}

func (s *roomService) Create(ctx context.Context, payload dto.RoomCreateRequest) (dto.RoomResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RoomResponse{}, err
	}

	// Capacity defaults to the derived suggestion; an explicit value is an
	// operator override. Either way it is persisted as a concrete integer.
	capacity := rules.RoomCapacity(payload.FloorArea)
	if payload.Capacity != nil {
		capacity = *payload.Capacity
	}

	room := models.Room{
		Name:           strings.TrimSpace(s.policy.Sanitize(payload.Name)),
		Number:         payload.Number,
		ClimateControl: payload.ClimateControl,
		FloorArea:      payload.FloorArea,
		Capacity:       capacity,
		AttachmentName: attachmentName(payload.AttachmentName),
	}

	room, err := s.repo.Add(ctx, room)
	if err != nil {
		return dto.RoomResponse{}, err
	}

	s.logger.Info().Int("room_id", room.ID).Str("name", room.Name).Int("capacity", room.Capacity).Msg("room registered")
	return dto.NewRoomResponse(room), nil
}

func (s *roomService) List(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRoomResponseSlice(rooms), nil
}

func (s *roomService) SuggestCapacity(floorArea float64) dto.CapacitySuggestionResponse {
	return dto.CapacitySuggestionResponse{
		FloorArea:         floorArea,
		SuggestedCapacity: rules.RoomCapacity(floorArea),
	}
}

// attachmentName keeps only the base name of an uploaded file. The content is
// never stored.
func attachmentName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return filepath.Base(trimmed)
}
