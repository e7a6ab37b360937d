package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/handler"
	"github.com/sgde-edu/sgde-api/internal/service"
)

type mockRoomService struct {
	lastPayload dto.RoomCreateRequest
	response    dto.RoomResponse
	list        []dto.RoomResponse
	err         error
}

func (m *mockRoomService) Create(_ context.Context, payload dto.RoomCreateRequest) (dto.RoomResponse, error) {
	m.lastPayload = payload
	if m.err != nil {
		return dto.RoomResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockRoomService) List(_ context.Context) ([]dto.RoomResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockRoomService) SuggestCapacity(floorArea float64) dto.CapacitySuggestionResponse {
	return dto.CapacitySuggestionResponse{FloorArea: floorArea, SuggestedCapacity: 20}
}

func newRoomApp(svc service.RoomService) *fiber.App {
	app := fiber.New()
	handler.NewRoomHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/rooms"))
	return app
}

func TestRoomHandler_Create(t *testing.T) {
	svc := &mockRoomService{response: dto.RoomResponse{ID: 1, Name: "Sala 01", FloorArea: 24, Capacity: 20}}
	app := newRoomApp(svc)

	resp := postJSON(t, app, "/api/v1/rooms", dto.RoomCreateRequest{Name: "Sala 01", FloorArea: 24})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool             `json:"success"`
		Data    dto.RoomResponse `json:"data"`
	}
	decodeBody(t, resp, &payload)

	require.True(t, payload.Success)
	require.Equal(t, 20, payload.Data.Capacity)
	require.Equal(t, "Sala 01", svc.lastPayload.Name)
}

func TestRoomHandler_CreateValidationMessage(t *testing.T) {
	// The handler maps validator failures to the fixed form message; a real
	// validator error stands in for the service rejecting the payload.
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(dto.RoomCreateRequest{})
	require.Error(t, err)

	app := newRoomApp(&mockRoomService{err: err})

	resp := postJSON(t, app, "/api/v1/rooms", dto.RoomCreateRequest{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &payload)

	require.False(t, payload.Success)
	require.Equal(t, "Preencha o nome e a metragem corretamente.", payload.Message)
}

func TestRoomHandler_SuggestCapacity(t *testing.T) {
	app := newRoomApp(&mockRoomService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/capacity-suggestion?floorArea=24.5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data dto.CapacitySuggestionResponse `json:"data"`
	}
	decodeBody(t, resp, &payload)
	require.Equal(t, 24.5, payload.Data.FloorArea)
	require.Equal(t, 20, payload.Data.SuggestedCapacity)
}

func TestRoomHandler_SuggestCapacityInvalidQuery(t *testing.T) {
	app := newRoomApp(&mockRoomService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/capacity-suggestion?floorArea=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRoomHandler_List(t *testing.T) {
	svc := &mockRoomService{list: []dto.RoomResponse{{ID: 1}, {ID: 2}, {ID: 3}}}
	app := newRoomApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data []dto.RoomResponse `json:"data"`
	}
	decodeBody(t, resp, &payload)
	require.Len(t, payload.Data, 3)
}
