package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/service"
	"github.com/sgde-edu/sgde-api/internal/utils"
)

// RoomHandler handles the physical room endpoints.
type RoomHandler struct {
	service service.RoomService
	logger  zerolog.Logger
}

// NewRoomHandler constructs the handler.
func NewRoomHandler(service service.RoomService, logger zerolog.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger.With().Str("component", "room_handler").Logger(),
	}
}

// Register wires routes for rooms.
func (h *RoomHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/capacity-suggestion", h.suggestCapacity)
}

func (h *RoomHandler) create(c *fiber.Ctx) error {
	var payload dto.RoomCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// An attachment may arrive as a multipart file. Only its original
	// filename is recorded; the content is discarded unread.
	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		payload.AttachmentName = file.Filename
	}

	response, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "Preencha o nome e a metragem corretamente.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to register room")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to register room")
	}

	return utils.SendCreated(c, "room registered", response)
}

func (h *RoomHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list rooms")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list rooms")
	}

	return utils.SendSuccess(c, "rooms retrieved", response)
}

func (h *RoomHandler) suggestCapacity(c *fiber.Ctx) error {
	floorArea, err := parseQueryFloat(c, "floorArea")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid floor area")
	}

	return utils.SendSuccess(c, "capacity suggestion computed", h.service.SuggestCapacity(floorArea))
}
