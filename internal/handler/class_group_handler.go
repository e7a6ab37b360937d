package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/service"
	"github.com/sgde-edu/sgde-api/internal/utils"
)

// ClassGroupHandler handles cohort creation and listing.
type ClassGroupHandler struct {
	service service.ClassGroupService
	logger  zerolog.Logger
}

// NewClassGroupHandler constructs the handler.
func NewClassGroupHandler(service service.ClassGroupService, logger zerolog.Logger) *ClassGroupHandler {
	return &ClassGroupHandler{
		service: service,
		logger:  logger.With().Str("component", "class_group_handler").Logger(),
	}
}

// Register wires routes for class groups.
func (h *ClassGroupHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
}

// RegisterLevels wires the curriculum level listing used by the class form.
func (h *ClassGroupHandler) RegisterLevels(router fiber.Router) {
	router.Get("", h.levels)
}

func (h *ClassGroupHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassGroupCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrInvalidAcademicYear):
			return utils.SendError(c, fiber.StatusBadRequest, "academic year outside accepted range")
		case errors.Is(err, service.ErrUnknownLevel):
			return utils.SendError(c, fiber.StatusBadRequest, "unknown curriculum level code")
		case errors.Is(err, service.ErrRoomNotFound):
			return utils.SendError(c, fiber.StatusBadRequest, "Selecione uma Dependência Física.")
		case errors.Is(err, service.ErrClassCodeTaken):
			return utils.SendError(c, fiber.StatusConflict, "class group code already exists")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create class group")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create class group")
		}
	}

	return utils.SendCreated(c, "class group created", response)
}

func (h *ClassGroupHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list class groups")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list class groups")
	}

	return utils.SendSuccess(c, "class groups retrieved", response)
}

func (h *ClassGroupHandler) levels(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "levels retrieved", h.service.Levels())
}
