package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/service"
	"github.com/sgde-edu/sgde-api/internal/utils"
)

// SchoolHandler handles the institutional record endpoints.
type SchoolHandler struct {
	service service.SchoolService
	logger  zerolog.Logger
}

// NewSchoolHandler constructs the handler.
func NewSchoolHandler(service service.SchoolService, logger zerolog.Logger) *SchoolHandler {
	return &SchoolHandler{
		service: service,
		logger:  logger.With().Str("component", "school_handler").Logger(),
	}
}

// Register wires routes for the institutional record.
func (h *SchoolHandler) Register(router fiber.Router) {
	router.Get("", h.get)
	router.Put("", h.save)
}

func (h *SchoolHandler) save(c *fiber.Ctx) error {
	var payload dto.SchoolSaveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Save(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrSchoolInvalidCNPJ):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to save institutional record")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to save institutional record")
		}
	}

	return utils.SendSuccess(c, "Dados institucionais salvos com sucesso!", response)
}

func (h *SchoolHandler) get(c *fiber.Ctx) error {
	response, err := h.service.Get(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotRegistered) {
			return utils.SendError(c, fiber.StatusNotFound, "school record not registered")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load institutional record")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load institutional record")
	}

	return utils.SendSuccess(c, "school record retrieved", response)
}
