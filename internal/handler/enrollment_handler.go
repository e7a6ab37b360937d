package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/service"
	"github.com/sgde-edu/sgde-api/internal/utils"
)

// EnrollmentHandler handles the enrollment workflow endpoints.
type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  zerolog.Logger
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(service service.EnrollmentService, logger zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		logger:  logger.With().Str("component", "enrollment_handler").Logger(),
	}
}

// Register wires routes for enrollments.
func (h *EnrollmentHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
}

func (h *EnrollmentHandler) create(c *fiber.Ctx) error {
	var payload dto.EnrollmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Enroll(c.Context(), payload)
	if err != nil {
		var eligibility *service.EligibilityError
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.As(err, &eligibility):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, eligibility.Reason)
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrClassGroupNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "class group not found")
		case errors.Is(err, service.ErrClassGroupFull):
			return utils.SendError(c, fiber.StatusConflict, "Esta turma atingiu a capacidade máxima física.")
		case errors.Is(err, service.ErrDuplicateEnrollment):
			return utils.SendError(c, fiber.StatusConflict, "student already enrolled in this class group")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create enrollment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create enrollment")
		}
	}

	return utils.SendCreated(c, "Matrícula realizada com sucesso!", response)
}

func (h *EnrollmentHandler) list(c *fiber.Ctx) error {
	response, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list enrollments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list enrollments")
	}

	return utils.SendSuccess(c, "enrollments retrieved", response)
}
