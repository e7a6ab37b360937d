package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sgde-edu/sgde-api/internal/config"
	"github.com/sgde-edu/sgde-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}

// TransportPlaceholder reports that the school-transport module is not yet
// available. The menu entry exists; the subsystem is on stand-by.
func TransportPlaceholder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusNotImplemented, "Módulo em construção. Funcionalidade em Stand-by.")
	}
}
