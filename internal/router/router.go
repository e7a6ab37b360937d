package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sgde-edu/sgde-api/internal/config"
	"github.com/sgde-edu/sgde-api/internal/handler"
	"github.com/sgde-edu/sgde-api/internal/middleware"
	"github.com/sgde-edu/sgde-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SchoolHandler     *handler.SchoolHandler
	RoomHandler       *handler.RoomHandler
	StudentHandler    *handler.StudentHandler
	ClassGroupHandler *handler.ClassGroupHandler
	EnrollmentHandler *handler.EnrollmentHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())
	api.Get("/transport", handler.TransportPlaceholder())

	// Form submissions are rate limited per client; screens are read freely.
	submitLimit := middleware.RateLimit("submit", 60, time.Minute)

	if deps.SchoolHandler != nil {
		school := api.Group("/school", submitLimit)
		deps.SchoolHandler.Register(school)
	}

	if deps.RoomHandler != nil {
		rooms := api.Group("/rooms", submitLimit)
		deps.RoomHandler.Register(rooms)
	}

	if deps.StudentHandler != nil {
		students := api.Group("/students", submitLimit)
		deps.StudentHandler.Register(students)
	}

	if deps.ClassGroupHandler != nil {
		classes := api.Group("/classes", submitLimit)
		deps.ClassGroupHandler.Register(classes)

		levels := api.Group("/levels")
		deps.ClassGroupHandler.RegisterLevels(levels)
	}

	if deps.EnrollmentHandler != nil {
		enrollments := api.Group("/enrollments", submitLimit)
		deps.EnrollmentHandler.Register(enrollments)
	}
}
