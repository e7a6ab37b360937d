package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sgde-edu/sgde-api/internal/config"
	"github.com/sgde-edu/sgde-api/internal/handler"
	"github.com/sgde-edu/sgde-api/internal/middleware"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/router"
	"github.com/sgde-edu/sgde-api/internal/service"
	"github.com/sgde-edu/sgde-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// The session store is the only data sink: everything lives in memory
	// for the lifetime of the process and is discarded on shutdown.
	sessionStore := store.New()

	validate := validator.New(validator.WithRequiredStructEnabled())

	schoolRepo := repository.NewSchoolRepository(sessionStore)
	roomRepo := repository.NewRoomRepository(sessionStore)
	studentRepo := repository.NewStudentRepository(sessionStore)
	classGroupRepo := repository.NewClassGroupRepository(sessionStore)
	enrollmentRepo := repository.NewEnrollmentRepository(sessionStore)

	schoolService := service.NewSchoolService(schoolRepo, validate, logger)
	roomService := service.NewRoomService(roomRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, enrollmentRepo, validate, logger)
	classGroupService := service.NewClassGroupService(classGroupRepo, roomRepo, validate, cfg.AcademicYearMin, cfg.AcademicYearMax, logger)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, studentRepo, classGroupRepo, validate, logger)

	schoolHandler := handler.NewSchoolHandler(schoolService, logger)
	roomHandler := handler.NewRoomHandler(roomService, logger)
	studentHandler := handler.NewStudentHandler(studentService, logger)
	classGroupHandler := handler.NewClassGroupHandler(classGroupService, logger)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSAllowOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		SchoolHandler:     schoolHandler,
		RoomHandler:       roomHandler,
		StudentHandler:    studentHandler,
		ClassGroupHandler: classGroupHandler,
		EnrollmentHandler: enrollmentHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
