package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/alhafizh-api/internal/config"
	"github.com/noah-isme/alhafizh-api/internal/handler"
	"github.com/noah-isme/alhafizh-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ClassHandler        *handler.ClassHandler
	StudentHandler      *handler.StudentHandler
	AssessmentHandler   *handler.AssessmentHandler
	ConfirmationHandler *handler.ConfirmationHandler
	ProgressHandler     *handler.ProgressHandler
	DataHandler         *handler.DataHandler
	ChapterHandler      *handler.ChapterHandler
	QuizHandler         *handler.QuizHandler
	NotificationHandler *handler.NotificationHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Roster
	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(api.Group("/classes"))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.Register(api.Group("/assessments"))
	}
	if deps.ConfirmationHandler != nil {
		deps.ConfirmationHandler.Register(api.Group("/confirmations"))
	}

	// Progress
	if deps.ProgressHandler != nil {
		api.Get("/dashboard", deps.ProgressHandler.Dashboard)
		deps.ProgressHandler.Register(api.Group("/progress"))
	}

	// Import / export
	if deps.DataHandler != nil {
		deps.DataHandler.Register(api.Group("/data"))
	}

	// Chapter content
	if deps.ChapterHandler != nil {
		deps.ChapterHandler.Register(api.Group("/chapters"))
	}
	if deps.QuizHandler != nil {
		deps.QuizHandler.Register(api.Group("/quiz"))
	}

	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(api.Group("/notifications"))
	}
}
