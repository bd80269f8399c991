package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Notices    *handlers.NoticesHandler
	Users      *handlers.UsersHandler
	Categories *handlers.CategoriesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	notices := app.Group("/notices")
	notices.Get("/", cfg.Notices.List)
	notices.Post("/", cfg.Notices.Create)
	notices.Get("/:id/attachment", cfg.Notices.Attachment)

	users := app.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Register)
	users.Get("/pending", cfg.Users.Pending)
	users.Post("/approve", cfg.Users.Approve)
	users.Post("/reject", cfg.Users.Reject)

	categories := app.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Post("/", cfg.Categories.Add)
}
