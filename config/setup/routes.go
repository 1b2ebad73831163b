package setup

import (
	"gallery-archive/app"
	"gallery-archive/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/", handlers.GalleryPage(application))
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")

	// Browsing
	api.Get("/gallery", handlers.GetGallery(application))
	api.Get("/submissions/:id", handlers.GetSubmission(application))
	api.Get("/usernames", handlers.GetUsernames(application))

	// Accounts and favorites
	api.Get("/accounts", handlers.GetAccounts(application))
	api.Post("/accounts", handlers.AddAccount(application))
	api.Get("/favorites/:username", handlers.GetFavorites(application))
	api.Post("/favorites", handlers.SaveFavorites(application))

	// Settings and maintenance
	api.Get("/settings", handlers.GetSettings(application))
	api.Put("/settings", handlers.UpdateSettings(application))
	api.Get("/schema", handlers.GetSchema(application))
	api.Get("/backup/status", handlers.GetBackupStatus(application))
}
