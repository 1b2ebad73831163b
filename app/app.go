package app

import (
	"gallery-archive/backup"
	"gallery-archive/database"
	"gallery-archive/services"
	"gallery-archive/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB        *database.DB
	Repo      *database.Repository
	Gallery   *services.GalleryService
	Library   *services.LibraryService
	Settings  *services.SettingsService
	Backup    *backup.Worker // nil when backups are disabled
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, backupWorker *backup.Worker, logger *slog.Logger) *App {
	repo := database.NewRepository(db)

	return &App{
		DB:        db,
		Repo:      repo,
		Gallery:   services.NewGalleryService(repo),
		Library:   services.NewLibraryService(repo),
		Settings:  services.NewSettingsService(repo),
		Backup:    backupWorker,
		Validator: validator.New(),
		Logger:    logger,
	}
}
