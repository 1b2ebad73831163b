package setup

import (
	"context"
	"fmt"
	"gallery-archive/app"
	"gallery-archive/backup"
	"gallery-archive/config"
	"gallery-archive/database"
	"gallery-archive/drive"
	"log/slog"
)

// InitDatabase opens the archive and brings its schema up to date
func InitDatabase(ctx context.Context, dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitBackup creates the Drive backup worker, or returns nil when backups are disabled
func InitBackup(ctx context.Context, cfg *config.Config, db *database.DB, logger *slog.Logger) (*backup.Worker, error) {
	if !cfg.BackupEnabled {
		logger.Info("drive backups disabled")
		return nil, nil
	}

	client, err := drive.NewClient(ctx, drive.Credentials{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RefreshToken: cfg.GoogleRefreshToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}

	store := drive.NewBackupStore(client, cfg.BackupFolder)
	worker := backup.NewWorker(db, store, backup.Options{
		Interval: cfg.BackupInterval,
		Keep:     cfg.BackupKeep,
		TempDir:  cfg.BackupTempDir,
	}, logger)

	logger.Info("drive backups configured", "folder", cfg.BackupFolder, "interval", cfg.BackupInterval)
	return worker, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, backupWorker *backup.Worker, logger *slog.Logger) *app.App {
	application := app.New(db, backupWorker, logger)
	logger.Info("application initialized with dependency injection")

	if backupWorker != nil {
		backupWorker.Start()
		logger.Info("backup worker started")
	}

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	// Stop backup worker
	if application.Backup != nil {
		application.Backup.Stop()
		logger.Info("backup worker stopped")
	}

	// Close database
	if application.DB != nil {
		if err := application.DB.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
