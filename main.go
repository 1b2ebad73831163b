package main

import (
	"context"
	"gallery-archive/config"
	"gallery-archive/config/setup"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize SQLite database
	db, err := setup.InitDatabase(ctx, config.AppConfig.DBPath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "path", config.AppConfig.DBPath, "error", err)
		os.Exit(1)
	}

	backupWorker, err := setup.InitBackup(ctx, config.AppConfig, db, logger)
	if err != nil {
		logger.Error("failed to initialize backups", "error", err)
		db.Close()
		os.Exit(1)
	}

	application := setup.InitApp(db, backupWorker, logger)

	app := setup.NewFiberApp(config.AppConfig, logger)
	setup.ApplyMiddleware(app, logger)
	setup.RegisterRoutes(app, application)

	addr := config.AppConfig.Host + ":" + config.AppConfig.Port
	logger.Info("starting server", "addr", addr, "env", config.AppConfig.Env)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(application, logger)
	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
