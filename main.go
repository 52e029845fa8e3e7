package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"notedesk/app"
	"notedesk/config"
	"notedesk/database"
	"notedesk/security"
	"notedesk/session"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	cfg := config.AppConfig

	// Opening can block on a transiently locked database file; Ctrl-C
	// aborts the retry loop instead of hanging startup.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := database.Options{
		MaxRetries: cfg.ConnectRetries,
		RetryDelay: cfg.ConnectDelay,
	}
	db, err := database.Open(ctx, cfg.DBPath, opts)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(); err != nil {
		logger.Error("failed to set up schema", "error", err)
		db.Close()
		os.Exit(1)
	}
	logger.Info("database initialized", "path", cfg.DBPath)

	hasher, err := security.NewHasher(cfg.PasswordRounds)
	if err != nil {
		logger.Error("invalid password rounds", "error", err)
		db.Close()
		os.Exit(1)
	}
	repo := database.NewRepositoryWithHasher(db, hasher)

	sessions := session.NewStore(cfg.SessionTTL)
	sessions.StartCleanupRoutine(cfg.CleanupInterval)
	logger.Info("session cleanup routine started")

	application := app.New(db, repo, sessions, logger)
	logger.Info("store ready", "theme", cfg.Theme)

	// The presentation layer drives the services from here; this process
	// just keeps the store open until it is told to quit.
	<-ctx.Done()
	stop()

	logger.Info("shutting down")
	application.Sessions.Stop()

	if err := application.DB.CloseWithRetry(context.Background()); err != nil {
		logger.Error("failed to close database", "error", err)
		os.Exit(1)
	}
	logger.Info("disconnected", "path", cfg.DBPath)
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if config.AppConfig.Env == "development" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
