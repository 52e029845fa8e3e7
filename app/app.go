package app

import (
	"log/slog"

	"notedesk/database"
	"notedesk/services"
	"notedesk/session"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB       *database.DB
	Repo     *database.Repository
	Accounts *services.AccountService
	Notes    *services.NoteService
	Sessions *session.Store
	Logger   *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, repo *database.Repository, sessions *session.Store, logger *slog.Logger) *App {
	return &App{
		DB:       db,
		Repo:     repo,
		Accounts: services.NewAccountService(repo, sessions, logger),
		Notes:    services.NewNoteService(repo, sessions, logger),
		Sessions: sessions,
		Logger:   logger,
	}
}
