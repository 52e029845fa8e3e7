package services

import "notedesk/models"

// AccountRepository is the account surface the services need from the
// storage engine.
type AccountRepository interface {
	CreateAccount(req models.CreateAccountRequest) (int64, error)
	Login(username, password string) (int64, error)
	VerifyAccountPassword(accountID int64, password string) (bool, error)
	GetAccountView(accountID int64) (*models.AccountView, error)
	UpdateAccount(accountID int64, req models.UpdateAccountRequest) error
	DeleteAccount(accountID int64) error
	SetAvatar(accountID int64, avatar models.Avatar) error
}

// NoteRepository is the note surface the services need from the storage
// engine.
type NoteRepository interface {
	AddNote(accountID int64, content string) (int64, error)
	GetNote(noteID int64) (*models.Note, error)
	NotesByAccount(accountID int64) ([]models.Note, error)
	UpdateNote(accountID, noteID int64, content string) error
	DeleteNote(accountID, noteID int64) error
}

// SessionStore tracks which account a presentation-layer session belongs
// to.
type SessionStore interface {
	Create(accountID int64, username string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
}
