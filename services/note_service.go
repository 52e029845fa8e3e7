package services

import (
	"log/slog"

	"notedesk/models"
)

// NoteService handles note business logic for the presentation layer.
type NoteService struct {
	repo     NoteRepository
	sessions SessionStore
	logger   *slog.Logger
}

func NewNoteService(repo NoteRepository, sessions SessionStore, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

func (ns *NoteService) session(sessionID string) (*models.Session, error) {
	sess, err := ns.sessions.Get(sessionID)
	if err != nil || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Add creates a note owned by the session's account and returns its id.
func (ns *NoteService) Add(sessionID, content string) (int64, error) {
	sess, err := ns.session(sessionID)
	if err != nil {
		return 0, err
	}

	noteID, err := ns.repo.AddNote(sess.AccountID, content)
	if err != nil {
		return 0, err
	}

	ns.logger.Info("note created", "account_id", sess.AccountID, "note_id", noteID)
	return noteID, nil
}

// Get returns one of the session account's notes. Reading a note owned
// by someone else is refused rather than hidden behind not-found,
// because the id was handed out by this surface in the first place.
func (ns *NoteService) Get(sessionID string, noteID int64) (*models.Note, error) {
	sess, err := ns.session(sessionID)
	if err != nil {
		return nil, err
	}

	note, err := ns.repo.GetNote(noteID)
	if err != nil {
		return nil, err
	}

	if note.Owner == nil || *note.Owner != sess.AccountID {
		return nil, ErrUnauthorized
	}
	return note, nil
}

// List returns every note the session's account owns.
func (ns *NoteService) List(sessionID string) ([]models.Note, error) {
	sess, err := ns.session(sessionID)
	if err != nil {
		return nil, err
	}
	return ns.repo.NotesByAccount(sess.AccountID)
}

// Update replaces a note's content.
func (ns *NoteService) Update(sessionID string, noteID int64, content string) error {
	sess, err := ns.session(sessionID)
	if err != nil {
		return err
	}

	if err := ns.repo.UpdateNote(sess.AccountID, noteID, content); err != nil {
		return err
	}

	ns.logger.Info("note updated", "account_id", sess.AccountID, "note_id", noteID)
	return nil
}

// Delete removes a note.
func (ns *NoteService) Delete(sessionID string, noteID int64) error {
	sess, err := ns.session(sessionID)
	if err != nil {
		return err
	}

	if err := ns.repo.DeleteNote(sess.AccountID, noteID); err != nil {
		return err
	}

	ns.logger.Info("note deleted", "account_id", sess.AccountID, "note_id", noteID)
	return nil
}
