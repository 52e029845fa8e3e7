package database

import (
	"database/sql"

	"notedesk/models"
)

// ==================== NOTE OPERATIONS ====================

// AddNote inserts a note for the account. Both timestamps start at the
// current wall-clock time; no validation is applied to content.
func (r *Repository) AddNote(accountID int64, content string) (int64, error) {
	now := float64(models.Now())

	res, err := r.db.Exec(`
		INSERT INTO library (user_id, content, creation, last_update)
		VALUES (?, ?, ?, ?)
	`, accountID, content, now, now)
	if err != nil {
		return 0, &StoreError{Op: "add note", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StoreError{Op: "add note", Err: err}
	}
	return id, nil
}

// GetNote retrieves a note by id alone, so orphaned notes remain
// reachable after their owner is deleted.
func (r *Repository) GetNote(noteID int64) (*models.Note, error) {
	var note models.Note
	var owner sql.NullInt64
	var creation, lastUpdate float64

	err := r.db.QueryRow(`
		SELECT note_id, user_id, content, creation, last_update
		FROM library WHERE note_id = ?
	`, noteID).Scan(&note.ID, &owner, &note.Content, &creation, &lastUpdate)

	if err == sql.ErrNoRows {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "get note", Err: err}
	}

	if owner.Valid {
		note.Owner = &owner.Int64
	}
	note.Creation = models.Timestamp(creation)
	note.LastUpdate = models.Timestamp(lastUpdate)
	return &note, nil
}

// NotesByAccount lists every note the account owns, oldest first.
func (r *Repository) NotesByAccount(accountID int64) ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT note_id, user_id, content, creation, last_update
		FROM library
		WHERE user_id = ?
		ORDER BY note_id ASC
	`, accountID)
	if err != nil {
		return nil, &StoreError{Op: "list notes", Err: err}
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		var owner sql.NullInt64
		var creation, lastUpdate float64

		if err := rows.Scan(&note.ID, &owner, &note.Content, &creation, &lastUpdate); err != nil {
			return nil, &StoreError{Op: "list notes", Err: err}
		}

		if owner.Valid {
			note.Owner = &owner.Int64
		}
		note.Creation = models.Timestamp(creation)
		note.LastUpdate = models.Timestamp(lastUpdate)
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list notes", Err: err}
	}
	return notes, nil
}

// UpdateNote replaces the content of the account's note and refreshes
// last_update. Creation never changes after insert.
func (r *Repository) UpdateNote(accountID, noteID int64, content string) error {
	res, err := r.db.Exec(`
		UPDATE library SET content = ?, last_update = ?
		WHERE user_id = ? AND note_id = ?
	`, content, float64(models.Now()), accountID, noteID)
	if err != nil {
		return &StoreError{Op: "update note", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "update note", Err: err}
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes the account's note.
func (r *Repository) DeleteNote(accountID, noteID int64) error {
	res, err := r.db.Exec(`
		DELETE FROM library WHERE user_id = ? AND note_id = ?
	`, accountID, noteID)
	if err != nil {
		return &StoreError{Op: "delete note", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "delete note", Err: err}
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
