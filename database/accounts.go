package database

import (
	"database/sql"

	"notedesk/models"
	"notedesk/security"
)

// ==================== ACCOUNT OPERATIONS ====================

// CreateAccount validates the request, hashes the password and inserts a
// new account with the default avatar. Validation failures abort before
// anything is written.
func (r *Repository) CreateAccount(req models.CreateAccountRequest) (int64, error) {
	if err := r.fieldsFailing(req); err != nil {
		return 0, err
	}

	digest, err := r.hasher.Hash(req.Password)
	if err != nil {
		return 0, &StoreError{Op: "create account", Err: err}
	}

	res, err := r.db.Exec(`
		INSERT INTO users (username, password, name, avatar_id)
		VALUES (?, ?, ?, 0)
	`, req.Username, digest, req.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &DuplicateUsernameError{Username: req.Username}
		}
		return 0, &StoreError{Op: "create account", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StoreError{Op: "create account", Err: err}
	}
	return id, nil
}

// Login returns the account id for the username if the password matches
// its stored digest. Unknown username and wrong password fail identically.
func (r *Repository) Login(username, password string) (int64, error) {
	var id int64
	var digest string

	err := r.db.QueryRow(`
		SELECT user_id, password FROM users WHERE username = ?
	`, username).Scan(&id, &digest)

	if err == sql.ErrNoRows {
		return 0, &LoginError{Username: username}
	}
	if err != nil {
		return 0, &StoreError{Op: "login", Err: err}
	}

	ok, err := security.Verify(password, digest)
	if err != nil {
		return 0, &StoreError{Op: "login", Err: err}
	}
	if !ok {
		return 0, &LoginError{Username: username}
	}

	return id, nil
}

// VerifyAccountPassword checks a password against the digest stored for
// the account. Unlike Login this is called with an id the caller already
// holds, so a missing account is reported explicitly.
func (r *Repository) VerifyAccountPassword(accountID int64, password string) (bool, error) {
	var digest string

	err := r.db.QueryRow(`
		SELECT password FROM users WHERE user_id = ?
	`, accountID).Scan(&digest)

	if err == sql.ErrNoRows {
		return false, ErrAccountNotFound
	}
	if err != nil {
		return false, &StoreError{Op: "verify password", Err: err}
	}

	ok, err := security.Verify(password, digest)
	if err != nil {
		return false, &StoreError{Op: "verify password", Err: err}
	}
	return ok, nil
}

// GetAccountView joins the account to all of its notes. An account with
// zero notes comes back with an empty slice; an unknown id fails with
// ErrAccountNotFound rather than an empty aggregate.
func (r *Repository) GetAccountView(accountID int64) (*models.AccountView, error) {
	rows, err := r.db.Query(`
		SELECT username, name, avatar_id,
		       note_id, content, creation, last_update
		FROM users LEFT JOIN library
		     ON users.user_id = library.user_id
		WHERE users.user_id = ?
		ORDER BY note_id ASC
	`, accountID)
	if err != nil {
		return nil, &StoreError{Op: "get account view", Err: err}
	}
	defer rows.Close()

	var view *models.AccountView
	for rows.Next() {
		var (
			username, name string
			avatarColumn   int64
			noteID         sql.NullInt64
			content        sql.NullString
			creation       sql.NullFloat64
			lastUpdate     sql.NullFloat64
		)
		if err := rows.Scan(&username, &name, &avatarColumn,
			&noteID, &content, &creation, &lastUpdate); err != nil {
			return nil, &StoreError{Op: "get account view", Err: err}
		}

		if view == nil {
			view = &models.AccountView{
				Username: username,
				Name:     name,
				Avatar:   models.AvatarFromColumn(avatarColumn),
				Notes:    make([]models.Note, 0),
			}
		}

		// Null note columns mean the account has no notes at all
		if !noteID.Valid {
			continue
		}

		owner := accountID
		view.Notes = append(view.Notes, models.Note{
			ID:         noteID.Int64,
			Owner:      &owner,
			Content:    content.String,
			Creation:   models.Timestamp(creation.Float64),
			LastUpdate: models.Timestamp(lastUpdate.Float64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "get account view", Err: err}
	}

	if view == nil {
		return nil, ErrAccountNotFound
	}
	return view, nil
}

// UpdateAccount edits username and name, and the password only when a new
// one was supplied.
func (r *Repository) UpdateAccount(accountID int64, req models.UpdateAccountRequest) error {
	if err := r.fieldsFailing(req); err != nil {
		return err
	}

	var res sql.Result
	var err error

	if req.Password != "" {
		var digest string
		digest, err = r.hasher.Hash(req.Password)
		if err != nil {
			return &StoreError{Op: "update account", Err: err}
		}
		res, err = r.db.Exec(`
			UPDATE users SET username = ?, password = ?, name = ?
			WHERE user_id = ?
		`, req.Username, digest, req.Name, accountID)
	} else {
		res, err = r.db.Exec(`
			UPDATE users SET username = ?, name = ?
			WHERE user_id = ?
		`, req.Username, req.Name, accountID)
	}

	if err != nil {
		if isUniqueViolation(err) {
			return &DuplicateUsernameError{Username: req.Username}
		}
		return &StoreError{Op: "update account", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "update account", Err: err}
	}
	if affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes the account row. The SET NULL rule on
// library.user_id orphans its notes as a side effect; note rows survive.
// Cleaning up an external avatar image is the caller's job.
func (r *Repository) DeleteAccount(accountID int64) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE user_id = ?`, accountID)
	if err != nil {
		return &StoreError{Op: "delete account", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "delete account", Err: err}
	}
	if affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// SetAvatar unconditionally updates the avatar reference. The numeric
// convention (0 = default, otherwise the account id) stays with the
// caller; the engine never touches image files.
func (r *Repository) SetAvatar(accountID int64, avatar models.Avatar) error {
	res, err := r.db.Exec(`
		UPDATE users SET avatar_id = ? WHERE user_id = ?
	`, avatar.Column(), accountID)
	if err != nil {
		return &StoreError{Op: "set avatar", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "set avatar", Err: err}
	}
	if affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
