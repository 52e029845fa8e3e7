package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"notedesk/security"
	"notedesk/validator"
)

// Repository mediates every read and write between the presentation layer
// and the store. It is stateless across calls apart from the open
// connection; the current session lives with the caller.
type Repository struct {
	db       *DB
	validate *validator.Validator
	hasher   *security.Hasher
}

func NewRepository(db *DB) *Repository {
	return &Repository{
		db:       db,
		validate: validator.New(),
		hasher:   security.DefaultHasher(),
	}
}

// NewRepositoryWithHasher allows tuning the password work factor.
func NewRepositoryWithHasher(db *DB, hasher *security.Hasher) *Repository {
	r := NewRepository(db)
	r.hasher = hasher
	return r
}

// fieldsFailing translates validator output into the engine taxonomy.
// A nil return means every field passed.
func (r *Repository) fieldsFailing(req interface{}) error {
	err := r.validate.Validate(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &ValidationError{Fields: verrs.Fields()}
	}
	return &StoreError{Op: "validate", Err: err}
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
