package services

import "errors"

// Common service-level errors. Storage taxonomy errors (validation,
// duplicate username, login, store) pass through from the database
// package untranslated.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthorized    = errors.New("unauthorized access")
)
