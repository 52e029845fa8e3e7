package database

import (
	"errors"
	"fmt"
	"strings"
)

// Not-found sentinels. Account lookups by id fail loudly instead of
// dereferencing an empty result; Login deliberately does not use them.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoteNotFound    = errors.New("note not found")
)

// ValidationError reports which fields failed their format rules. No
// write happens when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s", strings.Join(e.Fields, ", "))
}

// DuplicateUsernameError is raised off the UNIQUE constraint at insert
// time, never from a pre-check, so there is no window between check and
// insert.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// LoginError covers both unknown username and wrong password. The two
// cases are indistinguishable on purpose: the caller must not be able to
// enumerate usernames.
type LoginError struct {
	Username string
}

func (e *LoginError) Error() string {
	return "invalid username and/or password"
}

// SchemaError means table or index creation was rejected by the store.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema setup failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// StoreError wraps any other storage-level rejection. The presentation
// layer never sees a raw driver error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
