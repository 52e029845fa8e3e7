package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
)

// |===============|       |==============|
// | users         |       | library      |
// |===============|       |==============|
// | user_id (PK)  |--\    | note_id (PK) |
// | username      |   \--<| user_id (FK) |
// | password      |       | content      |
// | name          |       | creation     |
// | avatar_id     |       | last_update  |
// |===============|       |==============|

type DB struct {
	*sql.DB
	path string
	opts Options
}

// Options control the open/close retry policy. A locally locked database
// file is worth waiting out; the retries are bounded so startup time stays
// predictable, and the context lets the caller abort early.
type Options struct {
	MaxRetries uint64
	RetryDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxRetries: 5,
		RetryDelay: 2 * time.Second,
	}
}

// Open connects to the SQLite database at dbPath, retrying transient
// failures with a constant delay. The connection pool is pinned to a
// single connection; the engine relies on SQLite's own write
// serialization and supports one logical session at a time.
func Open(ctx context.Context, dbPath string, opts Options) (*DB, error) {
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultOptions().RetryDelay
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	var db *sql.DB
	backoff := retry.WithMaxRetries(opts.MaxRetries, retry.NewConstant(opts.RetryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		d, err := sql.Open("sqlite3", dbPath)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := d.PingContext(ctx); err != nil {
			d.Close()
			return retry.RetryableError(err)
		}
		db = d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single active connection, single logical session
	db.SetMaxOpenConns(1)

	// Foreign keys are off by default in SQLite; the ON DELETE SET NULL
	// rule on library.user_id depends on this pragma.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{DB: db, path: dbPath, opts: opts}, nil
}

// Migrate idempotently creates both tables and the owner index. Each
// statement that the store rejects surfaces as a *SchemaError.
func (db *DB) Migrate() error {
	queries := []string{
		// Accounts table
		`CREATE TABLE IF NOT EXISTS users (
			user_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			username    TEXT    NOT NULL    UNIQUE,
			password    TEXT    NOT NULL,
			name        TEXT    NOT NULL,
			avatar_id   INTEGER NOT NULL    DEFAULT 0
		)`,

		// Notes table. Timestamps are REAL epoch seconds so sub-second
		// precision survives the round trip. Deleting an account orphans
		// its notes instead of removing them.
		`CREATE TABLE IF NOT EXISTS library (
			note_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     INTEGER,
			content     TEXT    NOT NULL,
			creation    REAL    NOT NULL,
			last_update REAL    NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(user_id)
			                      ON UPDATE CASCADE
			                      ON DELETE SET NULL
		)`,

		// Keeps per-account note retrieval cheap as the library grows
		`CREATE INDEX IF NOT EXISTS owner_index ON library (user_id ASC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return &SchemaError{Err: err}
		}
	}

	return nil
}

// CloseWithRetry closes the connection under the same bounded retry
// policy as Open.
func (db *DB) CloseWithRetry(ctx context.Context) error {
	backoff := retry.WithMaxRetries(db.opts.MaxRetries, retry.NewConstant(db.opts.RetryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.DB.Close(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (db *DB) Path() string {
	return db.path
}
