package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "notedesk-open-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")
	db, err := Open(context.Background(), dbPath, DefaultOptions())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, dbPath, db.Path())
	assert.DirExists(t, filepath.Dir(dbPath))
}

func TestMigrateIsIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "notedesk-migrate-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	db, err := Open(context.Background(), filepath.Join(tmpDir, "test.db"), DefaultOptions())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	// Both tables and the index exist
	var count int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE (type = 'table' AND name IN ('users', 'library'))
		   OR (type = 'index' AND name = 'owner_index')
	`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOpenRetryIsCancelable(t *testing.T) {
	// A directory path is never a valid database file, so every attempt
	// fails; the context bounds how long Open keeps trying.
	tmpDir, err := os.MkdirTemp("", "notedesk-cancel-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	opts := Options{MaxRetries: 100, RetryDelay: 10 * time.Millisecond}
	start := time.Now()
	_, err = Open(ctx, tmpDir, opts)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestOpenRetryIsBounded(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "notedesk-bounded-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	opts := Options{MaxRetries: 2, RetryDelay: time.Millisecond}
	_, err = Open(context.Background(), tmpDir, opts)
	assert.Error(t, err)
}

func TestCloseWithRetry(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "notedesk-close-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	db, err := Open(context.Background(), filepath.Join(tmpDir, "test.db"), DefaultOptions())
	require.NoError(t, err)

	assert.NoError(t, db.CloseWithRetry(context.Background()))
}
