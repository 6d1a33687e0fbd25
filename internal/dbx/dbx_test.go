package dbx

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMigrations = os.DirFS("testdata")

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath, testMigrations, "migrations")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countNotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n))
	return n
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, 0, countNotes(t, db))
}

func TestOpen_FileIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	db, err := Open(ctx, path, testMigrations, "migrations")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes(body) VALUES ('kept')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path, testMigrations, "migrations")
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, 1, countNotes(t, db))
}

func TestOpen_MigrationFailure(t *testing.T) {
	orig := gooseUp
	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return errors.New("boom")
	}
	defer func() { gooseUp = orig }()

	_, err := Open(context.Background(), MemoryPath, testMigrations, "migrations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goose up: boom")
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO notes(body) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countNotes(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO notes(body) VALUES ('lost')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	assert.Equal(t, 0, countNotes(t, db))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := openTestDB(t)

	defer func() {
		require.NotNil(t, recover(), "panic must propagate")
		assert.Equal(t, 0, countNotes(t, db))
	}()

	_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO notes(body) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
}
