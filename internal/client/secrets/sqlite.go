package secrets

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/luca/internal/dbx"
)

//go:embed migrations/*.sql
var migrations embed.FS

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens (creating if needed) the database at path and brings
// its schema up to date. Use dbx.MemoryPath for a throwaway store.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := dbx.Open(ctx, path, migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open secret store %q: %w", path, err)
	}
	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM secrets WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get secret[%s]: %w", key, err)
	}
	return value, true, nil
}

// Set replaces any existing value for key in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, key); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO secrets (key, value) VALUES (?, ?)`, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set secret[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete secret[%s]: %w", key, err)
	}
	return nil
}
