package secrets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/luca/internal/common"
	"github.com/dmitrijs2005/luca/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must be empty")

	require.NoError(t, s.Set(ctx, common.AuthTokenKey, "first"))
	require.NoError(t, s.Set(ctx, common.AuthTokenKey, "second"))

	v, ok, err := s.Get(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v, "set must overwrite")

	require.NoError(t, s.Set(ctx, "other", "x"))
	require.NoError(t, s.Delete(ctx, common.AuthTokenKey))
	require.NoError(t, s.Delete(ctx, common.AuthTokenKey), "deleting a missing key is fine")

	_, ok, err = s.Get(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore_InMemory(t *testing.T) {
	s, err := OpenSQLiteStore(context.Background(), dbx.MemoryPath)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luca.db")
	ctx := context.Background()

	s, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, common.AuthTokenKey, "persisted"))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestOpenSQLiteStore_BadPath(t *testing.T) {
	_, err := OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "luca.db"))
	require.Error(t, err)
}
