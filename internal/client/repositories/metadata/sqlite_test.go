package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metarepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGetSetDelete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "k", []byte("v1")))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)

	// set on an existing key overwrites
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)

	require.NoError(t, repo.Delete(ctx, "k"))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting an absent key is not an error
	require.NoError(t, repo.Delete(ctx, "k"))
}
