package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/repositories/metadata"
)

func setupStore(t *testing.T) (*Store, metadata.Repository) {
	t.Helper()
	repo := metadata.NewSQLiteRepository(setupDB(t))
	return NewStore(repo, testLogger()), repo
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	u := &models.User{ID: "1", Email: "a@b.com", Name: "a", Age: 30}
	require.NoError(t, store.Save(ctx, u))

	got := store.Load(ctx)
	require.Equal(t, u, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.User{ID: "1", Email: "a@b.com", Name: "a"}))
	require.NoError(t, store.Save(ctx, &models.User{ID: "2", Email: "c@d.com", Name: "c"}))

	got := store.Load(ctx)
	require.Equal(t, "c@d.com", got.Email)
}

func TestStore_LoadAbsent(t *testing.T) {
	store, _ := setupStore(t)
	require.Nil(t, store.Load(context.Background()))
}

func TestStore_LoadMalformed(t *testing.T) {
	store, repo := setupStore(t)
	ctx := context.Background()

	// malformed stored data means "no session", never an error
	require.NoError(t, repo.Set(ctx, userKey, []byte("{not json")))
	require.Nil(t, store.Load(ctx))
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))

	require.NoError(t, store.Save(ctx, &models.User{ID: "1", Email: "a@b.com", Name: "a"}))
	require.NoError(t, store.Clear(ctx))
	require.Nil(t, store.Load(ctx))
	require.NoError(t, store.Clear(ctx))
}
