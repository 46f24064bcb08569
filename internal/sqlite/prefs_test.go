package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/planops/ruleboard/internal/sqlite"
	"github.com/stretchr/testify/require"
)

func newPrefStore(t *testing.T) *sqlite.PrefStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewPrefStore(db)
}

func TestPrefStore_GetDefault(t *testing.T) {
	s := newPrefStore(t)
	got, err := s.Get(context.Background(), "missing", "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", got)
}

func TestPrefStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := newPrefStore(t)

	require.NoError(t, s.Set(ctx, "queued-visible-columns", "a,b,c"))
	got, err := s.Get(ctx, "queued-visible-columns", "")
	require.NoError(t, err)
	require.Equal(t, "a,b,c", got)

	require.NoError(t, s.Set(ctx, "queued-visible-columns", "a"))
	got, err = s.Get(ctx, "queued-visible-columns", "")
	require.NoError(t, err)
	require.Equal(t, "a", got)
}

func TestPrefStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newPrefStore(t)

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))
	got, err := s.Get(ctx, "k", "gone")
	require.NoError(t, err)
	require.Equal(t, "gone", got)

	require.NoError(t, s.Delete(ctx, "never-existed"))
}
