package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	t.Run("creates directory and database", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "subdir", "test.db")

		ctx := context.Background()
		store, err := OpenSQLite(ctx, path)
		require.NoError(t, err)
		defer store.Close()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("sets WAL mode", func(t *testing.T) {
		ctx := context.Background()
		store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		defer store.Close()

		var mode string
		err = store.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode)
		assert.NoError(t, err)
		assert.Equal(t, "wal", mode)
	})
}

func TestSQLite_GetSet(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "poems", `[{"id":"1"}]`))

		v, ok, err := store.Get(ctx, "poems")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"1"}]`, v)
	})

	t.Run("set replaces previous value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "poems", "first"))
		require.NoError(t, store.Set(ctx, "poems", "second"))

		v, ok, err := store.Get(ctx, "poems")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", v)
	})

	t.Run("value survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "persist.db")
		first, err := OpenSQLite(ctx, path)
		require.NoError(t, err)
		require.NoError(t, first.Set(ctx, "k", "v"))
		require.NoError(t, first.Close())

		second, err := OpenSQLite(ctx, path)
		require.NoError(t, err)
		defer second.Close()

		v, ok, err := second.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("basic operations", func(t *testing.T) {
		m := NewMemory()
		_, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, m.Set(ctx, "k", "v"))
		v, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("error hooks", func(t *testing.T) {
		m := NewMemory()
		m.SetErr = assert.AnError
		assert.Error(t, m.Set(ctx, "k", "v"))

		m.GetErr = assert.AnError
		_, _, err := m.Get(ctx, "k")
		assert.Error(t, err)
	})
}
