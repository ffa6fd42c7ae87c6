package sessions

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()

	dbPath := "./test_sessions_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return store, cleanup
}

func TestSQLiteStore(t *testing.T) {
	t.Run("get on an unknown user reports unset", func(t *testing.T) {
		store, cleanup := setupSQLiteStore(t)
		defer cleanup()

		_, ok, err := store.Get(42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get returns the title", func(t *testing.T) {
		store, cleanup := setupSQLiteStore(t)
		defer cleanup()

		require.NoError(t, store.Set(42, "War and Peace"))

		title, ok, err := store.Get(42)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "War and Peace", title)
	})

	t.Run("set upserts on repeated writes", func(t *testing.T) {
		store, cleanup := setupSQLiteStore(t)
		defer cleanup()

		require.NoError(t, store.Set(42, "War and Peace"))
		require.NoError(t, store.Set(42, "Dune"))

		title, _, err := store.Get(42)
		require.NoError(t, err)
		assert.Equal(t, "Dune", title)
	})

	t.Run("clear removes the entry and tolerates unknown users", func(t *testing.T) {
		store, cleanup := setupSQLiteStore(t)
		defer cleanup()

		require.NoError(t, store.Set(42, "Dune"))
		require.NoError(t, store.Clear(42))
		require.NoError(t, store.Clear(42))

		_, ok, err := store.Get(42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("state survives reopening the database", func(t *testing.T) {
		dbPath := "./test_sessions_reopen.db"
		defer os.Remove(dbPath)

		store, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Set(42, "Dune"))
		require.NoError(t, store.Close())

		reopened, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer reopened.Close()

		title, ok, err := reopened.Get(42)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Dune", title)
	})

	t.Run("ping succeeds on an open store", func(t *testing.T) {
		store, cleanup := setupSQLiteStore(t)
		defer cleanup()

		assert.NoError(t, store.Ping())
	})
}
