package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

func TestFileStore_SaveLoad(t *testing.T) {
	t.Parallel()

	user := model.User{ID: 1, Username: "skzry", Email: "a@b.c", IsAdmin: true}

	t.Run("round trip returns the saved session", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("abc", user))

		session, ok := store.Load()
		require.True(t, ok)
		require.Equal(t, "abc", session.Token)
		require.Equal(t, user, session.User)
	})

	t.Run("load without save is absent", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, ok := store.Load()
		require.False(t, ok)
	})

	t.Run("save overwrites the previous session", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("first", user))
		other := model.User{ID: 2, Username: "buyer", Email: "x@y.z"}
		require.NoError(t, store.Save("second", other))

		session, ok := store.Load()
		require.True(t, ok)
		require.Equal(t, "second", session.Token)
		require.Equal(t, other, session.User)
	})
}

func TestFileStore_Clear(t *testing.T) {
	t.Parallel()

	t.Run("clear then load is absent", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("abc", model.User{ID: 1, Username: "skzry"}))
		require.NoError(t, store.Clear())

		_, ok := store.Load()
		require.False(t, ok)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())
	})
}

func TestFileStore_MalformedEntries(t *testing.T) {
	t.Parallel()

	t.Run("unparsable user entry degrades to absent", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save("abc", model.User{ID: 1, Username: "skzry"}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

		_, ok := store.Load()
		require.False(t, ok)
	})

	t.Run("missing token invalidates the whole session", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save("abc", model.User{ID: 1, Username: "skzry"}))
		require.NoError(t, os.Remove(filepath.Join(dir, "auth_token")))

		_, ok := store.Load()
		require.False(t, ok)
	})

	t.Run("empty token invalidates the whole session", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save("abc", model.User{ID: 1, Username: "skzry"}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "auth_token"), []byte("  \n"), 0o600))

		_, ok := store.Load()
		require.False(t, ok)
	})
}
