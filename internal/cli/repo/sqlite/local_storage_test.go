package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlogDesk/internal/cli/repo"
)

func openTemp(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "storage.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate())
	return s
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openTemp(t)
	assert.NoError(t, s.Migrate())
}

func TestLocalStorage_ItemLifecycle(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.GetItem("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem("theme", "dark"))
	require.NoError(t, s.SetItem("theme", "light"))
	v, ok, err := s.GetItem("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, s.RemoveItem("theme"))
	require.NoError(t, s.RemoveItem("theme"))
	_, ok, err = s.GetItem("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_TokenStore(t *testing.T) {
	s := openTemp(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)

	assert.Error(t, s.Save(""))
	require.NoError(t, s.Save(" tok-1 \n"))
	tok, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// the token shares the key space with other items
	v, ok, err := s.GetItem(repo.TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", v)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)
}

func TestLocalStorage_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.sqlite")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Migrate())
	require.NoError(t, s1.Save("persisted"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, s2.Migrate())
	tok, err := s2.Load()
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}
