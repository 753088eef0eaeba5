package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlogDesk/internal/cli/repo"
)

// setTempCfg points the user config dir at a temp directory.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoad_TrimsWhitespace(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	require.NoError(t, st.Save("tok-123\n\n"))

	// trailing garbage appended by an editor must not leak into the header
	p, err := st.tokenPath()
	require.NoError(t, err)
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, _ = f.WriteString("  \r\n")
	require.NoError(t, f.Close())

	tok, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestAuthFSStore_Load_MissingOrEmpty(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}

	_, err := st.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)

	p, err := st.tokenPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
	require.NoError(t, os.WriteFile(p, []byte(" \n"), 0o600))
	_, err = st.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)
}

func TestAuthFSStore_ExplicitPathAndClear(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "tok")
	st := AuthFSStore{Path: p}

	require.NoError(t, st.Save("abc"))
	info, err := os.Stat(p)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, st.Clear())
	_, err = st.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)
	// second clear is a no-op
	assert.NoError(t, st.Clear())
}

func TestAuthFSStore_SaveRejectsEmpty(t *testing.T) {
	st := AuthFSStore{Path: filepath.Join(t.TempDir(), "tok")}
	assert.Error(t, st.Save("   "))
}
