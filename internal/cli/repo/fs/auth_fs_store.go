package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"BlogDesk/internal/cli/repo"
)

// AppDir is the directory under the user config dir that holds client state.
const AppDir = "BlogDesk"

// AuthFSStore keeps the auth token in a single file.
// An empty Path means <UserConfigDir>/BlogDesk/token.
type AuthFSStore struct {
	Path string
}

var _ repo.TokenStore = AuthFSStore{}

// DefaultTokenPath returns the default token file location.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, repo.TokenKey), nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	return DefaultTokenPath()
}

// Save writes the token, creating the parent directory with owner-only permissions.
func (s AuthFSStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load reads the token. A missing or blank file yields repo.ErrNoToken.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNoToken
		}
		return "", err
	}
	tok := strings.TrimRight(string(b), " \t\r\n")
	if tok == "" {
		return "", repo.ErrNoToken
	}
	return tok, nil
}

// Clear removes the token file. Clearing an absent token is not an error.
func (s AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
