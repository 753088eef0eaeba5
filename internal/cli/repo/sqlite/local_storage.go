package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"BlogDesk/internal/cli/repo"
)

// LocalStorage is a string key/value store in a SQLite file, the CLI's stand-in for the
// browser's localStorage. It implements repo.TokenStore over repo.TokenKey.
type LocalStorage struct {
	db *sql.DB
}

var _ repo.TokenStore = (*LocalStorage)(nil)

// Open opens (creating if needed) the storage file at path.
func Open(path string) (*LocalStorage, error) {
	if path == "" {
		return nil, errors.New("empty storage path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &LocalStorage{db: db}, nil
}

// Close closes the underlying DB.
func (s *LocalStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the storage table.
func (s *LocalStorage) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// GetItem returns the value for key; ok is false when the key is absent.
func (s *LocalStorage) GetItem(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *LocalStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO local_storage(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *LocalStorage) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

// Save stores the auth token.
func (s *LocalStorage) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	return s.SetItem(repo.TokenKey, token)
}

// Load returns the auth token or repo.ErrNoToken.
func (s *LocalStorage) Load() (string, error) {
	v, ok, err := s.GetItem(repo.TokenKey)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", repo.ErrNoToken
	}
	return v, nil
}

// Clear removes the auth token.
func (s *LocalStorage) Clear() error {
	return s.RemoveItem(repo.TokenKey)
}
