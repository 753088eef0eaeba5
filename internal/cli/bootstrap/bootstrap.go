// Package bootstrap wires config into the token store and API client the commands use.
package bootstrap

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"BlogDesk/internal/cli/api"
	"BlogDesk/internal/cli/repo"
	fsrepo "BlogDesk/internal/cli/repo/fs"
	reposqlite "BlogDesk/internal/cli/repo/sqlite"
	"BlogDesk/internal/config"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// OpenTokenStore opens the token store selected by cfg.TokenStore and returns (store, cleanup, error).
// cleanup must be called when the store is no longer needed; for the file store it does nothing.
func OpenTokenStore(cfg *config.Config) (repo.TokenStore, func() error, error) {
	switch cfg.TokenStore {
	case "", StoreFile:
		return fsrepo.AuthFSStore{Path: cfg.TokenFile}, func() error { return nil }, nil
	case StoreSQLite:
		s, err := reposqlite.Open(cfg.StorageDB)
		if err != nil {
			return nil, nil, fmt.Errorf("open local storage: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate local storage: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q (want %s or %s)", cfg.TokenStore, StoreFile, StoreSQLite)
	}
}

// NewClient builds the API client for cfg.ServerURL.
func NewClient(cfg *config.Config, tokens repo.TokenStore, log *zap.SugaredLogger) (*api.Client, error) {
	return api.NewClient(api.Options{
		BaseURL:           cfg.ServerURL,
		HTTPClient:        &http.Client{Timeout: cfg.RequestTimeout},
		Tokens:            tokens,
		Logger:            log,
		RequestsPerMinute: cfg.RateLimitRPM,
	})
}
