package commands

import (
	"errors"
	"fmt"

	"BlogDesk/internal/cli/api"
	"BlogDesk/internal/cli/auth"
	"BlogDesk/internal/cli/bootstrap"
	"BlogDesk/internal/cli/repo"
	"BlogDesk/internal/config"
)

// session is the token store and API client one command run works with.
type session struct {
	client *api.Client
	tokens repo.TokenStore
	done   func() error
}

func openSession(cfg *config.Config) (*session, error) {
	tokens, done, err := bootstrap.OpenTokenStore(cfg)
	if err != nil {
		return nil, err
	}
	c, err := bootstrap.NewClient(cfg, tokens, logger)
	if err != nil {
		_ = done()
		return nil, fmt.Errorf("api client: %w", err)
	}
	return &session{client: c, tokens: tokens, done: done}, nil
}

func (s *session) Close() {
	if err := s.done(); err != nil {
		logger.Warnw("close token store", "error", err)
	}
}

func (s *session) public() *api.PublicAPI { return s.client.Public() }

// manager returns the authenticated endpoints, warning when the stored token is a JWT that
// has already expired. The call still goes out; the server has the final say.
func (s *session) manager() *api.ManagerAPI {
	tok, err := s.tokens.Load()
	switch {
	case errors.Is(err, repo.ErrNoToken):
		logger.Warnw("no token stored, manager request will be anonymous")
	case err != nil:
		logger.Warnw("read token", "error", err)
	default:
		if err := auth.Check(tok, now()); err != nil {
			logger.Warnw("token check", "error", err)
		}
	}
	return s.client.Manager()
}
