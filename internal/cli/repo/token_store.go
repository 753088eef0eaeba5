package repo

import "errors"

// TokenKey is the storage key the bearer token lives under.
const TokenKey = "token"

// ErrNoToken is returned by Load when nothing is stored.
var ErrNoToken = errors.New("no auth token stored")

// TokenStore is the client's local storage for the auth token. The token is written by an
// external login flow; the API client only reads it.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
