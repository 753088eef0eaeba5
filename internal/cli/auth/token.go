// Package auth inspects the bearer token the CLI stores for the manager API.
// The signature is never checked here; the server does that.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenStatus int

const (
	TokenMissing TokenStatus = iota
	// TokenOpaque is a non-JWT token; nothing can be said about it locally.
	TokenOpaque
	TokenValid
	TokenExpired
)

func (s TokenStatus) String() string {
	switch s {
	case TokenMissing:
		return "missing"
	case TokenOpaque:
		return "opaque"
	case TokenValid:
		return "valid"
	case TokenExpired:
		return "expired"
	}
	return "unknown"
}

// Claims are the JWT claims the CMS issues.
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

// Info describes a stored token.
type Info struct {
	Status    TokenStatus
	Subject   string
	Role      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect parses token without verifying it and reports its claims relative to now.
func Inspect(token string, now time.Time) Info {
	token = strings.TrimSpace(token)
	if token == "" {
		return Info{Status: TokenMissing}
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Info{Status: TokenOpaque}
	}

	info := Info{
		Status:  TokenValid,
		Subject: claims.Subject,
		Role:    claims.Role,
		Email:   claims.Email,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		if !now.Before(info.ExpiresAt) {
			info.Status = TokenExpired
		}
	}
	return info
}

// ErrExpired is returned by Check for a JWT whose exp is in the past.
var ErrExpired = errors.New("stored token has expired")

// Check fails only for a JWT known to be expired; opaque and missing tokens pass through.
func Check(token string, now time.Time) error {
	if Inspect(token, now).Status == TokenExpired {
		return ErrExpired
	}
	return nil
}
