// Package auth defines the narrow authentication contract the rest of
// the portal depends on. Handlers and middleware see only Provider;
// the concrete token scheme is an implementation detail chosen in main.
package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Identity is the authenticated caller as the portal sees it.
type Identity struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

type Provider interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Validate parses and verifies a bearer token.
	Validate(ctx context.Context, token string) (*Identity, error)
}
