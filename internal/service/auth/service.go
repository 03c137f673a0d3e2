// Package auth checks credentials for token issuance. It knows nothing about
// HTTP or JWT; the handler layer turns a successful Authenticate into a token.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for any failed login. Callers must not
// reveal which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is a username and password pair as submitted to /auth/token.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements is the password policy a provider enforces.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider is a source of users.
type AuthProvider interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
	// IdentifyUser returns the role of a known user.
	IdentifyUser(ctx context.Context, username string) (string, error)
	GetRequirements() CredentialRequirements
	Name() string
}

// AuthService authenticates users against one provider.
type AuthService struct {
	provider AuthProvider
}

// NewAuthService creates an AuthService backed by provider.
func NewAuthService(provider AuthProvider) *AuthService {
	return &AuthService{provider: provider}
}

// Authenticate validates creds and returns the user's role. Every failure
// wraps ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	if err := s.provider.ValidateCredentials(ctx, creds); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	role, err := s.provider.IdentifyUser(ctx, creds.Username)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return role, nil
}

// GetProvider returns the credential provider the service validates against.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
