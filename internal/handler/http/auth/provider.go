package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	pkgconfig "stringlang/pkg/config"

	authservice "stringlang/internal/service/auth"
)

type user struct {
	name     string
	password string
	role     string
}

// EnvProvider holds the users configured through the environment: one admin
// and an optional read-only viewer.
type EnvProvider struct {
	users []user
}

// LoadEnvProvider reads the configured users from the environment.
//
// Environment variables:
//   - ADMIN_USER, ADMIN_USER_PASSWORD: required, role RoleAdmin
//   - VIEWER_USER, VIEWER_USER_PASSWORD: optional, role RoleViewer
//
// Returns:
//   - *EnvProvider: Provider holding one or two users
//   - error: when ADMIN_USER is empty, the viewer name equals the admin name, or
//     a password fails ValidatePassword
func LoadEnvProvider() (*EnvProvider, error) {
	p := &EnvProvider{}
	admin := pkgconfig.GetEnvString("ADMIN_USER", "")
	if admin == "" {
		return nil, errors.New("ADMIN_USER must not be empty")
	}
	if err := p.add(admin, pkgconfig.GetEnvString("ADMIN_USER_PASSWORD", ""), "ADMIN_USER_PASSWORD", RoleAdmin); err != nil {
		return nil, err
	}

	if viewer := pkgconfig.GetEnvString("VIEWER_USER", ""); viewer != "" {
		if viewer == admin {
			return nil, errors.New("VIEWER_USER must differ from ADMIN_USER")
		}
		if err := p.add(viewer, pkgconfig.GetEnvString("VIEWER_USER_PASSWORD", ""), "VIEWER_USER_PASSWORD", RoleViewer); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *EnvProvider) add(name, password, envKey, role string) error {
	if err := ValidatePassword(envKey, password); err != nil {
		return fmt.Errorf("credentials validation failed: %w", err)
	}
	p.users = append(p.users, user{name: name, password: password, role: role})
	return nil
}

// ValidateCredentials compares in constant time against every user so the
// response time does not reveal which usernames exist.
func (p *EnvProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return errors.New("credentials must not be empty")
	}
	match := 0
	for _, u := range p.users {
		nameOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(u.name))
		passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(u.password))
		match |= nameOK & passOK
	}
	if match != 1 {
		return errors.New("invalid credentials")
	}
	return nil
}

func (p *EnvProvider) IdentifyUser(_ context.Context, username string) (string, error) {
	for _, u := range p.users {
		if subtle.ConstantTimeCompare([]byte(username), []byte(u.name)) == 1 {
			return u.role, nil
		}
	}
	return "", errors.New("user not found")
}

// GetRequirements reports the password policy enforced at load.
func (p *EnvProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: MinPasswordLength,
		WeakPasswords:     weakPasswordList,
	}
}

// Name identifies the provider in logs.
func (p *EnvProvider) Name() string { return "env" }
