package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "stringlang/internal/service/auth"
)

const (
	adminPass  = "correct-horse-battery"
	viewerPass = "purple-monkey-dishwasher"
)

func setUsers(t *testing.T, viewer bool) {
	t.Helper()
	t.Setenv("ADMIN_USER", "root-admin")
	t.Setenv("ADMIN_USER_PASSWORD", adminPass)
	if viewer {
		t.Setenv("VIEWER_USER", "reader")
		t.Setenv("VIEWER_USER_PASSWORD", viewerPass)
	} else {
		t.Setenv("VIEWER_USER", "")
		t.Setenv("VIEWER_USER_PASSWORD", "")
	}
}

func TestLoadEnvProvider(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		setUsers(t, false)
		p, err := LoadEnvProvider()
		require.NoError(t, err)
		assert.Len(t, p.users, 1)
		assert.Equal(t, "env", p.Name())
	})

	t.Run("admin and viewer", func(t *testing.T) {
		setUsers(t, true)
		p, err := LoadEnvProvider()
		require.NoError(t, err)
		assert.Len(t, p.users, 2)
	})

	t.Run("missing admin", func(t *testing.T) {
		setUsers(t, false)
		t.Setenv("ADMIN_USER", "")
		_, err := LoadEnvProvider()
		assert.ErrorContains(t, err, "ADMIN_USER must not be empty")
	})

	t.Run("weak admin password", func(t *testing.T) {
		setUsers(t, false)
		t.Setenv("ADMIN_USER_PASSWORD", "admin")
		_, err := LoadEnvProvider()
		assert.ErrorContains(t, err, "ADMIN_USER_PASSWORD")
	})

	t.Run("viewer same as admin", func(t *testing.T) {
		setUsers(t, true)
		t.Setenv("VIEWER_USER", "root-admin")
		_, err := LoadEnvProvider()
		assert.ErrorContains(t, err, "must differ")
	})

	t.Run("weak viewer password", func(t *testing.T) {
		setUsers(t, true)
		t.Setenv("VIEWER_USER_PASSWORD", "short")
		_, err := LoadEnvProvider()
		assert.ErrorContains(t, err, "VIEWER_USER_PASSWORD")
	})
}

func TestEnvProvider_Credentials(t *testing.T) {
	setUsers(t, true)
	p, err := LoadEnvProvider()
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name     string
		creds    authservice.Credentials
		wantErr  bool
		wantRole string
	}{
		{"admin", authservice.Credentials{Username: "root-admin", Password: adminPass}, false, RoleAdmin},
		{"viewer", authservice.Credentials{Username: "reader", Password: viewerPass}, false, RoleViewer},
		{"crossed passwords", authservice.Credentials{Username: "reader", Password: adminPass}, true, ""},
		{"unknown user", authservice.Credentials{Username: "ghost", Password: adminPass}, true, ""},
		{"empty", authservice.Credentials{}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateCredentials(ctx, tt.creds)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			role, err := p.IdentifyUser(ctx, tt.creds.Username)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, role)
		})
	}

	_, err = p.IdentifyUser(ctx, "ghost")
	assert.Error(t, err)
	assert.Equal(t, MinPasswordLength, p.GetRequirements().MinPasswordLength)
}
