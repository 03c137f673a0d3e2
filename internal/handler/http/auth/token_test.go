package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "stringlang/internal/service/auth"
)

func newTokenHandler(t *testing.T, now time.Time) http.HandlerFunc {
	t.Helper()
	setUsers(t, true)
	p, err := LoadEnvProvider()
	require.NoError(t, err)
	svc := authservice.NewAuthService(p)
	issuer := &TokenIssuer{Secret: testSecret, TTL: 30 * time.Minute, Now: func() time.Time { return now }}
	return TokenHandler(svc, issuer)
}

func TestTokenHandler(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantRole string
	}{
		{"admin", `{"username":"root-admin","password":"` + adminPass + `"}`, http.StatusOK, RoleAdmin},
		{"viewer", `{"username":"reader","password":"` + viewerPass + `"}`, http.StatusOK, RoleViewer},
		{"wrong password", `{"username":"root-admin","password":"nope-nope-nope"}`, http.StatusUnauthorized, ""},
		{"malformed", `{"username":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTokenHandler(t, now)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body)))
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				assert.NotContains(t, rec.Body.String(), adminPass)
				return
			}

			var resp TokenResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.True(t, resp.ExpiresAt.Equal(now.Add(30*time.Minute)))

			claims, err := validateJWT("Bearer "+resp.Token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, claims.Role)
			assert.Equal(t, Issuer, claims.Issuer)
		})
	}
}

func TestTokenIssuer_Issue(t *testing.T) {
	_, _, err := (&TokenIssuer{}).Issue("alice", RoleAdmin)
	assert.Error(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, exp, err := (&TokenIssuer{Secret: testSecret, Now: func() time.Time { return now }}).Issue("alice", RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(DefaultTokenTTL), exp)
}
