// Package auth issues and checks the HS256 bearer tokens that guard the
// analysis archive.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stringlang/internal/handler/http/respond"
)

// Issuer is the iss claim of every token this service signs.
const Issuer = "stringlang"

// Claims is the token payload: the standard claims plus a role.
//
// Required claims:
//   - sub: the user name the token was issued to
//   - role: RoleAdmin or RoleViewer
//   - exp: expiry; tokens without one are rejected
//   - iss: must equal Issuer
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// User is the authenticated caller of a request.
type User struct {
	Subject string
	Role    string
}

type ctxKey struct{}

// UserFromContext returns the caller stored by the Authz middleware.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxKey{}).(User)
	return u, ok
}

// Subject returns the authenticated subject. Its signature matches the key
// function of the per-user rate limiter:
//
//	userLimiter := middleware.NewRateLimiter(limiter, middleware.UserKey(auth.Subject), logger)
func Subject(ctx context.Context) (string, bool) {
	u, ok := UserFromContext(ctx)
	return u.Subject, ok
}

// WithUser stores u in ctx.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// NewAuthz returns a middleware that requires a valid bearer token signed with
// secret and a role that permits the request's method and path.
//
// Flow:
//   - Public endpoints (see PublicEndpoints) pass through untouched
//   - Missing, malformed, expired or wrongly signed token: 401 with WWW-Authenticate
//   - Valid token whose role lacks permission: 403
//   - Otherwise the User is stored in the request context for handlers and
//     the per-user limiter
//
// Every decision is counted in stringlang_archive_access_total.
//
// Parameters:
//   - secret: HS256 key; an empty secret refuses every protected request
//
// Example:
//
//	authz := auth.NewAuthz([]byte(cfg.Auth.JWTSecret))
//	mux.Handle("GET /analyses", authz(listHandler))
func NewAuthz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			claims, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				recordArchiveAccess("unauthenticated", "unknown", r.Method, start)
				w.Header().Set("WWW-Authenticate", `Bearer realm="stringlang"`)
				respond.Error(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			if !checkRolePermission(claims.Role, r.Method, r.URL.Path) {
				recordArchiveAccess("forbidden", claims.Role, r.Method, start)
				respond.Error(w, http.StatusForbidden, errors.New("forbidden"))
				return
			}

			recordArchiveAccess("granted", claims.Role, r.Method, start)
			ctx := WithUser(r.Context(), User{Subject: claims.Subject, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateJWT parses the Authorization header value and checks signature,
// algorithm, expiry, issuer and the sub and role claims. Error messages are
// safe to return to the client.
func validateJWT(authz string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errors.New("authentication is not configured")
	}
	tokenString, ok := strings.CutPrefix(authz, "Bearer ")
	if !ok || tokenString == "" {
		return nil, errors.New("missing bearer token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(Issuer),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errors.New("token expired")
	case err != nil:
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("invalid sub claim")
	}
	if claims.Role == "" {
		return nil, errors.New("invalid role claim")
	}
	return claims, nil
}
