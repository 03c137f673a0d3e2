package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stringlang/internal/handler/http/respond"
	"stringlang/internal/observability/logging"
	authservice "stringlang/internal/service/auth"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

// TokenIssuer signs tokens with an HS256 secret.
//
// Example:
//
//	issuer := &auth.TokenIssuer{Secret: []byte(cfg.Auth.JWTSecret), TTL: cfg.Auth.TokenTTL}
//	token, expiresAt, err := issuer.Issue("alice", auth.RoleViewer)
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Issue signs a token for subject with role.
//
// Parameters:
//   - subject: Value of the sub claim, the user name
//   - role: Value of the role claim
//
// Returns:
//   - string: The signed compact JWT
//   - time.Time: Expiry, now + TTL (DefaultTokenTTL when TTL is not positive)
//   - error: When no secret is configured or signing fails
func (i *TokenIssuer) Issue(subject, role string) (string, time.Time, error) {
	if len(i.Secret) == 0 {
		return "", time.Time{}, errors.New("token secret is not configured")
	}
	now := time.Now
	if i.Now != nil {
		now = i.Now
	}
	ttl := i.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	issuedAt := now().UTC()
	expiresAt := issuedAt.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"correct-horse-battery"`
}

// TokenResponse is the body of a successful POST /auth/token.
type TokenResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2026-03-01T13:00:00Z"`
}

// TokenHandler issue token
// @Summary      Issue an access token
// @Description  Exchanges username and password for a bearer token used by the /analyses endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body loginRequest true "Login credentials"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} respond.ErrorResponse "Malformed request"
// @Failure      401 {object} respond.ErrorResponse "Invalid credentials"
// @Failure      500 {object} respond.ErrorResponse "Token signing failed"
// @Router       /auth/token [post]
func TokenHandler(svc *authservice.AuthService, issuer *TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := logging.FromContext(r.Context())

		fail := func(reason string, code int, msg string) {
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			recordLogin("unknown", "failure", start)
			respond.Error(w, code, errors.New(msg))
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail("invalid_request", http.StatusBadRequest, "invalid request body")
			return
		}

		role, err := svc.Authenticate(r.Context(), authservice.Credentials{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			fail("invalid_credentials", http.StatusUnauthorized, "invalid credentials")
			return
		}

		signed, expiresAt, err := issuer.Issue(req.Username, role)
		if err != nil {
			logger.Error("token generation failed", slog.String("error", respond.SanitizeError(err)))
			recordLogin(role, "failure", start)
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.String("role", role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		recordLogin(role, "success", start)

		respond.JSON(w, http.StatusOK, TokenResponse{Token: signed, ExpiresAt: expiresAt})
	}
}
