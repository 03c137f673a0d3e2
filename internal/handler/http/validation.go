package http

import (
	"net/http"

	"stringlang/internal/handler/http/respond"
)

// Request size limits enforced by InputValidation.
const (
	maxAuthorizationHeader = 8 << 10
	maxPathLength          = 2 << 10
)

// InputValidation rejects requests with an oversized Authorization header
// (400) or path (414) before any routing or auth work is done. Body size is
// left to LimitRequestBody.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthorizationHeader {
				respond.JSON(w, http.StatusBadRequest, respond.ErrorResponse{Error: "authorization header too large"})
				return
			}
			if len(r.URL.Path) > maxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, respond.ErrorResponse{Error: "URI too long"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
