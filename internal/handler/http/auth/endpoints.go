package auth

import "strings"

// PublicEndpoints never require a token.
//
// Matching rules:
//   - Entries ending in "/" match by prefix: "/swagger/" covers "/swagger/index.html"
//   - Other entries match exactly, with an optional trailing slash: "/health" and "/health/"
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
}

// IsPublicEndpoint reports whether path skips authentication.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" {
			return true
		}
	}
	return false
}
