// Package pathutil maps request paths to route templates for metric labels
// and parses path parameters.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern maps paths matching Pattern to Template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// Most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/analyses/` + uuidPattern + `$`), Template: "/analyses/:id"},
	{Pattern: regexp.MustCompile(`^/analyses/[^/]+$`), Template: "/analyses/:invalid"},
	{Pattern: regexp.MustCompile(`^/blocks/[^/]+/count$`), Template: "/blocks/:name/count"},
	{Pattern: regexp.MustCompile(`^/blocks/[^/]+$`), Template: "/blocks/:name"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath collapses dynamic segments so every analysis ID and block
// name shares one metric series. Query strings and a trailing slash are
// dropped; paths without a dynamic segment are returned as-is.
//
//	NormalizePath("/analyses/2f1c...e9")     // "/analyses/:id"
//	NormalizePath("/blocks/hiragana/count")  // "/blocks/:name/count"
//	NormalizePath("/blocks?profile=cjk")     // "/blocks"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}

// GetExpectedCardinality estimates the number of distinct path labels: the
// templates plus the static routes.
func GetExpectedCardinality() int {
	const staticRoutes = 12 // /analyze*, /blocks, /profiles, /analyses, /auth/token, probes, /metrics
	return len(pathPatterns) + staticRoutes
}
