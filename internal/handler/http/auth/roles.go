package auth

import (
	"slices"
	"strings"
)

// Role constants define the roles a token can carry in its role claim.
const (
	// RoleAdmin may read and delete archived analyses
	RoleAdmin = "admin"
	// RoleViewer may only read archived analyses
	RoleViewer = "viewer"
)

// Permission defines the allowed operations for a role.
type Permission struct {
	// AllowedMethods lists the HTTP methods the role may use.
	// Example: ["GET", "OPTIONS"]
	AllowedMethods []string

	// AllowedPaths lists the URL paths the role may access.
	// "/*" matches every path; "/analyses/*" matches /analyses and
	// everything below it; any other pattern matches exactly.
	AllowedPaths []string
}

// RolePermissions maps each role to its allowed permissions.
//
// Security Model:
//   - Admin: every method on every protected path, including DELETE /analyses/{id}
//   - Viewer: GET on /analyses and /analyses/{id}
//
// A role missing from this map is denied everything.
var RolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleViewer: {
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedPaths:   []string{"/analyses", "/analyses/*"},
	},
}

// checkRolePermission reports whether role may use method on path.
func checkRolePermission(role, method, path string) bool {
	perm, ok := RolePermissions[role]
	if !ok {
		return false
	}
	if !slices.Contains(perm.AllowedMethods, method) {
		return false
	}
	return matchesPathPattern(path, perm.AllowedPaths)
}

func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
