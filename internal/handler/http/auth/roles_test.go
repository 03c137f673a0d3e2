package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRolePermission(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		method string
		path   string
		want   bool
	}{
		{"admin lists", RoleAdmin, "GET", "/analyses", true},
		{"admin deletes", RoleAdmin, "DELETE", "/analyses/0b0f5d39-5a0e-4b7e-9d43-0d7b2f1d8c11", true},
		{"viewer lists", RoleViewer, "GET", "/analyses", true},
		{"viewer reads one", RoleViewer, "GET", "/analyses/abc", true},
		{"viewer cannot delete", RoleViewer, "DELETE", "/analyses/abc", false},
		{"viewer outside archive", RoleViewer, "GET", "/admin", false},
		{"viewer prefix lookalike", RoleViewer, "GET", "/analysesx", false},
		{"unknown role", "guest", "GET", "/analyses", false},
		{"empty role", "", "GET", "/analyses", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkRolePermission(tt.role, tt.method, tt.path))
		})
	}
}

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health/", true},
		{"/metrics", true},
		{"/swagger/index.html", true},
		{"/auth/token", true},
		{"/healthz", false},
		{"/analyses", false},
		{"/", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublicEndpoint(tt.path))
		})
	}
}
