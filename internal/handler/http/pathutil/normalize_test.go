package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/analyses/2f1c6a9e-3b5d-4c7e-9f00-1a2b3c4d5e6f", "/analyses/:id"},
		{"/analyses/2F1C6A9E-3B5D-4C7E-9F00-1A2B3C4D5E6F/", "/analyses/:id"},
		{"/analyses/42", "/analyses/:invalid"},
		{"/analyses", "/analyses"},
		{"/analyses?page=2&limit=10", "/analyses"},
		{"/blocks/hiragana", "/blocks/:name"},
		{"/blocks/klingon", "/blocks/:name"},
		{"/blocks/hiragana/count", "/blocks/:name/count"},
		{"/blocks?profile=cjk", "/blocks"},
		{"/analyze", "/analyze"},
		{"/analyze/batch", "/analyze/batch"},
		{"/swagger/index.html", "/swagger/*"},
		{"/health", "/health"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}

func TestGetExpectedCardinality(t *testing.T) {
	assert.Equal(t, len(pathPatterns)+12, GetExpectedCardinality())
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/analyses/2f1c6a9e-3b5d-4c7e-9f00-1a2b3c4d5e6f",
		"/blocks/hiragana/count",
		"/health",
	}
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		NormalizePath(paths[i%len(paths)])
	}
}
