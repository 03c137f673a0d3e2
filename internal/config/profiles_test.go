package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringlang/pkg/unicodeblock"
)

func TestLoadProfiles_Default(t *testing.T) {
	reg, err := LoadProfiles("")
	require.NoError(t, err)

	for _, name := range []string{"arabic", "cjk", "cyrillic", "emoji", "japanese", "latin", "punctuation"} {
		p, err := reg.Lookup(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Description)
		assert.NotZero(t, p.Catalog.Len())
	}
}

func TestLoadProfiles_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`profiles:
  - name: greek
    blocks: [greekandCoptic, greekExtended]
`), 0o600))

	reg, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	p, err := reg.Lookup("greek")
	require.NoError(t, err)
	assert.Equal(t, []string{"greekExtended", "greekandCoptic"}, p.Blocks())
}

func TestLoadProfiles_MissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profiles file")
}

func TestParseProfiles(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError bool
		errorMsg    string
		wantLen     int
	}{
		{name: "empty document", yaml: "", wantLen: 0},
		{name: "no profiles", yaml: "profiles: []\n", wantLen: 0},
		{
			name: "two profiles",
			yaml: `profiles:
  - name: a
    blocks: [basicLatin]
  - name: b
    description: kana
    blocks: [hiragana, katakana]
`,
			wantLen: 2,
		},
		{
			name:        "unknown field",
			yaml:        "profiles:\n  - name: a\n    blcks: [basicLatin]\n",
			expectError: true,
			errorMsg:    "failed to parse profiles",
		},
		{
			name:        "unknown block",
			yaml:        "profiles:\n  - name: a\n    blocks: [klingon]\n",
			expectError: true,
			errorMsg:    "klingon",
		},
		{
			name:        "malformed",
			yaml:        "profiles: {",
			expectError: true,
			errorMsg:    "failed to parse profiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := ParseProfiles([]byte(tt.yaml))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, reg.Len())
		})
	}
}

func TestParseProfiles_UnknownBlockIsTyped(t *testing.T) {
	_, err := ParseProfiles([]byte("profiles:\n  - name: a\n    blocks: [klingon]\n"))
	assert.True(t, errors.Is(err, unicodeblock.ErrUnknownBlock))
}
