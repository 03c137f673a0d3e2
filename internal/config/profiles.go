package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"stringlang/internal/domain/profile"
	"stringlang/pkg/unicodeblock"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// ProfilesFile is the YAML layout of a profiles file.
type ProfilesFile struct {
	Profiles []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Blocks      []string `yaml:"blocks"`
	} `yaml:"profiles"`
}

// LoadProfiles reads profiles from path, or the built-in set when path is empty.
// The path parameter is expected to come from a trusted source (env or CLI flag).
func LoadProfiles(path string) (*profile.Registry, error) {
	if path == "" {
		return ParseProfiles(defaultProfiles)
	}

	// #nosec G304 -- path is provided by trusted source (env or CLI flag), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes YAML and validates every profile against the
// standard catalog. Unknown YAML fields are rejected.
func ParseProfiles(data []byte) (*profile.Registry, error) {
	var file ProfilesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	defs := make([]profile.Definition, 0, len(file.Profiles))
	for _, p := range file.Profiles {
		defs = append(defs, profile.Definition{Name: p.Name, Description: p.Description, Blocks: p.Blocks})
	}

	reg, err := profile.NewRegistry(unicodeblock.Standard(), defs...)
	if err != nil {
		return nil, fmt.Errorf("profiles validation failed: %w", err)
	}
	return reg, nil
}
