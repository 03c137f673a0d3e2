// Package profile holds named block selections ("cjk", "emoji", ...) that
// callers can use instead of spelling out block names.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"stringlang/pkg/unicodeblock"
)

// ErrUnknownProfile is returned by Lookup for a name not in the registry.
var ErrUnknownProfile = errors.New("unknown profile")

// Definition is a profile as written in configuration.
type Definition struct {
	Name        string
	Description string
	Blocks      []string
}

// Profile is a validated Definition with its resolved catalog.
type Profile struct {
	Name        string
	Description string
	Catalog     unicodeblock.Catalog
}

// Blocks returns the profile's block names in catalog order.
func (p Profile) Blocks() []string { return p.Catalog.Names() }

// Registry is an immutable set of profiles, safe for concurrent use.
type Registry struct {
	byName map[string]Profile
	names  []string
}

// NewRegistry resolves every definition against base. Names are trimmed and
// must be unique; every block must exist in base.
func NewRegistry(base unicodeblock.Catalog, defs ...Definition) (*Registry, error) {
	r := &Registry{byName: make(map[string]Profile, len(defs))}
	var errs []error
	for _, d := range defs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			errs = append(errs, &unicodeblock.ValidationError{Field: "name", Message: "profile name is required"})
			continue
		}
		if _, dup := r.byName[name]; dup {
			errs = append(errs, &unicodeblock.ValidationError{Field: "name", Message: fmt.Sprintf("duplicate profile %q", name)})
			continue
		}
		if len(d.Blocks) == 0 {
			errs = append(errs, &unicodeblock.ValidationError{Field: "blocks", Message: fmt.Sprintf("profile %q has no blocks", name)})
			continue
		}
		cat, err := base.Subset(d.Blocks...)
		if err != nil {
			errs = append(errs, fmt.Errorf("profile %q: %w", name, err))
			continue
		}
		r.byName[name] = Profile{Name: name, Description: d.Description, Catalog: cat}
		r.names = append(r.names, name)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	slices.Sort(r.names)
	return r, nil
}

// Lookup returns the named profile. A nil registry has no profiles.
func (r *Registry) Lookup(name string) (Profile, error) {
	if r != nil {
		if p, ok := r.byName[name]; ok {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// List returns all profiles sorted by name.
func (r *Registry) List() []Profile {
	if r == nil {
		return nil
	}
	out := make([]Profile, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// Len returns the number of profiles. A nil registry has none.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}
