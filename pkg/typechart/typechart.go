// Package typechart provides the Type Registry: an immutable lookup from
// element name to its single-type effectiveness profile. A Registry is built
// once at startup and shared read-only by every component afterwards.
package typechart

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
)

// DocumentKey is the top-level key of a wrapped type table.
const DocumentKey = "types"

// Registry maps element names to profiles. It has no mutating methods,
// so it is safe for concurrent use without locking.
type Registry struct {
	profiles map[catalogs.Element]catalogs.TypeProfile
}

// New builds a registry from profiles. Duplicate names and profiles whose
// sets overlap are rejected.
func New(profiles ...catalogs.TypeProfile) (*Registry, error) {
	r := &Registry{profiles: make(map[catalogs.Element]catalogs.TypeProfile, len(profiles))}
	for i, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("type profile %d: %w", i, err)
		}
		if _, exists := r.profiles[p.Name]; exists {
			return nil, errors.NewValidationError("name", p.Name,
				fmt.Sprintf("duplicate type profile %q", p.Name))
		}
		r.profiles[p.Name] = p.Clone()
	}
	return r, nil
}

// Load reads a type table from a JSON or YAML file holding either
// {"types": [...]} or a bare list of profiles.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data, catalogs.DocumentFormatFromPath(path), path)
}

// LoadFS reads a type table from name within fsys.
func LoadFS(fsys fs.FS, name string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return Parse(data, catalogs.DocumentFormatFromPath(name), name)
}

// Parse decodes a type table from data.
func Parse(data []byte, format catalogs.DocumentFormat, file string) (*Registry, error) {
	profiles, err := catalogs.DecodeList[catalogs.TypeProfile](data, format, file, DocumentKey)
	if err != nil {
		return nil, err
	}
	return New(profiles...)
}

// Lookup returns a copy of the profile for name, or a NotFoundError.
func (r *Registry) Lookup(name catalogs.Element) (catalogs.TypeProfile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return catalogs.TypeProfile{}, errors.NewNotFoundError("element", string(name))
	}
	return p.Clone(), nil
}

// Has reports whether the registry holds a profile for name.
func (r *Registry) Has(name catalogs.Element) bool {
	_, ok := r.profiles[name]
	return ok
}

// Names returns every registered element, sorted.
func (r *Registry) Names() []catalogs.Element {
	return slices.Sorted(maps.Keys(r.profiles))
}

// Len returns the number of profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}
