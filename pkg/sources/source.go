// Package sources defines the boundary between dexmap and the external
// record providers that supply a creature's name and elements by id.
//
//	record, err := provider.FetchByID(ctx, 25)
//	if errors.IsNotFound(err) {
//	    // the provider has no creature with that id
//	}
package sources

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// ID identifies a record provider.
type ID string

// String returns the string representation of a source name.
func (id ID) String() string {
	return string(id)
}

// Known provider ids.
const (
	PokeAPIID ID = "pokeapi"
	LocalID   ID = "local"
)

// IDs returns every known provider id.
func IDs() []ID {
	return []ID{PokeAPIID, LocalID}
}

// IsValid reports whether id is a known provider.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// ParseID parses a provider name, case-insensitively.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.IsValid() {
		return "", errors.NewValidationError("provider", s,
			fmt.Sprintf("unknown provider %q, expected one of %v", s, IDs()))
	}
	return id, nil
}

// Record is what a provider knows about one creature: the raw, unnormalized
// name and its element names in provider order.
type Record struct {
	ID    int      `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Types []string `json:"types" yaml:"types"`
}

// Validate checks that the record is usable for synthesis.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.NewValidationError("name", r.Name, fmt.Sprintf("record %d has no name", r.ID))
	}
	if n := len(r.Types); n == 0 || n > constants.MaxElementsPerEntry {
		return errors.NewValidationError("types", r.Types,
			fmt.Sprintf("record %d has %d types, expected 1 or 2", r.ID, n))
	}
	for _, t := range r.Types {
		if t == "" {
			return errors.NewValidationError("types", r.Types, fmt.Sprintf("record %d has an empty type name", r.ID))
		}
	}
	return nil
}

// Provider fetches creature records by id. Implementations return a
// NotFoundError when they have no record and a ProviderError for transport
// failures or malformed responses.
type Provider interface {
	ID() ID
	FetchByID(ctx context.Context, id int) (Record, error)
}

// Sources is a thread-safe registry of providers keyed by id.
type Sources struct {
	mu      sync.RWMutex
	sources map[ID]Provider
}

// NewSources creates a registry holding providers.
func NewSources(providers ...Provider) *Sources {
	s := &Sources{sources: make(map[ID]Provider, len(providers))}
	for _, p := range providers {
		s.sources[p.ID()] = p
	}
	return s
}

// Get returns a provider by id, or a NotFoundError when none is registered.
func (s *Sources) Get(id ID) (Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.sources[id]
	if !ok {
		return nil, errors.NewNotFoundError("provider", id.String())
	}
	return p, nil
}

// Set registers p under its id, replacing any previous provider.
func (s *Sources) Set(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[p.ID()] = p
}
