// Package dexmap keeps a creature catalog's type-effectiveness data
// consistent with a type table. An update recomputes every existing entry,
// synthesizes entries for ids the catalog lacks and exports the merged,
// id-sorted result.
//
//	dm, err := dexmap.New(
//	    dexmap.WithRegistry(registry),
//	    dexmap.WithCatalog(catalog),
//	    dexmap.WithProvider(pokeapi.New()),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := dm.Update(ctx, sync.WithOutputPath("updated_pokemon.json"))
package dexmap

import (
	"fmt"
	"sync"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/typechart"
)

// Compile-time interface check to ensure proper implementation.
var _ Dexmap = (*dexmap)(nil)

// Dexmap manages a catalog, the type table it is derived from and the
// provider that fills its gaps.
type Dexmap interface {
	Updater
	Persistence

	// Catalog returns the current catalog
	Catalog() *catalogs.Catalog

	// Registry returns the type table
	Registry() *typechart.Registry

	// OnEntryCorrected registers a callback for drifted entries
	OnEntryCorrected(EntryCorrectedHook)

	// OnEntrySynthesized registers a callback for synthesized entries
	OnEntrySynthesized(EntrySynthesizedHook)

	// OnSynthesisFailed registers a callback for ids that failed to synthesize
	OnSynthesisFailed(SynthesisFailedHook)
}

// dexmap is the internal implementation of the Dexmap interface
type dexmap struct {
	mu      sync.RWMutex
	catalog *catalogs.Catalog
	config  *config

	// Event hooks
	*hooks
}

// New creates a new Dexmap instance with the given options. A registry and
// a provider are required; the catalog defaults to empty.
func New(opts ...Option) (Dexmap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.registry == nil {
		return nil, &errors.ConfigError{Component: "dexmap", Message: "a type registry is required"}
	}
	if cfg.provider == nil {
		return nil, &errors.ConfigError{Component: "dexmap", Message: "a record provider is required"}
	}

	catalog := cfg.catalog
	if catalog == nil {
		catalog = catalogs.NewCatalog()
	}

	return &dexmap{
		catalog: catalog,
		config:  cfg,
		hooks:   newHooks(),
	}, nil
}

// Catalog returns the current catalog
func (d *dexmap) Catalog() *catalogs.Catalog {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.catalog
}

// Registry returns the type table
func (d *dexmap) Registry() *typechart.Registry {
	return d.config.registry
}

// setCatalog replaces the current catalog
func (d *dexmap) setCatalog(catalog *catalogs.Catalog) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog = catalog
}
