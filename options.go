package dexmap

import (
	"time"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sources"
	"github.com/agentstation/dexmap/pkg/typechart"
)

// config holds the configuration for a Dexmap instance
type config struct {
	registry     *typechart.Registry
	catalog      *catalogs.Catalog
	provider     sources.Provider
	workers      int
	fetchTimeout time.Duration
	maxID        int
}

func defaultConfig() *config {
	return &config{
		workers:      constants.DefaultWorkers,
		fetchTimeout: constants.DefaultFetchTimeout,
		maxID:        constants.MaxID,
	}
}

// Option is a function that configures a Dexmap instance
type Option func(*config) error

// WithRegistry configures the type table effectiveness is derived from
func WithRegistry(registry *typechart.Registry) Option {
	return func(c *config) error {
		if registry == nil {
			return &errors.ValidationError{Field: "registry", Message: "cannot be nil"}
		}
		c.registry = registry
		return nil
	}
}

// WithCatalog configures the existing catalog to update
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(c *config) error {
		c.catalog = catalog
		return nil
	}
}

// WithProvider configures where records for missing ids come from
func WithProvider(provider sources.Provider) Option {
	return func(c *config) error {
		if provider == nil {
			return &errors.ValidationError{Field: "provider", Message: "cannot be nil"}
		}
		c.provider = provider
		return nil
	}
}

// WithWorkers configures how many ids are synthesized at once
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 || n > constants.MaxWorkers {
			return &errors.ValidationError{Field: "workers", Value: n, Message: "out of range"}
		}
		c.workers = n
		return nil
	}
}

// WithFetchTimeout configures the timeout of each provider call, zero disables it
func WithFetchTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return &errors.ValidationError{Field: "fetch_timeout", Value: d, Message: "cannot be negative"}
		}
		c.fetchTimeout = d
		return nil
	}
}

// WithMaxID configures the highest id the catalog should cover
func WithMaxID(maxID int) Option {
	return func(c *config) error {
		if maxID < constants.MinID {
			return &errors.ValidationError{Field: "max_id", Value: maxID, Message: "must be at least 1"}
		}
		c.maxID = maxID
		return nil
	}
}
