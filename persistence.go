package dexmap

import (
	"github.com/agentstation/dexmap/pkg/save"
)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the current catalog with options
	Save(opts ...save.Option) error
}

// Save persists the current catalog.
func (d *dexmap) Save(opts ...save.Option) error {
	return d.Catalog().Save(opts...)
}
