// Package differ detects drift between stored and recomputed catalog entries
// and describes it field by field.
package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/dexmap/pkg/catalogs"
)

// ChangeType represents the type of change.
type ChangeType string

const (
	// ChangeTypeUpdate indicates elements were added to or removed from a field.
	ChangeTypeUpdate ChangeType = "update"
	// ChangeTypeReorder indicates a field holds the right elements in the
	// wrong order or with repeats.
	ChangeTypeReorder ChangeType = "reorder"
)

// Derived entry fields compared by the differ.
const (
	FieldWeaknesses  = "weaknesses"
	FieldResistances = "resistances"
	FieldImmunities  = "immunities"
)

// FieldChange describes how one derived field changed.
type FieldChange struct {
	Field    string             `json:"field" yaml:"field"`
	Type     ChangeType         `json:"type" yaml:"type"`
	Added    []catalogs.Element `json:"added,omitempty" yaml:"added,omitempty"`
	Removed  []catalogs.Element `json:"removed,omitempty" yaml:"removed,omitempty"`
	OldValue []catalogs.Element `json:"old" yaml:"old"`
	NewValue []catalogs.Element `json:"new" yaml:"new"`
}

// String renders the change compactly, e.g. "weaknesses +ground -fire".
func (c FieldChange) String() string {
	if c.Type == ChangeTypeReorder {
		return c.Field + " reordered"
	}
	parts := []string{c.Field}
	for _, e := range c.Added {
		parts = append(parts, "+"+string(e))
	}
	for _, e := range c.Removed {
		parts = append(parts, "-"+string(e))
	}
	return strings.Join(parts, " ")
}

// EntryUpdate is the drift found on one existing entry.
type EntryUpdate struct {
	ID       int            `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Existing catalogs.Entry `json:"-" yaml:"-"`
	New      catalogs.Entry `json:"-" yaml:"-"`
	Changes  []FieldChange  `json:"changes" yaml:"changes"`
}

// Fields returns the names of the fields that changed, in comparison order.
func (u EntryUpdate) Fields() []string {
	out := make([]string, len(u.Changes))
	for i, c := range u.Changes {
		out[i] = c.Field
	}
	return out
}

// Describe joins the field changes into one line.
func (u EntryUpdate) Describe() string {
	parts := make([]string, len(u.Changes))
	for i, c := range u.Changes {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}

// Changeset compares a source catalog with an updated one.
type Changeset struct {
	Added   []catalogs.Entry // entries only present in the update
	Updated []EntryUpdate    // entries whose derived fields changed
	Removed []catalogs.Entry // entries missing from the update
}

// HasChanges reports whether anything differs.
func (c *Changeset) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Updated) > 0 || len(c.Removed) > 0
}

// Summary returns a one-line count of the changes.
func (c *Changeset) Summary() string {
	return fmt.Sprintf("%d added, %d updated, %d removed", len(c.Added), len(c.Updated), len(c.Removed))
}
