package differ

import (
	"slices"

	"github.com/agentstation/dexmap/pkg/catalogs"
)

// Differ detects changes between entries.
type Differ interface {
	// Entry compares the derived fields of two versions of the same entry.
	// It returns nil when the sequences match exactly.
	Entry(existing, updated catalogs.Entry) *EntryUpdate

	// Entries compares two entry lists keyed by id.
	Entries(existing, updated []catalogs.Entry) *Changeset
}

type differ struct {
	ignoreFields map[string]bool
}

// New creates a Differ.
func New(opts ...Option) Differ {
	d := &differ{ignoreFields: make(map[string]bool)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Entry compares stored and recomputed sequences. Any difference counts,
// ordering and repeated elements included.
func (d *differ) Entry(existing, updated catalogs.Entry) *EntryUpdate {
	fields := []struct {
		name     string
		old, new []catalogs.Element
	}{
		{FieldWeaknesses, existing.Weaknesses, updated.Weaknesses},
		{FieldResistances, existing.Resistances, updated.Resistances},
		{FieldImmunities, existing.Immunities, updated.Immunities},
	}

	var changes []FieldChange
	for _, f := range fields {
		if d.ignoreFields[f.name] {
			continue
		}
		if change := compareField(f.name, f.old, f.new); change != nil {
			changes = append(changes, *change)
		}
	}
	if len(changes) == 0 {
		return nil
	}
	return &EntryUpdate{
		ID:       updated.ID,
		Name:     updated.Name,
		Existing: existing.Clone(),
		New:      updated.Clone(),
		Changes:  changes,
	}
}

// Entries compares two lists by id. Results follow the order of the inputs.
func (d *differ) Entries(existing, updated []catalogs.Entry) *Changeset {
	changeset := &Changeset{
		Added:   []catalogs.Entry{},
		Updated: []EntryUpdate{},
		Removed: []catalogs.Entry{},
	}

	existingByID := make(map[int]catalogs.Entry, len(existing))
	for _, e := range existing {
		existingByID[e.ID] = e
	}
	updatedIDs := make(map[int]struct{}, len(updated))

	for _, u := range updated {
		updatedIDs[u.ID] = struct{}{}
		e, ok := existingByID[u.ID]
		if !ok {
			changeset.Added = append(changeset.Added, u.Clone())
			continue
		}
		if update := d.Entry(e, u); update != nil {
			changeset.Updated = append(changeset.Updated, *update)
		}
	}

	for _, e := range existing {
		if _, ok := updatedIDs[e.ID]; !ok {
			changeset.Removed = append(changeset.Removed, e.Clone())
		}
	}

	return changeset
}

func compareField(name string, old, updated []catalogs.Element) *FieldChange {
	if slices.Equal(old, updated) {
		return nil
	}

	oldSet := catalogs.NewElementSet(old...)
	newSet := catalogs.NewElementSet(updated...)
	change := &FieldChange{
		Field:    name,
		Type:     ChangeTypeUpdate,
		Added:    newSet.Minus(oldSet).Sorted(),
		Removed:  oldSet.Minus(newSet).Sorted(),
		OldValue: slices.Clone(old),
		NewValue: slices.Clone(updated),
	}
	if len(change.Added) == 0 && len(change.Removed) == 0 {
		change.Type = ChangeTypeReorder
		change.Added, change.Removed = nil, nil
	}
	return change
}
