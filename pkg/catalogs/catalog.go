// Package catalogs holds the dexmap data model: elements and element sets,
// single-type profiles, catalog entries and the ordered catalog itself,
// together with loading and saving.
package catalogs

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Catalog is an ordered sequence of entries. It is never mutated after
// construction; every transformation returns a new Catalog.
type Catalog struct {
	entries []Entry
}

// NewCatalog returns a catalog holding copies of entries in the given order.
func NewCatalog(entries ...Entry) *Catalog {
	cloned := make([]Entry, len(entries))
	for i, e := range entries {
		cloned[i] = e.Clone()
	}
	return &Catalog{entries: cloned}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns copies of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return []Entry{}
	}
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}

// All calls yield for each entry in order until it returns false.
func (c *Catalog) All(yield func(int, Entry) bool) {
	if c == nil {
		return
	}
	for i, e := range c.entries {
		if !yield(i, e.Clone()) {
			return
		}
	}
}

// IDs returns the entry ids in catalog order.
func (c *Catalog) IDs() []int {
	ids := make([]int, 0, c.Len())
	if c == nil {
		return ids
	}
	for _, e := range c.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Entry returns the entry with the given id.
func (c *Catalog) Entry(id int) (Entry, error) {
	if c != nil {
		if i := slices.IndexFunc(c.entries, func(e Entry) bool { return e.ID == id }); i >= 0 {
			return c.entries[i].Clone(), nil
		}
	}
	return Entry{}, errors.NewNotFoundError("entry", strconv.Itoa(id))
}

// Validate checks the ordering precondition reconciliation relies on: ids in
// [1, maxID], strictly ascending and therefore unique. A maxID of zero means
// constants.MaxID.
func (c *Catalog) Validate(maxID int) error {
	if maxID <= 0 {
		maxID = constants.MaxID
	}
	if c == nil {
		return nil
	}
	prev := 0
	for i, e := range c.entries {
		switch {
		case e.ID < constants.MinID || e.ID > maxID:
			return errors.NewPreconditionError("catalog", i,
				fmt.Sprintf("id %d outside [%d, %d]", e.ID, constants.MinID, maxID))
		case e.ID == prev:
			return errors.NewPreconditionError("catalog", i,
				fmt.Sprintf("duplicate id %d", e.ID))
		case e.ID < prev:
			return errors.NewPreconditionError("catalog", i,
				fmt.Sprintf("id %d follows %d, ids must be ascending", e.ID, prev))
		}
		prev = e.ID
	}
	return nil
}

// Merge returns a new catalog with the entries of c and others sorted by id.
// Two entries sharing an id is a validation error.
func (c *Catalog) Merge(others ...*Catalog) (*Catalog, error) {
	all := c.Entries()
	for _, o := range others {
		all = append(all, o.Entries()...)
	}
	slices.SortStableFunc(all, func(a, b Entry) int { return a.ID - b.ID })
	for i := 1; i < len(all); i++ {
		if all[i].ID == all[i-1].ID {
			return nil, errors.NewValidationError("id", all[i].ID,
				fmt.Sprintf("entry %d appears more than once", all[i].ID))
		}
	}
	return &Catalog{entries: all}, nil
}
