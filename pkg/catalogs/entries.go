package catalogs

import (
	"maps"
	"slices"
	"sync"
)

// Entries is a concurrent safe, id-keyed collection of entries. Synthesis
// workers write into it; List and Catalog return id order regardless of
// insertion order.
type Entries struct {
	mu      sync.RWMutex
	entries map[int]Entry
}

// NewEntries creates an empty collection.
func NewEntries() *Entries {
	return &Entries{entries: make(map[int]Entry)}
}

// Set stores a copy of entry under its id, replacing any previous value.
func (s *Entries) Set(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry.Clone()
}

// Get returns the entry for id and whether it exists.
func (s *Entries) Get(id int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return e.Clone(), true
}

// Len returns the number of entries.
func (s *Entries) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// IDs returns the stored ids in ascending order.
func (s *Entries) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.entries))
}

// List returns copies of the entries sorted by id.
func (s *Entries) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.entries))
	for _, id := range slices.Sorted(maps.Keys(s.entries)) {
		out = append(out, s.entries[id].Clone())
	}
	return out
}

// Catalog returns the entries as a catalog sorted by id.
func (s *Entries) Catalog() *Catalog {
	return &Catalog{entries: s.List()}
}
