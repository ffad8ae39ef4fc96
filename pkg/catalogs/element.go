package catalogs

import (
	"slices"
)

// Element is an elemental type name such as "fire" or "water".
// Identity is case-sensitive.
type Element string

// String returns the element name.
func (e Element) String() string {
	return string(e)
}

// ElementSet is a set of elements. The zero value is an empty, read-only set;
// use NewElementSet or Add on a non-nil set to populate it.
type ElementSet map[Element]struct{}

// NewElementSet returns a set holding elems. Duplicates collapse.
func NewElementSet(elems ...Element) ElementSet {
	s := make(ElementSet, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts elems into s.
func (s ElementSet) Add(elems ...Element) {
	for _, e := range elems {
		s[e] = struct{}{}
	}
}

// Has reports whether e is in s.
func (s ElementSet) Has(e Element) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in s.
func (s ElementSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of s and every other set.
func (s ElementSet) Union(others ...ElementSet) ElementSet {
	out := make(ElementSet, len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	for _, o := range others {
		for e := range o {
			out[e] = struct{}{}
		}
	}
	return out
}

// Minus returns a new set with the members of s found in none of others.
func (s ElementSet) Minus(others ...ElementSet) ElementSet {
	out := make(ElementSet, len(s))
	for e := range s {
		excluded := false
		for _, o := range others {
			if o.Has(e) {
				excluded = true
				break
			}
		}
		if !excluded {
			out[e] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set with the members common to s and o.
func (s ElementSet) Intersect(o ElementSet) ElementSet {
	out := make(ElementSet)
	for e := range s {
		if o.Has(e) {
			out[e] = struct{}{}
		}
	}
	return out
}

// IsDisjoint reports whether s and o share no members.
func (s ElementSet) IsDisjoint(o ElementSet) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for e := range small {
		if large.Has(e) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same members.
func (s ElementSet) Equal(o ElementSet) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// Sorted returns the members of s in lexicographic order.
// The result is never nil so it serializes as an empty list.
func (s ElementSet) Sorted() []Element {
	out := make([]Element, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Elements converts raw names to elements, preserving order.
func Elements(names ...string) []Element {
	out := make([]Element, len(names))
	for i, n := range names {
		out[i] = Element(n)
	}
	return out
}

// ElementStrings converts elements back to plain strings, preserving order.
func ElementStrings(elems []Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = string(e)
	}
	return out
}
