package types

import "sort"

// StringSet is an unordered, deduplicated set of strings.
// A nil StringSet is readable and behaves as an empty set.
type StringSet map[string]struct{}

// NewStringSet creates a set holding the given items
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	s.Add(items...)
	return s
}

// Add inserts items into the set
func (s StringSet) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Has reports whether item is in the set
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set
func (s StringSet) Len() int {
	return len(s)
}

// Union returns a new set holding the items of both sets
func (s StringSet) Union(other StringSet) StringSet {
	out := make(StringSet, len(s)+len(other))
	for item := range s {
		out[item] = struct{}{}
	}
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

// Clone returns an independent copy. Cloning a nil set yields an empty, non-nil set.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Sorted returns the items in lexical order
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
