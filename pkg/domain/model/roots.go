package model

import "iter"

// RootSet holds distinct root segments in the order they were first seen
type RootSet struct {
	seen  map[string]struct{}
	names []string
}

// NewRootSet returns an empty RootSet
func NewRootSet() *RootSet {
	return &RootSet{seen: make(map[string]struct{})}
}

// Add records the root of entry. It reports whether the root was new.
func (s *RootSet) Add(entry string) bool {
	root := RootOfEntry(entry)
	if _, ok := s.seen[root]; ok {
		return false
	}
	s.seen[root] = struct{}{}
	s.names = append(s.names, root)
	return true
}

// Count returns the number of distinct roots, NoRoot included
func (s *RootSet) Count() int {
	return len(s.names)
}

// Entries returns the distinct roots in first-seen order
func (s *RootSet) Entries() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// CollectRoots consumes entries once and aggregates their roots
func CollectRoots(entries iter.Seq[string]) *RootSet {
	set := NewRootSet()
	for entry := range entries {
		set.Add(entry)
	}
	return set
}

// CountRoots returns the number of distinct roots among entries
func CountRoots(entries iter.Seq[string]) int {
	return CollectRoots(entries).Count()
}
