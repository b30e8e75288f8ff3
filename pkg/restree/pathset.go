package restree

import "slices"

// PathSet is a set of key paths keyed by their canonical rendering.
type PathSet map[string]struct{}

// NewPathSet builds a set from canonical path strings.
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts a path.
func (s PathSet) Add(p KeyPath) {
	s[p.String()] = struct{}{}
}

// Has reports whether the canonical path is in the set.
func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths.
func (s PathSet) Len() int {
	return len(s)
}

// Sorted returns the canonical paths in lexical order.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// KeyPaths returns the paths in lexical order of their canonical rendering.
func (s PathSet) KeyPaths() []KeyPath {
	sorted := s.Sorted()
	out := make([]KeyPath, len(sorted))
	for i, p := range sorted {
		out[i] = ParseKeyPath(p)
	}
	return out
}

// Union returns a new set with paths from both sets.
func (s PathSet) Union(other PathSet) PathSet {
	out := make(PathSet, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Difference returns the paths of s that are absent from other.
func (s PathSet) Difference(other PathSet) PathSet {
	out := make(PathSet)
	for p := range s {
		if _, ok := other[p]; !ok {
			out[p] = struct{}{}
		}
	}
	return out
}

// Intersection returns the paths present in both sets.
func (s PathSet) Intersection(other PathSet) PathSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(PathSet)
	for p := range small {
		if _, ok := large[p]; ok {
			out[p] = struct{}{}
		}
	}
	return out
}
