package restree

import (
	"slices"
	"strings"
)

// Separator joins key path segments in the canonical rendering.
const Separator = "."

// KeyPath is an ordered sequence of segments addressing a node from the tree root.
type KeyPath []string

// ParseKeyPath splits a canonical dot-joined path into segments.
// The empty string parses to the root (empty) path.
func ParseKeyPath(s string) KeyPath {
	if s == "" {
		return KeyPath{}
	}
	return KeyPath(strings.Split(s, Separator))
}

// String returns the canonical dot-joined rendering.
func (p KeyPath) String() string {
	return strings.Join(p, Separator)
}

// Append returns a new path extended by seg. The receiver's backing array is never shared
// with the result, so sibling paths built from the same parent stay independent.
func (p KeyPath) Append(seg string) KeyPath {
	out := make(KeyPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Equal reports whether both paths have identical segments.
func (p KeyPath) Equal(other KeyPath) bool {
	return slices.Equal(p, other)
}

// HasPrefix reports whether prefix addresses p itself or one of its ancestors.
func (p KeyPath) HasPrefix(prefix KeyPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}

// HasProperPrefix reports whether prefix addresses a strict ancestor of p.
func (p KeyPath) HasProperPrefix(prefix KeyPath) bool {
	return len(p) > len(prefix) && p.HasPrefix(prefix)
}

// Top returns the first segment, or "" for the root path.
func (p KeyPath) Top() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Len returns the number of segments.
func (p KeyPath) Len() int {
	return len(p)
}
