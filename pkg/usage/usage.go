// Package usage decides whether resource key paths are referenced by consuming code.
//
// A [Spec] is an allowlist of exact key paths and wildcard prefixes. A wildcard written as
// "faq.*" covers every path nested under "faq" but not "faq" itself. A [Deny] list names
// paths that must be removed together with everything nested under them.
//
//	spec, _ := usage.NewSpec("nav.home", "pricing.plans.*")
//	spec.IsUsed(restree.ParseKeyPath("pricing.plans.pro.title")) // true
//	spec.IsUsed(restree.ParseKeyPath("pricing.plans"))           // false
//
//	deny, _ := usage.NewDeny("workflows")
//	deny.IsDenied(restree.ParseKeyPath("workflows.step1")) // true
//
// Both values are immutable once built and safe for concurrent use.
package usage

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

// WildcardSuffix marks a pattern as covering everything nested under its prefix.
const WildcardSuffix = ".*"

// ErrInvalidPattern is returned for empty patterns or patterns with empty segments.
var ErrInvalidPattern = errors.New("usage: invalid pattern")

// Spec is an allowlist of exact key paths and wildcard prefixes.
type Spec struct {
	exact     map[string]struct{}
	wildcards []restree.KeyPath
	patterns  []string
}

// NewSpec builds a Spec from patterns. Duplicates are ignored.
func NewSpec(patterns ...string) (*Spec, error) {
	s := &Spec{exact: make(map[string]struct{})}
	seen := make(map[string]struct{}, len(patterns))
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}

		if prefix, ok := strings.CutSuffix(pattern, WildcardSuffix); ok {
			path, err := parsePattern(prefix, raw)
			if err != nil {
				return nil, err
			}
			s.wildcards = append(s.wildcards, path)
		} else {
			path, err := parsePattern(pattern, raw)
			if err != nil {
				return nil, err
			}
			s.exact[path.String()] = struct{}{}
		}
		s.patterns = append(s.patterns, pattern)
	}
	slices.Sort(s.patterns)
	return s, nil
}

// MustSpec is like NewSpec but panics on an invalid pattern.
func MustSpec(patterns ...string) *Spec {
	s, err := NewSpec(patterns...)
	if err != nil {
		panic(err)
	}
	return s
}

// IsUsed reports whether path matches an exact pattern or lies strictly under a
// wildcard prefix.
func (s *Spec) IsUsed(path restree.KeyPath) bool {
	if s == nil {
		return false
	}
	if _, ok := s.exact[path.String()]; ok {
		return true
	}
	for _, prefix := range s.wildcards {
		if path.HasProperPrefix(prefix) {
			return true
		}
	}
	return false
}

// Patterns returns the normalized patterns in sorted order.
func (s *Spec) Patterns() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.patterns)
}

// Len returns the number of distinct patterns.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Deny lists key paths to remove along with everything nested under them.
type Deny struct {
	entries []restree.KeyPath
}

// NewDeny builds a Deny list. A trailing ".*" is accepted and means the same as the
// bare prefix.
func NewDeny(entries ...string) (*Deny, error) {
	d := &Deny{}
	seen := make(map[string]struct{}, len(entries))
	for _, raw := range entries {
		entry := strings.TrimSuffix(strings.TrimSpace(raw), WildcardSuffix)
		path, err := parsePattern(entry, raw)
		if err != nil {
			return nil, err
		}
		key := path.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		d.entries = append(d.entries, path)
	}
	slices.SortFunc(d.entries, func(a, b restree.KeyPath) int {
		return strings.Compare(a.String(), b.String())
	})
	return d, nil
}

// MustDeny is like NewDeny but panics on an invalid entry.
func MustDeny(entries ...string) *Deny {
	d, err := NewDeny(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// IsDenied reports whether path equals a deny entry or is nested under one.
func (d *Deny) IsDenied(path restree.KeyPath) bool {
	if d == nil {
		return false
	}
	for _, entry := range d.entries {
		if path.HasPrefix(entry) {
			return true
		}
	}
	return false
}

// Entries returns the deny entries in sorted order.
func (d *Deny) Entries() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.String()
	}
	return out
}

func parsePattern(s, raw string) (restree.KeyPath, error) {
	if s == "" || s == "*" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
	}
	path := restree.ParseKeyPath(s)
	if slices.Contains(path, "") {
		return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, raw)
	}
	return path, nil
}
