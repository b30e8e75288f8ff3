// Package prune removes unused branches from resource trees.
//
// Pruning walks a tree top-down and applies three rules:
//
//   - a path on the deny list is dropped with everything under it;
//   - an internal node left with no children is dropped instead of being kept empty;
//   - a leaf whose usage is unknown is kept and flagged as possibly unused.
//
// Only deny entries delete leaves. The usage allowlist is static and necessarily
// incomplete, so a leaf it does not mention is never discarded:
//
//	spec := usage.MustSpec("pricing.*")
//	deny := usage.MustDeny("workflows")
//	pruned, records := prune.Prune(tree, spec, deny)
//
// The input tree is never modified. Records come back sorted by key path so that reports
// built from them are stable.
package prune

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/restree"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

// Reason explains why a path appears in the prune log.
type Reason string

const (
	// ReasonDenied marks a subtree removed because it matched a deny entry.
	ReasonDenied Reason = "denied"
	// ReasonEmptyObject marks an internal node removed because nothing under it survived.
	ReasonEmptyObject Reason = "empty object"
	// ReasonPossiblyUnused marks a leaf kept despite matching no usage pattern.
	ReasonPossiblyUnused Reason = "possibly unused"
)

// Removed reports whether the reason deletes data.
func (r Reason) Removed() bool {
	return r == ReasonDenied || r == ReasonEmptyObject
}

// Record is a single prune log entry.
type Record struct {
	Path   restree.KeyPath
	Reason Reason
}

// Prune returns a copy of tree without denied subtrees and empty internal nodes, together
// with the sorted prune log. A nil tree prunes to an empty tree.
func Prune(tree *restree.Tree, spec *usage.Spec, deny *usage.Deny) (*restree.Tree, []Record) {
	p := &pruner{spec: spec, deny: deny}
	out := p.node(tree, restree.KeyPath{})
	if out == nil {
		out = restree.New()
	}
	slices.SortFunc(p.records, compareRecords)
	return out, p.records
}

type pruner struct {
	spec    *usage.Spec
	deny    *usage.Deny
	records []Record
}

// node prunes an internal node and returns nil when nothing under it survives.
func (p *pruner) node(t *restree.Tree, path restree.KeyPath) *restree.Tree {
	if t == nil {
		return nil
	}
	out := restree.New()
	for _, key := range t.Keys() {
		value, _ := t.Get(key)
		childPath := path.Append(key)

		if p.deny.IsDenied(childPath) {
			p.record(childPath, ReasonDenied)
			continue
		}

		if sub, ok := value.(*restree.Tree); ok {
			if kept := p.node(sub, childPath); kept != nil {
				out.Set(key, kept)
			} else {
				p.record(childPath, ReasonEmptyObject)
			}
			continue
		}

		if !p.spec.IsUsed(childPath) {
			p.record(childPath, ReasonPossiblyUnused)
		}
		out.Set(key, restree.CloneValue(value))
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

func (p *pruner) record(path restree.KeyPath, reason Reason) {
	p.records = append(p.records, Record{Path: path, Reason: reason})
}

func compareRecords(a, b Record) int {
	return cmp.Or(
		cmp.Compare(a.Path.String(), b.Path.String()),
		cmp.Compare(a.Reason, b.Reason),
	)
}

// Removed filters records down to entries that deleted data.
func Removed(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Reason.Removed() {
			out = append(out, r)
		}
	}
	return out
}

// Summary counts records per reason.
func Summary(records []Record) map[Reason]int {
	out := make(map[Reason]int, 3)
	for _, r := range records {
		out[r.Reason]++
	}
	return out
}
