package localediff

import (
	"cmp"
	"maps"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

// Result is the comparison of one locale against the baseline.
type Result struct {
	Missing      restree.PathSet
	Extra        restree.PathSet
	Completeness float64
	BaselineKeys int
	LocaleKeys   int
}

// Complete reports whether the locale has every baseline key.
func (r Result) Complete() bool {
	return r.Missing.Len() == 0
}

// Percent returns completeness as a percentage.
func (r Result) Percent() float64 {
	return r.Completeness * 100
}

// Diff compares the leaf key paths of locale against baseline.
func Diff(baseline, locale *restree.Tree) Result {
	return diffPaths(restree.ExtractLeafPaths(baseline), restree.ExtractLeafPaths(locale))
}

func diffPaths(base, local restree.PathSet) Result {
	res := Result{
		Missing:      base.Difference(local),
		Extra:        local.Difference(base),
		Completeness: 1.0,
		BaselineKeys: base.Len(),
		LocaleKeys:   local.Len(),
	}
	if base.Len() > 0 {
		shared := base.Len() - res.Missing.Len()
		res.Completeness = float64(shared) / float64(base.Len())
	}
	return res
}

// DiffAll compares every locale against baseline. Locales with a nil tree are reported as
// errors and excluded; the rest are still compared. Errors are sorted by locale.
func DiffAll(baseline *restree.Tree, locales map[string]*restree.Tree) (map[string]Result, []error) {
	base := restree.ExtractLeafPaths(baseline)
	results := make(map[string]Result, len(locales))
	var errs []error

	for _, id := range slices.Sorted(maps.Keys(locales)) {
		tree := locales[id]
		if tree == nil {
			errs = append(errs, &LocaleError{Locale: id, Err: ErrMalformedTree})
			continue
		}
		results[id] = diffPaths(base, restree.ExtractLeafPaths(tree))
	}
	return results, errs
}

// CheckBaseline returns ErrEmptyBaseline when the baseline has no leaf keys.
func CheckBaseline(baseline *restree.Tree) error {
	if restree.ExtractLeafPaths(baseline).Len() == 0 {
		return ErrEmptyBaseline
	}
	return nil
}

// GroupByTopSegment buckets paths by their first segment. Each bucket is sorted.
func GroupByTopSegment(paths restree.PathSet) map[string][]restree.KeyPath {
	groups := make(map[string][]restree.KeyPath)
	for p := range paths {
		kp := restree.ParseKeyPath(p)
		groups[kp.Top()] = append(groups[kp.Top()], kp)
	}
	for _, group := range groups {
		slices.SortFunc(group, func(a, b restree.KeyPath) int {
			return cmp.Compare(a.String(), b.String())
		})
	}
	return groups
}

// SortedGroups returns the group names of GroupByTopSegment output in sorted order.
func SortedGroups(groups map[string][]restree.KeyPath) []string {
	return slices.Sorted(maps.Keys(groups))
}
