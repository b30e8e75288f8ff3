package prune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/prune"
	"github.com/dmitrymomot/localekit/pkg/restree"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

func mustTree(t *testing.T, data map[string]any) *restree.Tree {
	t.Helper()
	tree, err := restree.FromMap(data)
	require.NoError(t, err)
	return tree
}

func record(path string, reason prune.Reason) prune.Record {
	return prune.Record{Path: restree.ParseKeyPath(path), Reason: reason}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	t.Run("removes denied sections", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{
			"workflows": map[string]any{"a": "x"},
			"pricing":   map[string]any{"title": "T"},
		})

		pruned, records := prune.Prune(tree, usage.MustSpec("pricing.*"), usage.MustDeny("workflows"))

		require.True(t, pruned.Equal(mustTree(t, map[string]any{
			"pricing": map[string]any{"title": "T"},
		})))
		require.Equal(t, []prune.Record{record("workflows", prune.ReasonDenied)}, records)
	})

	t.Run("keeps leaves of unknown usage", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{"nav": map[string]any{"old": "x"}})

		pruned, records := prune.Prune(tree, usage.MustSpec("pricing.*"), usage.MustDeny())

		require.True(t, pruned.Equal(tree))
		require.Equal(t, []prune.Record{record("nav.old", prune.ReasonPossiblyUnused)}, records)
		require.Empty(t, prune.Removed(records))
	})

	t.Run("deny wins over wildcard usage", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{
			"x": map[string]any{
				"y": map[string]any{"z": "1", "w": "2"},
				"k": "3",
			},
		})

		pruned, records := prune.Prune(tree, usage.MustSpec("x.*"), usage.MustDeny("x.y"))

		require.True(t, pruned.Equal(mustTree(t, map[string]any{"x": map[string]any{"k": "3"}})))
		require.Equal(t, []prune.Record{record("x.y", prune.ReasonDenied)}, records)
	})

	t.Run("collapses objects emptied by deny", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{
			"home": map[string]any{
				"legacy": map[string]any{"a": "A"},
			},
			"nav": map[string]any{"home": "Home"},
		})

		pruned, records := prune.Prune(tree, usage.MustSpec("nav.home"), usage.MustDeny("home.legacy"))

		require.True(t, pruned.Equal(mustTree(t, map[string]any{"nav": map[string]any{"home": "Home"}})))
		require.Equal(t, []prune.Record{
			record("home", prune.ReasonEmptyObject),
			record("home.legacy", prune.ReasonDenied),
		}, records)
	})

	t.Run("drops empty objects already present in the input", func(t *testing.T) {
		t.Parallel()
		tree := restree.New()
		tree.Set("empty", restree.New())
		tree.Set("title", "T")

		pruned, records := prune.Prune(tree, usage.MustSpec("title"), nil)

		require.Equal(t, []string{"title"}, pruned.Keys())
		require.Equal(t, []prune.Record{record("empty", prune.ReasonEmptyObject)}, records)
	})

	t.Run("preserves key order and leaf types", func(t *testing.T) {
		t.Parallel()
		tree := restree.New()
		tree.Set("z", "last")
		tree.Set("count", 3.0)
		tree.Set("flag", false)
		tree.Set("list", []any{"a"})

		pruned, _ := prune.Prune(tree, nil, nil)

		require.Equal(t, []string{"z", "count", "flag", "list"}, pruned.Keys())
		v, _ := pruned.Get("count")
		require.Equal(t, 3.0, v)
		v, _ = pruned.Get("flag")
		require.Equal(t, false, v)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{
			"workflows": map[string]any{"a": "x"},
			"list":      []any{"a", "b"},
		})
		before := tree.Clone()

		pruned, _ := prune.Prune(tree, nil, usage.MustDeny("workflows"))
		list, _ := pruned.Get("list")
		list.([]any)[0] = "changed"

		require.True(t, tree.Equal(before))
	})

	t.Run("everything denied yields an empty tree", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, map[string]any{"workflows": map[string]any{"a": "x"}})

		pruned, _ := prune.Prune(tree, nil, usage.MustDeny("workflows"))

		require.NotNil(t, pruned)
		require.Zero(t, pruned.Len())
	})
}

func TestPruneIsIdempotent(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, map[string]any{
		"workflows": map[string]any{"a": "x"},
		"examples":  map[string]any{"one": map[string]any{"title": "t"}},
		"home":      map[string]any{"legacy": map[string]any{"a": "A"}, "title": "H"},
		"nav":       map[string]any{"old": "x", "home": "Home"},
		"pricing":   map[string]any{"plans": map[string]any{"pro": "Pro"}},
	})
	spec := usage.MustSpec("nav.home", "pricing.plans.*")
	deny := usage.MustDeny("workflows", "examples", "home.legacy")

	once, _ := prune.Prune(tree, spec, deny)
	twice, records := prune.Prune(once, spec, deny)

	require.True(t, once.Equal(twice))
	require.Empty(t, prune.Removed(records))
}

func TestRecordsAreSorted(t *testing.T) {
	t.Parallel()

	tree := restree.New()
	tree.Set("zeta", "z")
	tree.Set("beta", restree.New())
	tree.Set("alpha", "a")

	_, records := prune.Prune(tree, nil, nil)

	paths := make([]string, len(records))
	for i, r := range records {
		paths[i] = r.Path.String()
	}
	assert.Equal(t, []string{"alpha", "beta", "zeta"}, paths)

	summary := prune.Summary(records)
	assert.Equal(t, 2, summary[prune.ReasonPossiblyUnused])
	assert.Equal(t, 1, summary[prune.ReasonEmptyObject])
}
