package usage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/restree"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

func TestSpecIsUsed(t *testing.T) {
	t.Parallel()

	spec := usage.MustSpec("a.*", "nav.home", "pricing.plans.*", "pricing.title")

	tests := []struct {
		path string
		want bool
	}{
		{"a.b.c", true},
		{"a.b", true},
		{"a", false},
		{"ab.c", false},
		{"nav.home", true},
		{"nav.homepage", false},
		{"nav", false},
		{"pricing.plans.pro.title", true},
		{"pricing.plans", false},
		{"pricing.title", true},
		{"pricing.subtitle", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, spec.IsUsed(restree.ParseKeyPath(tt.path)))
		})
	}
}

func TestSpecOverlappingRules(t *testing.T) {
	t.Parallel()

	spec := usage.MustSpec("faq.*", "faq.q1")
	require.True(t, spec.IsUsed(restree.ParseKeyPath("faq.q1")))
	require.True(t, spec.IsUsed(restree.ParseKeyPath("faq.q2")))
	require.False(t, spec.IsUsed(restree.ParseKeyPath("faq")))
}

func TestNewSpec(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and deduplicates patterns", func(t *testing.T) {
		t.Parallel()
		spec, err := usage.NewSpec(" nav.home ", "nav.home", "about.*")
		require.NoError(t, err)
		require.Equal(t, []string{"about.*", "nav.home"}, spec.Patterns())
		require.Equal(t, 2, spec.Len())
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		t.Parallel()
		for _, p := range []string{"", "*", ".*", "a..b", "a..*", ".a"} {
			_, err := usage.NewSpec(p)
			require.ErrorIs(t, err, usage.ErrInvalidPattern, "pattern %q", p)
		}
	})

	t.Run("nil spec uses nothing", func(t *testing.T) {
		t.Parallel()
		require.False(t, (*usage.Spec)(nil).IsUsed(restree.ParseKeyPath("nav.home")))
		require.Zero(t, (*usage.Spec)(nil).Len())
	})
}

func TestDenyIsDenied(t *testing.T) {
	t.Parallel()

	deny := usage.MustDeny("workflows", "examples.*", "x.y")

	tests := []struct {
		path string
		want bool
	}{
		{"workflows", true},
		{"workflows.step1.title", true},
		{"workflowsOld", false},
		{"examples", true},
		{"examples.one", true},
		{"x", false},
		{"x.y", true},
		{"x.y.z", true},
		{"x.yz", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, deny.IsDenied(restree.ParseKeyPath(tt.path)))
		})
	}

	require.Equal(t, []string{"examples", "workflows", "x.y"}, deny.Entries())
	require.False(t, (*usage.Deny)(nil).IsDenied(restree.ParseKeyPath("workflows")))
}

func TestNewDenyRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	_, err := usage.NewDeny("ok", "")
	require.ErrorIs(t, err, usage.ErrInvalidPattern)
}
