package locales_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("keeps JSON key order", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"zeta": "z", "alpha": {"b": "B", "a": "A"}, "mid": 1}`), locales.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha", "mid"}, tree.Keys())

		alpha, ok := tree.Get("alpha")
		require.True(t, ok)
		require.Equal(t, []string{"b", "a"}, alpha.(*restree.Tree).Keys())
	})

	t.Run("treats lists and scalars as leaves", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"list": ["a", {"x": 1}], "flag": true, "none": null, "n": 2.5}`), locales.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"flag", "list", "n", "none"}, restree.ExtractLeafPaths(tree).Sorted())

		v, _ := tree.Get("flag")
		require.Equal(t, true, v)
		v, _ = tree.Get("n")
		require.Equal(t, 2.5, v)
		v, _ = tree.Get("none")
		require.Nil(t, v)
	})

	t.Run("decodes unicode escapes", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"title": "café 中文"}`), locales.FormatJSON)
		require.NoError(t, err)
		v, _ := tree.Get("title")
		require.Equal(t, "café 中文", v)
	})

	t.Run("decodes escaped solidus and surrogate pairs", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"hero": {"badge": "\ud83d\ude80 New"}, "url": "a\/b"}`), locales.FormatJSON)
		require.NoError(t, err)

		v, ok := restree.Lookup(tree, restree.ParseKeyPath("hero.badge"))
		require.True(t, ok)
		require.Equal(t, "🚀 New", v)
		v, _ = tree.Get("url")
		require.Equal(t, "a/b", v)
	})

	t.Run("last duplicate key wins in first position", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"a": "1", "b": "x", "a": "2"}`), locales.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, tree.Keys())
		v, _ := tree.Get("a")
		require.Equal(t, "2", v)
	})

	t.Run("keeps integers and nested list objects", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte(`{"count": 3, "items": [{"k": "v"}, [1, 2]]}`), locales.FormatJSON)
		require.NoError(t, err)
		v, _ := tree.Get("count")
		require.Equal(t, 3, v)
		v, _ = tree.Get("items")
		require.Equal(t, []any{map[string]any{"k": "v"}, []any{1, 2}}, v)
	})

	t.Run("decodes YAML", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Decode([]byte("nav:\n  home: Accueil\n  login: Connexion\n"), locales.FormatYAML)
		require.NoError(t, err)
		require.Equal(t, []string{"nav.home", "nav.login"}, restree.ExtractLeafPaths(tree).Sorted())
	})

	t.Run("rejects a non-mapping root", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{`["a"]`, `"text"`, `42`} {
			_, err := locales.Decode([]byte(doc), locales.FormatJSON)
			require.ErrorIs(t, err, restree.ErrMalformedTree, doc)
		}
		_, err := locales.Decode([]byte(""), locales.FormatYAML)
		require.ErrorIs(t, err, restree.ErrMalformedTree)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Decode([]byte(`{"a": `), locales.FormatJSON)
		require.ErrorIs(t, err, locales.ErrInvalidFile)

		_, err = locales.Decode([]byte("a: b"), locales.FormatJSON)
		require.ErrorIs(t, err, locales.ErrInvalidFile)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Decode([]byte(`{}`), locales.Format("toml"))
		require.ErrorIs(t, err, locales.ErrUnknownFormat)
	})
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes ordered indented JSON without escaping", func(t *testing.T) {
		t.Parallel()
		tree := restree.New()
		nav := restree.New()
		nav.Set("home", "Startseite & <Übersicht>")
		nav.Set("count", 3)
		tree.Set("nav", nav)
		tree.Set("empty", restree.New())
		tree.Set("list", []any{"a", true})
		tree.Set("zh", "中文")

		data, err := locales.EncodeJSON(tree)
		require.NoError(t, err)

		want := `{
  "nav": {
    "home": "Startseite & <Übersicht>",
    "count": 3
  },
  "empty": {},
  "list": [
    "a",
    true
  ],
  "zh": "中文"
}
`
		require.Equal(t, want, string(data))
	})

	t.Run("round trips through decode", func(t *testing.T) {
		t.Parallel()
		src := []byte(`{"b": {"y": "1", "x": ["p", "q"]}, "a": "2"}`)
		tree, err := locales.Decode(src, locales.FormatJSON)
		require.NoError(t, err)

		data, err := locales.EncodeJSON(tree)
		require.NoError(t, err)

		again, err := locales.Decode(data, locales.FormatJSON)
		require.NoError(t, err)
		require.True(t, tree.Equal(again))
		require.Equal(t, tree.Keys(), again.Keys())
	})
}

func TestEncodeYAML(t *testing.T) {
	t.Parallel()

	tree := restree.New()
	nav := restree.New()
	nav.Set("login", "Connexion")
	nav.Set("home", "Accueil")
	tree.Set("nav", nav)

	data, err := locales.EncodeYAML(tree)
	require.NoError(t, err)
	require.Equal(t, "nav:\n  login: Connexion\n  home: Accueil\n", string(data))

	again, err := locales.Decode(data, locales.FormatYAML)
	require.NoError(t, err)
	require.True(t, tree.Equal(again))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]locales.Format{
		"json":  locales.FormatJSON,
		".JSON": locales.FormatJSON,
		"yml":   locales.FormatYAML,
		"yaml":  locales.FormatYAML,
	} {
		got, err := locales.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := locales.ParseFormat("ini")
	require.ErrorIs(t, err, locales.ErrUnknownFormat)
}
