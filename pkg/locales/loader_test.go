package locales_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en/common.json":        {Data: []byte(`{"nav": {"home": "Home"}}`)},
		"de/common.json":        {Data: []byte(`{"nav": {"home": "Startseite"}}`)},
		"fr/common.yaml":        {Data: []byte("nav:\n  home: Accueil\n")},
		"pt_BR/common.yml":      {Data: []byte("nav:\n  home: Início\n")},
		"ja/other.json":         {Data: []byte(`{}`)},
		"not a tag/common.json": {Data: []byte(`{}`)},
		".git/common.json":      {Data: []byte(`{}`)},
		"README.md":             {Data: []byte("docs")},
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("finds namespace documents per locale", func(t *testing.T) {
		t.Parallel()
		found, err := locales.Discover(testFS(), "common")
		require.NoError(t, err)

		ids := make([]string, len(found))
		for i, l := range found {
			ids[i] = l.ID
		}
		require.Equal(t, []string{"de", "en", "fr", "not a tag", "pt_BR"}, ids)

		require.Equal(t, "fr/common.yaml", found[2].Path)
		require.Equal(t, locales.FormatYAML, found[2].Format)
		require.True(t, found[0].Valid())
		require.False(t, found[3].Valid())
		require.Equal(t, "pt-BR", found[4].Tag.String())
	})

	t.Run("defaults the namespace", func(t *testing.T) {
		t.Parallel()
		found, err := locales.Discover(testFS(), "")
		require.NoError(t, err)
		require.Len(t, found, 5)
	})

	t.Run("uses other namespaces", func(t *testing.T) {
		t.Parallel()
		found, err := locales.Discover(testFS(), "other")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, "ja", found[0].ID)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON and YAML", func(t *testing.T) {
		t.Parallel()
		tree, err := locales.Load(testFS(), "de/common.json")
		require.NoError(t, err)
		v, _ := restree.Lookup(tree, restree.ParseKeyPath("nav.home"))
		require.Equal(t, "Startseite", v)

		tree, err = locales.Load(testFS(), "fr/common.yaml")
		require.NoError(t, err)
		v, _ = restree.Lookup(tree, restree.ParseKeyPath("nav.home"))
		require.Equal(t, "Accueil", v)
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Load(testFS(), "ko/common.json")
		require.ErrorIs(t, err, locales.ErrNotFound)
	})

	t.Run("reports malformed roots with the file name", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"ko/common.json": {Data: []byte(`[1, 2]`)}}
		_, err := locales.Load(fsys, "ko/common.json")
		require.ErrorIs(t, err, restree.ErrMalformedTree)
		require.Contains(t, err.Error(), "ko/common.json")
	})
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tag, err := locales.ParseLocale("zh_Hant")
	require.NoError(t, err)
	require.Equal(t, "zh-Hant", tag.String())

	_, err = locales.ParseLocale("")
	require.ErrorIs(t, err, locales.ErrInvalidLocale)

	_, err = locales.ParseLocale("not a tag")
	require.ErrorIs(t, err, locales.ErrInvalidLocale)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "German", locales.DisplayName("de"))
	require.Equal(t, "Japanese", locales.DisplayName("ja"))
	require.Equal(t, "Deutsch", locales.NativeName("de"))
	require.Equal(t, "pt-BR", locales.Canonical("pt_br"))
	require.Equal(t, "not a tag", locales.DisplayName("not a tag"))
}

func TestDirStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reads, writes and enumerates", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "common.json"), []byte(`{"b": "B", "a": "A"}`), 0o600))

		store := locales.NewDirStore(dir, "")
		require.Equal(t, "common", store.Namespace())
		require.Equal(t, dir, store.Root())

		found, err := store.Locales(ctx)
		require.NoError(t, err)
		require.Len(t, found, 1)

		tree, err := store.Read(ctx, found[0])
		require.NoError(t, err)
		tree.Set("c", "Ç")
		require.NoError(t, store.Write(ctx, found[0], tree))

		data, err := os.ReadFile(filepath.Join(dir, "en", "common.json"))
		require.NoError(t, err)
		require.Equal(t, "{\n  \"b\": \"B\",\n  \"a\": \"A\",\n  \"c\": \"Ç\"\n}\n", string(data))

		info, err := os.Stat(filepath.Join(dir, "en", "common.json"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("creates documents for new locales", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		store := locales.NewDirStore(dir, "common")

		loc := store.Locale("ko")
		require.Equal(t, locales.FormatJSON, loc.Format)
		require.True(t, loc.Valid())

		tree := restree.New()
		tree.Set("hello", "안녕하세요")
		require.NoError(t, store.Write(ctx, loc, tree))

		again, err := store.Read(ctx, store.Locale("ko"))
		require.NoError(t, err)
		require.True(t, tree.Equal(again))
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		store := locales.NewDirStore(t.TempDir(), "common")

		_, err := store.Locales(cctx)
		require.ErrorIs(t, err, context.Canceled)
		_, err = store.Read(cctx, store.Locale("en"))
		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, store.Write(cctx, store.Locale("en"), restree.New()), context.Canceled)
	})
}
