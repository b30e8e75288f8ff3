package locales

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

// DefaultNamespace is the document name used when none is configured.
const DefaultNamespace = "common"

// Locale is one locale document found under a locales root.
// File convention: {id}/{namespace}.json (or .yaml/.yml).
type Locale struct {
	ID     string
	Path   string
	Format Format
	Tag    language.Tag
}

// Valid reports whether the directory name parsed as a BCP 47 language tag.
func (l Locale) Valid() bool {
	return l.Tag != language.Und
}

// Discover enumerates locale directories of fsys that hold a namespace document. Directory
// names that are not valid language tags are still returned, with an undefined Tag, so the
// caller can report them without losing the others. Results are sorted by ID.
//
// Example structure:
//
//	en/common.json
//	de/common.json
//	zh-Hant/common.yaml
func Discover(fsys fs.FS, namespace string) ([]Locale, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading locales root: %w", err)
	}

	var found []Locale
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		docPath, format, ok := findDocument(fsys, e.Name(), namespace)
		if !ok {
			continue
		}
		loc := Locale{ID: e.Name(), Path: docPath, Format: format}
		if tag, err := ParseLocale(e.Name()); err == nil {
			loc.Tag = tag
		}
		found = append(found, loc)
	}

	slices.SortFunc(found, func(a, b Locale) int { return strings.Compare(a.ID, b.ID) })
	return found, nil
}

func findDocument(fsys fs.FS, dir, namespace string) (string, Format, bool) {
	candidates := []struct {
		ext    string
		format Format
	}{
		{".json", FormatJSON},
		{".yaml", FormatYAML},
		{".yml", FormatYAML},
	}
	for _, c := range candidates {
		p := path.Join(dir, namespace+c.ext)
		if info, err := fs.Stat(fsys, p); err == nil && !info.IsDir() {
			return p, c.format, true
		}
	}
	return "", "", false
}

// ParseLocale validates a locale identifier as a BCP 47 tag. Underscore separators
// ("pt_BR") are accepted.
func ParseLocale(id string) (language.Tag, error) {
	if id == "" {
		return language.Und, fmt.Errorf("%w: empty", ErrInvalidLocale)
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %s", ErrInvalidLocale, id, err)
	}
	return tag, nil
}

// Load reads and decodes one locale document from fsys.
func Load(fsys fs.FS, docPath string) (*restree.Tree, error) {
	format, err := FormatFromPath(docPath)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, docPath)
		}
		return nil, fmt.Errorf("reading %q: %w", docPath, err)
	}
	tree, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", docPath, err)
	}
	return tree, nil
}
