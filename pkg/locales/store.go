package locales

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

// Store reads and writes locale documents.
type Store interface {
	// Locales enumerates the locale documents available in the store.
	Locales(ctx context.Context) ([]Locale, error)

	// Read loads the document of one locale.
	Read(ctx context.Context, loc Locale) (*restree.Tree, error)

	// Write replaces the document of one locale.
	Write(ctx context.Context, loc Locale, tree *restree.Tree) error
}

var _ Store = (*DirStore)(nil)

// DirStore is a Store over a directory laid out as {locale}/{namespace}.{ext}.
type DirStore struct {
	root      string
	namespace string
	fsys      fs.FS
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir, namespace string) *DirStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &DirStore{root: dir, namespace: namespace, fsys: os.DirFS(dir)}
}

// Root returns the directory the store reads from.
func (s *DirStore) Root() string {
	return s.root
}

// Namespace returns the document name of the store.
func (s *DirStore) Namespace() string {
	return s.namespace
}

func (s *DirStore) Locales(ctx context.Context) ([]Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Discover(s.fsys, s.namespace)
}

func (s *DirStore) Read(ctx context.Context, loc Locale) (*restree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(s.fsys, s.docPathWithFormat(loc, loc.format()))
}

// Write encodes tree in the locale's format and atomically replaces the file.
func (s *DirStore) Write(ctx context.Context, loc Locale, tree *restree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format := loc.format()
	data, err := Encode(tree, format)
	if err != nil {
		return err
	}

	target := filepath.Join(s.root, filepath.FromSlash(s.docPathWithFormat(loc, format)))
	return WriteFileAtomic(target, data)
}

// Locale builds a Locale for id in this store, using the document that exists on disk or
// JSON when there is none yet.
func (s *DirStore) Locale(id string) Locale {
	loc := Locale{ID: id, Format: FormatJSON}
	if p, format, ok := findDocument(s.fsys, id, s.namespace); ok {
		loc.Path, loc.Format = p, format
	}
	if tag, err := ParseLocale(id); err == nil {
		loc.Tag = tag
	}
	return loc
}

func (s *DirStore) docPathWithFormat(loc Locale, format Format) string {
	if loc.Path != "" {
		return loc.Path
	}
	return loc.ID + "/" + s.namespace + format.Ext()
}

// WriteFileAtomic writes data to a temporary file next to target and renames it into place,
// keeping the mode of an existing target.
func WriteFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", target, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %q: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", target, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode of %q: %w", target, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replacing %q: %w", target, err)
	}
	return nil
}

func (l Locale) format() Format {
	if l.Format == "" {
		return FormatJSON
	}
	return l.Format
}
