package localediff

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

var (
	// ErrEmptyBaseline reports a baseline with no leaf keys. It is informational:
	// every locale is complete against an empty baseline.
	ErrEmptyBaseline = errors.New("localediff: baseline has no keys")

	// ErrMalformedTree is the restree sentinel, re-exported for callers of this package.
	ErrMalformedTree = restree.ErrMalformedTree
)

// LocaleError ties a failure to the locale and, when known, the key path where it happened.
type LocaleError struct {
	Locale string
	Path   restree.KeyPath
	Err    error
}

func (e *LocaleError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("locale %q at %q: %v", e.Locale, e.Path.String(), e.Err)
	}
	return fmt.Sprintf("locale %q: %v", e.Locale, e.Err)
}

func (e *LocaleError) Unwrap() error {
	return e.Err
}

// NewLocaleError wraps err for locale. The key path is lifted from a
// *restree.MalformedTreeError when err carries one.
func NewLocaleError(locale string, err error) *LocaleError {
	le := &LocaleError{Locale: locale, Err: err}
	var mErr *restree.MalformedTreeError
	if errors.As(err, &mErr) {
		le.Path = mErr.Path
	}
	return le
}
