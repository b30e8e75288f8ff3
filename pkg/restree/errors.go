package restree

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is returned when a node that must be a mapping is not one.
var ErrMalformedTree = errors.New("restree: malformed tree")

// MalformedTreeError reports the key path at which a structural expectation was violated.
// An empty Path means the document root.
type MalformedTreeError struct {
	Path   KeyPath
	Reason string
}

func (e *MalformedTreeError) Error() string {
	where := "root"
	if len(e.Path) > 0 {
		where = e.Path.String()
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s at %q", ErrMalformedTree, where)
	}
	return fmt.Sprintf("%s at %q: %s", ErrMalformedTree, where, e.Reason)
}

func (e *MalformedTreeError) Unwrap() error {
	return ErrMalformedTree
}
