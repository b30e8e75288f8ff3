package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/prune"
)

// PruneFile describes the outcome of pruning one locale document.
type PruneFile struct {
	Locale  string
	Path    string
	Before  int
	After   int
	Records []prune.Record
	DryRun  bool
}

// WritePrune renders the prune log of one locale document.
func WritePrune(w io.Writer, f PruneFile, opts Options) error {
	st := newStyles(w, opts.NoColor)
	var b strings.Builder

	header := fmt.Sprintf("%s (%s)", f.Path, f.Locale)
	if f.DryRun {
		header += " [dry run]"
	}
	fmt.Fprintf(&b, "\n%s\n", st.section.Render(header))
	fmt.Fprintf(&b, "  total keys: %d\n", f.Before)

	for _, r := range f.Records {
		switch r.Reason {
		case prune.ReasonDenied:
			fmt.Fprintf(&b, "  %s\n", st.bad.Render("removed "+r.Path.String()+" (denied)"))
		case prune.ReasonEmptyObject:
			fmt.Fprintf(&b, "  %s\n", st.bad.Render("removed "+r.Path.String()+" (empty object)"))
		case prune.ReasonPossiblyUnused:
			fmt.Fprintf(&b, "  %s\n", st.warn.Render("possibly unused "+r.Path.String()))
		}
	}

	summary := prune.Summary(f.Records)
	fmt.Fprintf(&b, "  %s\n", st.ok.Render(fmt.Sprintf("removed %d keys, kept %d keys", f.Before-f.After, f.After)))
	if n := summary[prune.ReasonPossiblyUnused]; n > 0 {
		fmt.Fprintf(&b, "  %s\n", st.muted.Render(fmt.Sprintf("%d leaves kept but not in the usage list", n)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFill renders the sections copied into a locale.
func WriteFill(w io.Writer, locale string, added []string, opts Options) error {
	st := newStyles(w, opts.NoColor)
	var line string
	if len(added) == 0 {
		line = st.ok.Render(fmt.Sprintf("%s: nothing to add", locale))
	} else {
		line = st.warn.Render(fmt.Sprintf("%s: added %s (needs translation)", locale, strings.Join(added, ", ")))
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
