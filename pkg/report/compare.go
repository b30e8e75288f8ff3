package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrymomot/localekit/pkg/localediff"
	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

// Comparison is everything needed to render a baseline comparison.
type Comparison struct {
	Baseline     string
	BaselineTree *restree.Tree
	Results      map[string]localediff.Result
	Failures     []error
}

// WriteComparison renders per-locale sections with grouped missing and extra keys, then a
// summary table.
func WriteComparison(w io.Writer, c Comparison, opts Options) error {
	opts = opts.withDefaults()
	st := newStyles(w, opts.NoColor)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", st.title.Render("Locale key comparison"))
	fmt.Fprintf(&b, "Baseline: %s (%s), %d keys\n",
		locales.DisplayName(c.Baseline), c.Baseline, restree.ExtractLeafPaths(c.BaselineTree).Len())

	ids := slices.Sorted(maps.Keys(c.Results))
	for _, id := range ids {
		res := c.Results[id]
		fmt.Fprintf(&b, "\n%s\n", st.section.Render(fmt.Sprintf("[%s (%s)] against %s", locales.DisplayName(id), id, c.Baseline)))

		if res.Complete() && res.Extra.Len() == 0 {
			fmt.Fprintf(&b, "%s\n", st.ok.Render("in sync: nothing missing, nothing extra"))
			continue
		}
		if res.Missing.Len() > 0 {
			fmt.Fprintf(&b, "%s\n", st.bad.Render(fmt.Sprintf("missing %d keys:", res.Missing.Len())))
			writeGroups(&b, st, res.Missing, opts.MaxMissing, func(p restree.KeyPath) string {
				return previewLine(c.BaselineTree, p, opts.PreviewLen)
			})
		}
		if res.Extra.Len() > 0 {
			fmt.Fprintf(&b, "%s\n", st.warn.Render(fmt.Sprintf("extra %d keys (not in baseline):", res.Extra.Len())))
			writeGroups(&b, st, res.Extra, opts.MaxExtra, func(p restree.KeyPath) string {
				return p.String()
			})
		}
	}

	if len(c.Failures) > 0 {
		fmt.Fprintf(&b, "\n%s\n", st.bad.Render(fmt.Sprintf("%d locales failed:", len(c.Failures))))
		for _, err := range c.Failures {
			fmt.Fprintf(&b, "  - %v\n", err)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", st.title.Render("Summary"))
	b.WriteString(summaryTable(c, ids))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGroups(b *strings.Builder, st styles, paths restree.PathSet, limit int, line func(restree.KeyPath) string) {
	groups := localediff.GroupByTopSegment(paths)
	for _, name := range localediff.SortedGroups(groups) {
		keys := groups[name]
		fmt.Fprintf(b, "  [%s] %d keys\n", name, len(keys))
		for _, p := range keys[:min(limit, len(keys))] {
			fmt.Fprintf(b, "    - %s\n", line(p))
		}
		if len(keys) > limit {
			fmt.Fprintf(b, "    %s\n", st.muted.Render(fmt.Sprintf("... %d more", len(keys)-limit)))
		}
	}
}

func previewLine(baseline *restree.Tree, p restree.KeyPath, maxLen int) string {
	v, ok := restree.Lookup(baseline, p)
	if s, isString := v.(string); ok && isString && len([]rune(s)) < maxLen {
		return fmt.Sprintf("%s: %q", p.String(), s)
	}
	return p.String()
}

func summaryTable(c Comparison, ids []string) string {
	t := table.New().Headers("Locale", "Keys", "Missing", "Extra", "Complete")
	t.Row(c.Baseline, strconv.Itoa(restree.ExtractLeafPaths(c.BaselineTree).Len()), "baseline", "baseline", "100%")
	for _, id := range ids {
		res := c.Results[id]
		t.Row(
			id,
			strconv.Itoa(res.LocaleKeys),
			strconv.Itoa(res.Missing.Len()),
			strconv.Itoa(res.Extra.Len()),
			fmt.Sprintf("%.1f%%", res.Percent()),
		)
	}
	return t.Render()
}
