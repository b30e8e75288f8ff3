package internal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

// FillResult is the outcome of copying baseline sections into other locales.
type FillResult struct {
	// Added lists the sections copied into each locale, in request order.
	Added    map[string][]string
	Failures []error
}

// Fill copies each named top-level section of the baseline into every locale that lacks
// it, so translators find the untranslated text in place. Sections a locale already has
// are left untouched. With no sections given the configured fill sections are used.
func (a *App) Fill(ctx context.Context, sections ...string) (*FillResult, error) {
	ctx = logger.WithOperation(ctx, "fill")

	if len(sections) == 0 {
		sections = a.fillSections
	}
	baseLoc, others, err := a.enumerate(ctx)
	if err != nil {
		return nil, err
	}
	baseline, err := a.store.Read(ctx, baseLoc)
	if err != nil {
		return nil, fmt.Errorf("loading baseline %q: %w", a.baseline, err)
	}

	var available []string
	for _, s := range sections {
		if _, ok := baseline.Get(s); !ok {
			a.logger.WarnContext(ctx, "section not in baseline", slog.String("section", s))
			continue
		}
		if !slices.Contains(available, s) {
			available = append(available, s)
		}
	}

	res := &FillResult{Added: make(map[string][]string, len(others))}
	var mu sync.Mutex

	res.Failures, err = a.forEachLocale(ctx, others, func(ctx context.Context, loc locales.Locale) error {
		tree, err := a.store.Read(ctx, loc)
		if err != nil {
			return err
		}
		added := fillSections(tree, baseline, available)
		if len(added) > 0 {
			if err := a.store.Write(ctx, loc, tree); err != nil {
				return fmt.Errorf("saving filled document: %w", err)
			}
			a.logger.InfoContext(ctx, "filled locale", slog.Any("sections", added))
		}

		mu.Lock()
		res.Added[loc.ID] = added
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Added))
	for id := range res.Added {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := report.WriteFill(a.out, id, res.Added[id], a.reportOpts); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}
	return res, nil
}

// fillSections copies the named baseline sections missing from tree and returns the
// ones it added.
func fillSections(tree, baseline *restree.Tree, sections []string) []string {
	var added []string
	for _, s := range sections {
		if _, ok := tree.Get(s); ok {
			continue
		}
		v, _ := baseline.Get(s)
		tree.Set(s, restree.CloneValue(v))
		added = append(added, s)
	}
	return added
}
