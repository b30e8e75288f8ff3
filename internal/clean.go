package internal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/prune"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

// CleanResult is the outcome of pruning every locale document.
type CleanResult struct {
	Files    []report.PruneFile
	Failures []error
}

// Clean prunes every locale document, the baseline included, with the configured usage
// and deny lists, and saves the result unless dryRun is set. Counts are over all key paths,
// internal nodes included.
func (a *App) Clean(ctx context.Context, dryRun bool) (*CleanResult, error) {
	ctx = logger.WithOperation(ctx, "clean")

	if a.store == nil {
		return nil, ErrNoStore
	}
	found, err := a.store.Locales(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating locales: %w", err)
	}

	res := &CleanResult{}
	var mu sync.Mutex

	res.Failures, err = a.forEachLocale(ctx, found, func(ctx context.Context, loc locales.Locale) error {
		tree, err := a.store.Read(ctx, loc)
		if err != nil {
			return err
		}
		pruned, records := prune.Prune(tree, a.spec, a.deny)

		file := report.PruneFile{
			Locale:  loc.ID,
			Path:    loc.Path,
			Before:  restree.ExtractAllPaths(tree).Len(),
			After:   restree.ExtractAllPaths(pruned).Len(),
			Records: records,
			DryRun:  dryRun,
		}
		if !dryRun && len(prune.Removed(records)) > 0 {
			if err := a.store.Write(ctx, loc, pruned); err != nil {
				return fmt.Errorf("saving pruned document: %w", err)
			}
		}
		a.logger.InfoContext(ctx, "pruned locale",
			slog.Int("before", file.Before),
			slog.Int("after", file.After),
			slog.Bool("dry_run", dryRun))

		mu.Lock()
		res.Files = append(res.Files, file)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(res.Files, func(x, y report.PruneFile) int { return strings.Compare(x.Locale, y.Locale) })
	for _, f := range res.Files {
		if err := report.WritePrune(a.out, f, a.reportOpts); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}
	return res, nil
}
