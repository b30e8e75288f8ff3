package internal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/localekit/pkg/localediff"
	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

// CompareResult is the outcome of comparing every locale against the baseline.
type CompareResult struct {
	Baseline string
	Results  map[string]localediff.Result
	// Failures holds one *localediff.LocaleError per locale that could not be compared.
	Failures []error
	// Reports lists the missing-key files written, keyed by locale.
	Reports map[string]string
}

// Compare loads the baseline and every other locale, diffs them, renders the comparison
// report and, when a report directory is configured, writes missing-keys-{locale}.json
// (or .yaml) for every incomplete locale.
func (a *App) Compare(ctx context.Context) (*CompareResult, error) {
	ctx = logger.WithOperation(ctx, "compare")

	baseLoc, others, err := a.enumerate(ctx)
	if err != nil {
		return nil, err
	}
	baseline, err := a.store.Read(ctx, baseLoc)
	if err != nil {
		return nil, fmt.Errorf("loading baseline %q: %w", a.baseline, err)
	}
	if err := localediff.CheckBaseline(baseline); err != nil {
		a.logger.WarnContext(ctx, "baseline has no keys, every locale counts as complete",
			slog.String("baseline", a.baseline))
	}
	reference := a.loadReference(ctx, baseline, others)

	res := &CompareResult{
		Baseline: a.baseline,
		Results:  make(map[string]localediff.Result, len(others)),
		Reports:  make(map[string]string),
	}
	var mu sync.Mutex

	res.Failures, err = a.forEachLocale(ctx, others, func(ctx context.Context, loc locales.Locale) error {
		tree, err := a.store.Read(ctx, loc)
		if err != nil {
			return err
		}
		diff := localediff.Diff(baseline, tree)
		a.logger.DebugContext(ctx, "compared locale",
			slog.Int("missing", diff.Missing.Len()),
			slog.Int("extra", diff.Extra.Len()),
			slog.Float64("completeness", diff.Completeness))

		var reportPath string
		if a.reportDir != "" && diff.Missing.Len() > 0 {
			reportPath, err = a.writeMissingReport(loc.ID, baseline, reference, diff)
			if err != nil {
				return err
			}
		}

		mu.Lock()
		defer mu.Unlock()
		res.Results[loc.ID] = diff
		if reportPath != "" {
			res.Reports[loc.ID] = reportPath
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := report.WriteComparison(a.out, report.Comparison{
		Baseline:     a.baseline,
		BaselineTree: baseline,
		Results:      res.Results,
		Failures:     res.Failures,
	}, a.reportOpts); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return res, nil
}

// loadReference returns the reference locale tree used as the second column of missing-key
// reports. A missing or unreadable reference only degrades the report.
func (a *App) loadReference(ctx context.Context, baseline *restree.Tree, others []locales.Locale) *restree.Tree {
	if a.reference == "" || a.reference == a.baseline {
		return baseline
	}
	for _, loc := range others {
		if loc.ID != a.reference {
			continue
		}
		tree, err := a.store.Read(ctx, loc)
		if err != nil {
			a.logger.WarnContext(ctx, "reference locale unreadable",
				slog.String("reference", a.reference), slog.String("error", err.Error()))
			return nil
		}
		return tree
	}
	return nil
}

func (a *App) writeMissingReport(locale string, baseline, reference *restree.Tree, diff localediff.Result) (string, error) {
	doc := report.MissingKeysDocument(a.baseline, baseline, a.reference, reference, diff.Missing)
	data, err := locales.Encode(doc, a.reportFormat)
	if err != nil {
		return "", err
	}
	p := a.reportPath(locale)
	if err := locales.WriteFileAtomic(p, data); err != nil {
		return "", fmt.Errorf("writing missing-key report: %w", err)
	}
	return p, nil
}
