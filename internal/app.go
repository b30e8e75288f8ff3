package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localekit/pkg/localediff"
	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

// Defaults applied before options.
const (
	defaultBaseline  = "zh"
	defaultReference = "en"
)

// App runs batch operations over every locale of a store.
// App is immutable after creation - all configuration is done via New().
type App struct {
	store        locales.Store
	logger       *slog.Logger
	out          io.Writer
	spec         *usage.Spec
	deny         *usage.Deny
	baseline     string
	reference    string
	reportDir    string
	reportFormat locales.Format
	fillSections []string
	reportOpts   report.Options
	concurrency  int
}

// New creates an App with the given options.
//
// Example:
//
//	app := localekit.New(
//	    localekit.WithStore(locales.NewDirStore("locales", "common")),
//	    localekit.WithBaseline("zh"),
//	    localekit.WithUsage(spec, deny),
//	)
//	res, err := app.Compare(ctx)
func New(opts ...Option) *App {
	a := &App{
		logger:       logger.NewNope(),
		out:          io.Discard,
		baseline:     defaultBaseline,
		reference:    defaultReference,
		reportFormat: locales.FormatJSON,
		concurrency:  1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Baseline returns the baseline locale identifier.
func (a *App) Baseline() string {
	return a.baseline
}

// enumerate lists the store and returns the baseline locale and every other locale.
func (a *App) enumerate(ctx context.Context) (locales.Locale, []locales.Locale, error) {
	if a.store == nil {
		return locales.Locale{}, nil, ErrNoStore
	}
	found, err := a.store.Locales(ctx)
	if err != nil {
		return locales.Locale{}, nil, fmt.Errorf("enumerating locales: %w", err)
	}

	var (
		base    locales.Locale
		hasBase bool
		others  []locales.Locale
	)
	for _, loc := range found {
		if loc.ID == a.baseline {
			base, hasBase = loc, true
			continue
		}
		others = append(others, loc)
	}
	if !hasBase {
		return locales.Locale{}, nil, fmt.Errorf("%w: %q", ErrBaselineNotFound, a.baseline)
	}
	return base, others, nil
}

// forEachLocale runs fn for every locale with at most a.concurrency in flight. A failing
// locale never cancels its siblings; failures come back as *localediff.LocaleError sorted
// by locale. Only context cancellation aborts the batch.
func (a *App) forEachLocale(ctx context.Context, locs []locales.Locale, fn func(context.Context, locales.Locale) error) ([]error, error) {
	var (
		mu       sync.Mutex
		failures []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, loc := range locs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lctx := logger.WithLocale(gctx, loc.ID)

			var err error
			if !loc.Valid() {
				err = fmt.Errorf("%w: %q", locales.ErrInvalidLocale, loc.ID)
			} else {
				err = fn(lctx, loc)
			}
			if err == nil {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			a.logger.WarnContext(lctx, "locale failed", slog.String("error", err.Error()))
			mu.Lock()
			failures = append(failures, localediff.NewLocaleError(loc.ID, err))
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sortFailures(failures)
	return failures, nil
}

func sortFailures(failures []error) {
	slices.SortFunc(failures, func(x, y error) int {
		return strings.Compare(failureLocale(x), failureLocale(y))
	})
}

func failureLocale(err error) string {
	var le *localediff.LocaleError
	if errors.As(err, &le) {
		return le.Locale
	}
	return ""
}

func (a *App) reportPath(locale string) string {
	return filepath.Join(a.reportDir, "missing-keys-"+locale+a.reportFormat.Ext())
}
