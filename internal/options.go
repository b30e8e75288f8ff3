package internal

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

// Option configures the application.
type Option func(*App)

// WithStore sets the locale store every operation reads from and writes to.
//
// Example:
//
//	localekit.New(
//	    localekit.WithStore(locales.NewDirStore("locales", "common")),
//	)
func WithStore(s locales.Store) Option {
	return func(a *App) {
		a.store = s
	}
}

// WithBaseline sets the baseline locale all others are compared against.
// Defaults to "zh".
func WithBaseline(id string) Option {
	return func(a *App) {
		if id != "" {
			a.baseline = id
		}
	}
}

// WithReference sets the locale whose values fill the second column of missing-key
// reports. Defaults to "en". An empty id or the baseline id drops the column.
func WithReference(id string) Option {
	return func(a *App) {
		a.reference = id
	}
}

// WithUsage sets the usage allowlist and deny list applied by Clean.
// A nil spec marks every leaf possibly unused; a nil deny removes nothing.
func WithUsage(spec *usage.Spec, deny *usage.Deny) Option {
	return func(a *App) {
		a.spec = spec
		a.deny = deny
	}
}

// WithConcurrency bounds how many locales are processed at once.
// Values below 1 are ignored. Defaults to 1.
func WithConcurrency(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The locale and operation extractors are always added.
//
// Example:
//
//	localekit.New(
//	    localekit.WithLogger(logger.Config{Level: slog.LevelDebug}, "cli"),
//	)
func WithLogger(cfg logger.Config, component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		all := append([]logger.ContextExtractor{
			logger.LocaleExtractor(),
			logger.OperationExtractor(),
		}, extractors...)
		a.logger = logger.New(cfg, all...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// If nil, the current logger is kept.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithOutput sets where human-readable reports are written.
// Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}

// WithReportOptions configures report rendering.
func WithReportOptions(opts report.Options) Option {
	return func(a *App) {
		a.reportOpts = opts
	}
}

// WithReportDir enables missing-key export during Compare.
// Files are named missing-keys-{locale}.json.
func WithReportDir(dir string) Option {
	return func(a *App) {
		a.reportDir = dir
	}
}

// WithReportFormat sets the encoding of missing-key reports. Defaults to JSON.
func WithReportFormat(f locales.Format) Option {
	return func(a *App) {
		if f != "" {
			a.reportFormat = f
		}
	}
}

// WithFillSections sets the top-level sections Fill copies when called without any.
func WithFillSections(sections ...string) Option {
	return func(a *App) {
		a.fillSections = append([]string(nil), sections...)
	}
}
