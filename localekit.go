package localekit

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/localekit/internal"
	"github.com/dmitrymomot/localekit/pkg/localediff"
	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/report"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

// Type aliases - public API
type (
	// App runs batch operations over every locale of a store.
	App = internal.App

	// Option configures the application.
	Option = internal.Option

	// CompareResult is the outcome of App.Compare.
	CompareResult = internal.CompareResult

	// CleanResult is the outcome of App.Clean.
	CleanResult = internal.CleanResult

	// FillResult is the outcome of App.Fill.
	FillResult = internal.FillResult

	// Store reads and writes locale documents.
	Store = locales.Store

	// LocaleError ties a per-locale failure to its locale.
	LocaleError = localediff.LocaleError

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add values to logs.
	ContextExtractor = logger.ContextExtractor

	// ReportOptions controls report rendering.
	ReportOptions = report.Options
)

// Errors for checking return values.
var (
	ErrNoStore          = internal.ErrNoStore
	ErrBaselineNotFound = internal.ErrBaselineNotFound
	ErrLocalesFailed    = internal.ErrLocalesFailed
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := localekit.New(
//	    localekit.WithStore(localekit.DirStore("locales", "common")),
//	    localekit.WithBaseline("zh"),
//	    localekit.WithUsage(spec, deny),
//	    localekit.WithOutput(os.Stdout),
//	)
//
//	res, err := app.Compare(ctx)
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// DirStore returns a store over dir laid out as {locale}/{namespace}.json (or .yaml).
func DirStore(dir, namespace string) *locales.DirStore {
	return locales.NewDirStore(dir, namespace)
}

// App options

// WithStore sets the locale store every operation reads from and writes to.
func WithStore(s Store) Option {
	return internal.WithStore(s)
}

// WithBaseline sets the baseline locale all others are compared against.
// Defaults to "zh".
func WithBaseline(id string) Option {
	return internal.WithBaseline(id)
}

// WithReference sets the locale shown next to the baseline in missing-key reports.
// Defaults to "en".
func WithReference(id string) Option {
	return internal.WithReference(id)
}

// WithUsage sets the usage allowlist and deny list applied by Clean.
//
// Example:
//
//	localekit.WithUsage(
//	    usage.MustSpec("nav.home", "pricing.*"),
//	    usage.MustDeny("workflows"),
//	)
func WithUsage(spec *usage.Spec, deny *usage.Deny) Option {
	return internal.WithUsage(spec, deny)
}

// WithConcurrency bounds how many locales are processed at once.
// Defaults to 1.
func WithConcurrency(n int) Option {
	return internal.WithConcurrency(n)
}

// WithLogger creates a logger with a component name and optional extractors.
// Locale and operation attributes are always extracted.
func WithLogger(cfg logger.Config, component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(cfg, component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithOutput sets where human-readable reports are written.
func WithOutput(w io.Writer) Option {
	return internal.WithOutput(w)
}

// WithReportOptions configures report rendering.
func WithReportOptions(opts ReportOptions) Option {
	return internal.WithReportOptions(opts)
}

// WithReportDir enables missing-key export during Compare.
func WithReportDir(dir string) Option {
	return internal.WithReportDir(dir)
}

// WithReportFormat sets the encoding of missing-key reports. Defaults to JSON.
func WithReportFormat(f locales.Format) Option {
	return internal.WithReportFormat(f)
}

// WithFillSections sets the sections Fill copies when called without any.
func WithFillSections(sections ...string) Option {
	return internal.WithFillSections(sections...)
}

