package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/localekit"
	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

var (
	// Global flags
	configPath  string
	localesDir  string
	namespace   string
	baseline    string
	noColor     bool
	logLevel    string
	concurrency int
)

var rootCmd = &cobra.Command{
	Use:   "localekit",
	Short: "Keep locale files in line with a baseline locale",
	Long: `localekit compares the locale documents of an i18n project against a
baseline locale, prunes keys the application no longer uses and copies missing
sections from the baseline so translators find them in place.

Locale documents live under {dir}/{locale}/{namespace}.json (or .yaml).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVarP(&localesDir, "dir", "d", "", "Locales root directory")
	rootCmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", "", "Document name inside each locale directory")
	rootCmd.PersistentFlags().StringVarP(&baseline, "baseline", "b", "", "Baseline locale")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "j", 0, "Locales processed at once")
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies the flags set on the
// command line.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(flags, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every global flag the user actually set.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("dir") {
		cfg.LocalesDir = localesDir
	}
	if flags.Changed("namespace") {
		cfg.Namespace = namespace
	}
	if flags.Changed("baseline") {
		cfg.Baseline = baseline
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
}

// newApp builds the application for cfg. The returned function flushes pending log
// events and must run before exit.
func newApp(cfg config.Config, opts ...localekit.Option) (*localekit.App, func(), error) {
	spec, err := cfg.UsageSpec()
	if err != nil {
		return nil, nil, err
	}
	deny, err := cfg.DenySpec()
	if err != nil {
		return nil, nil, err
	}
	format, err := locales.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	log, flush := logger.NewWithSentry(cfg.LoggerConfig(), cfg.Sentry,
		logger.LocaleExtractor(),
		logger.OperationExtractor(),
	)

	app := localekit.New(append([]localekit.Option{
		localekit.WithStore(localekit.DirStore(cfg.LocalesDir, cfg.Namespace)),
		localekit.WithBaseline(cfg.Baseline),
		localekit.WithReference(cfg.Reference),
		localekit.WithUsage(spec, deny),
		localekit.WithConcurrency(cfg.Concurrency),
		localekit.WithCustomLogger(log.With("component", "cli")),
		localekit.WithOutput(os.Stdout),
		localekit.WithReportOptions(localekit.ReportOptions{NoColor: noColor}),
		localekit.WithReportFormat(format),
		localekit.WithFillSections(cfg.Fill.Sections...),
		localekit.WithReportDir(cfg.ReportDir),
	}, opts...)...)
	return app, flush, nil
}

// checkFailures turns per-locale failures into a non-zero exit.
func checkFailures(failures []error) error {
	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", localekit.ErrLocalesFailed, errors.Join(failures...))
}
