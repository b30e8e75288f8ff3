package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	// MinLevel determines which log levels reach Sentry (slog.LevelWarn for warnings+errors).
	MinLevel slog.Level `yaml:"-"`
}

// NewWithSentry creates a logger that writes to the console and to Sentry.
// An empty DSN, or a failed Sentry init, leaves console logging only.
// The returned flush function must be called before the process exits.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	console := newConsoleHandler(cfg)
	noop := func() {}

	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(console, extractors...)), noop
	}

	env := sc.Environment
	if env == "" {
		env = "production"
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: env,
		EnableLogs:  true,
	}); err != nil {
		slog.New(console).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(console, extractors...)), noop
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(console, sentryHandler)
	flush := func() { sentry.Flush(2 * time.Second) }
	return slog.New(NewLogHandlerDecorator(combined, extractors...)), flush
}
