// Package logger builds slog loggers for localekit commands.
//
// Console output goes to stderr as text or JSON. Context extractors add attributes taken
// from the context of each log call; the package ships extractors for the locale and the
// operation being processed:
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo},
//		logger.LocaleExtractor(),
//		logger.OperationExtractor(),
//	)
//
//	ctx = logger.WithOperation(ctx, "clean")
//	ctx = logger.WithLocale(ctx, "de")
//	log.InfoContext(ctx, "pruned locale", slog.Int("removed", 3))
//	// level=INFO msg="pruned locale" removed=3 locale=de operation=clean
//
// # Sentry
//
// [NewWithSentry] also forwards warnings and errors to Sentry when a DSN is configured.
// Without a DSN, or when Sentry fails to initialize, it falls back to console logging:
//
//	log, flush := logger.NewWithSentry(cfg, logger.SentryConfig{DSN: dsn})
//	defer flush()
//
// [NewNope] discards everything and is the default for library callers.
package logger
