package logger

import (
	"context"
	"log/slog"
)

type (
	localeKey    struct{}
	operationKey struct{}
)

// WithLocale stores the locale being processed in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// WithOperation stores the running operation (compare, clean, fill) in ctx.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// LocaleExtractor adds the "locale" attribute set by WithLocale.
func LocaleExtractor() ContextExtractor {
	return stringExtractor(localeKey{}, "locale")
}

// OperationExtractor adds the "operation" attribute set by WithOperation.
func OperationExtractor() ContextExtractor {
	return stringExtractor(operationKey{}, "operation")
}

func stringExtractor(key any, attr string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			return slog.String(attr, v), true
		}
		return slog.Attr{}, false
	}
}
