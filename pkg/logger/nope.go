package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output. Tests and library callers that do not
// configure logging use it.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewWriter creates a text logger writing to w at debug level. Tests use it to assert on
// log output.
func NewWriter(w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	return New(Config{Level: slog.LevelDebug, Format: FormatText, Output: w}, extractors...)
}
