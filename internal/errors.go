package internal

import "errors"

var (
	// ErrNoStore is returned when an operation runs on an App without a store.
	ErrNoStore = errors.New("localekit: no locale store configured")

	// ErrBaselineNotFound is returned when the baseline locale has no document.
	ErrBaselineNotFound = errors.New("localekit: baseline locale not found")

	// ErrLocalesFailed is returned by callers that treat any per-locale failure as fatal,
	// such as the CLI exit status.
	ErrLocalesFailed = errors.New("localekit: some locales failed")
)
