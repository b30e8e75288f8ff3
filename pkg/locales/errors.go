package locales

import "errors"

var (
	ErrInvalidFile   = errors.New("locales: invalid locale file")
	ErrInvalidLocale = errors.New("locales: invalid locale identifier")
	ErrNotFound      = errors.New("locales: locale file not found")
	ErrUnknownFormat = errors.New("locales: unknown file format")
)
