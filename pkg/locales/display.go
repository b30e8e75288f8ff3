package locales

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the English name of a locale, e.g. "German" for "de". Unknown or
// invalid identifiers are returned unchanged.
func DisplayName(id string) string {
	tag, err := ParseLocale(id)
	if err != nil {
		return id
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return id
}

// NativeName returns the name of a locale in its own language, e.g. "Deutsch" for "de".
func NativeName(id string) string {
	tag, err := ParseLocale(id)
	if err != nil {
		return id
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return id
}

// Canonical returns the canonical BCP 47 form of id ("pt_br" → "pt-BR").
func Canonical(id string) string {
	tag, err := ParseLocale(id)
	if err != nil || tag == language.Und {
		return id
	}
	return tag.String()
}
