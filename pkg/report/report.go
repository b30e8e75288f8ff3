// Package report renders localekit results for people: comparison summaries, prune logs
// and missing-key export documents.
package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options controls report rendering.
type Options struct {
	// NoColor disables styling even when w is a terminal.
	NoColor bool
	// MaxMissing caps the missing keys listed per category. Zero means 10.
	MaxMissing int
	// MaxExtra caps the extra keys listed per category. Zero means 5.
	MaxExtra int
	// PreviewLen is the longest baseline value shown next to a missing key. Zero means 50.
	PreviewLen int
}

func (o Options) withDefaults() Options {
	if o.MaxMissing <= 0 {
		o.MaxMissing = 10
	}
	if o.MaxExtra <= 0 {
		o.MaxExtra = 5
	}
	if o.PreviewLen <= 0 {
		o.PreviewLen = 50
	}
	return o
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:   r.NewStyle().Faint(true),
	}
}
