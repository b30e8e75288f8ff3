// Package localediff compares locale resource trees against a baseline locale.
//
// For every locale it reports the leaf key paths the locale is missing, the paths it has
// that the baseline does not, and a completeness ratio:
//
//	res := localediff.Diff(baseline, german)
//	res.Missing.Sorted() // keys to translate
//	res.Extra.Sorted()   // keys to remove or add to the baseline
//	res.Completeness     // |baseline ∩ locale| / |baseline|
//
// [DiffAll] runs the comparison for a set of locales. Each locale is handled on its own:
// a malformed tree is reported as a [LocaleError] and left out of the results, and the
// remaining locales are still compared.
//
// [GroupByTopSegment] buckets a path set by its first segment for reporting.
package localediff
