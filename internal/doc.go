// Package internal provides the batch orchestration behind localekit.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/localekit" instead, which re-exports the public API.
//
// # Operations
//
// App runs three operations over every locale of a locales.Store:
//
//   - Compare: diffs each locale against the baseline and renders a completeness report,
//     optionally exporting missing-keys-{locale}.json files
//   - Clean: prunes every document with the usage allowlist and deny list
//   - Fill: copies baseline sections a locale lacks so translators find them in place
//
// # Failure isolation
//
// Locales are processed by a bounded errgroup. A locale that cannot be read, decoded or
// saved is logged and returned as a *localediff.LocaleError in the result's Failures; its
// siblings keep going. Only context cancellation aborts a batch.
package internal
