// Package localekit keeps the locale documents of an i18n project in line with a
// baseline locale.
//
// Locale documents are nested key/value trees (JSON or YAML) stored as
// {locale}/{namespace}.json. localekit flattens them into dotted key paths and runs
// three batch operations over every locale:
//
//   - Compare: which baseline keys each locale is missing, which keys it has that the
//     baseline lacks, and how complete it is
//   - Clean: prune keys the application no longer uses
//   - Fill: copy whole baseline sections into locales that lack them
//
// # Quick Start
//
//	app := localekit.New(
//	    localekit.WithStore(localekit.DirStore("locales", "common")),
//	    localekit.WithBaseline("zh"),
//	    localekit.WithOutput(os.Stdout),
//	)
//
//	res, err := app.Compare(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for id, r := range res.Results {
//	    fmt.Printf("%s: %.1f%%\n", id, r.Percent())
//	}
//
// # Usage lists
//
// Clean needs to know which keys are in use. A [usage.Spec] lists exact key paths and
// wildcard prefixes ("pricing.*"); a [usage.Deny] lists subtrees that must go:
//
//	app := localekit.New(
//	    localekit.WithStore(store),
//	    localekit.WithUsage(
//	        usage.MustSpec("nav.home", "pricing.*"),
//	        usage.MustDeny("workflows"),
//	    ),
//	)
//	res, err := app.Clean(ctx, false)
//
// Denied subtrees and objects left empty are removed. Leaves missing from the usage list
// are kept and reported as possibly unused, since key paths built at runtime cannot be
// seen by a static usage list.
//
// # Failures
//
// A locale that cannot be read or saved does not stop a batch. Each result carries a
// Failures slice of [*LocaleError] values, one per failed locale.
//
// # Building blocks
//
// The operations are thin layers over packages that can be used directly:
// [github.com/dmitrymomot/localekit/pkg/restree] for trees and key paths,
// [github.com/dmitrymomot/localekit/pkg/usage] for matching,
// [github.com/dmitrymomot/localekit/pkg/prune] for pruning and
// [github.com/dmitrymomot/localekit/pkg/localediff] for diffing.
package localekit
