// Package locales loads, saves and enumerates localization resource documents.
//
// Documents live in one directory per locale, each holding one file per namespace:
//
//	locales/
//	  en/common.json
//	  de/common.json
//	  ja/common.yaml
//
// # Decoding
//
// [Decode] turns JSON or YAML bytes into a [restree.Tree]. JSON is read as an encoding/json
// token stream and YAML through the yaml.v3 node API, so keys keep their document order and
// a cleaned file is written back without reshuffling it. A repeated key keeps its first
// position and takes its last value. The document root must be a mapping; anything else
// fails with restree.ErrMalformedTree. Numbers, booleans, nulls and lists are opaque leaves.
//
// # Encoding
//
// [EncodeJSON] writes two-space indented JSON in key order, leaves non-ASCII characters
// unescaped and ends with a newline:
//
//	data, _ := locales.EncodeJSON(tree)
//	// {
//	//   "nav": {
//	//     "home": "Startseite"
//	//   }
//	// }
//
// [EncodeYAML] writes the same tree as YAML.
//
// # Stores
//
// [DirStore] implements [Store] over a directory. Writes go to a temporary file that is
// renamed into place:
//
//	store := locales.NewDirStore("locales", "common")
//	found, _ := store.Locales(ctx)
//	for _, loc := range found {
//		tree, err := store.Read(ctx, loc)
//		...
//	}
//
// Locale directory names are checked with golang.org/x/text/language; [DisplayName] and
// [NativeName] render them for reports.
package locales
