// Package restree models localization resource trees and the key paths that address them.
//
// A resource tree is a nested mapping: every internal node maps a short segment to either
// another internal node or a leaf value. Leaves are any non-mapping value (strings most of
// the time, but numbers, booleans and lists are valid too). [Tree] keeps key insertion order
// so a document loaded from disk can be written back in the same order.
//
// # Key Paths
//
// A [KeyPath] is the ordered list of segments from the root to a node. Its canonical
// rendering joins segments with a dot:
//
//	p := restree.ParseKeyPath("pricing.plans.pro")
//	p.String() // "pricing.plans.pro"
//	p.Top()    // "pricing"
//
// Prefix checks work on whole segments, so "ab.c" never matches the prefix "a".
//
// Segments are not escaped. A key that itself contains a dot renders the same as nested
// keys, so {"a.b": "x"} and {"a": {"b": "x"}} both yield the path "a.b" and collapse to one
// [PathSet] entry. Usage specs and deny lists see the same ambiguity. Keep dots out of
// resource keys.
//
// # Extraction
//
// [ExtractLeafPaths] returns the set of paths reaching every leaf. [ExtractAllPaths]
// additionally includes every internal node, which is useful when a category-level path
// like "pricing" must itself be testable:
//
//	tree := restree.New()
//	nav := restree.New()
//	nav.Set("home", "Home")
//	tree.Set("nav", nav)
//
//	restree.ExtractLeafPaths(tree).Sorted() // [nav.home]
//	restree.ExtractAllPaths(tree).Sorted()  // [nav nav.home]
//
// Both return a [PathSet]; insertion order carries no meaning.
//
// # Ownership
//
// Operations in this module never mutate the trees they receive. Use [Tree.Clone] when a
// caller needs an independent copy to modify.
package restree
