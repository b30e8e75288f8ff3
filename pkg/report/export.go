package report

import (
	"github.com/dmitrymomot/localekit/pkg/restree"
)

// MissingKeysDocument builds the missing-keys export for one locale: a flat mapping from
// each missing key path to its baseline value and the reference locale's value ("" when
// the reference lacks it).
//
//	{
//	  "faq.q1": {"zh": "...", "en": "..."}
//	}
func MissingKeysDocument(baselineID string, baseline *restree.Tree, referenceID string, reference *restree.Tree, missing restree.PathSet) *restree.Tree {
	doc := restree.New()
	for _, p := range missing.KeyPaths() {
		entry := restree.New()
		base, _ := restree.Lookup(baseline, p)
		entry.Set(baselineID, restree.CloneValue(base))

		if referenceID != "" && referenceID != baselineID {
			var ref any = ""
			if v, ok := restree.Lookup(reference, p); ok && v != nil && restree.IsLeaf(v) {
				ref = restree.CloneValue(v)
			}
			entry.Set(referenceID, ref)
		}
		doc.Set(p.String(), entry)
	}
	return doc
}
