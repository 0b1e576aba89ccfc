// Package enrich bundles merchant normalization and categorization into the
// single enrichment step the pipeline and the re-categorization flow share.
package enrich

import (
	"github.com/mfigueira/extrato/internal/category"
	"github.com/mfigueira/extrato/internal/merchant"
)

// Enricher is read-only after construction; enriching distinct transactions
// is independent and safe to run concurrently.
type Enricher struct {
	normalizer  *merchant.Normalizer
	categorizer *category.Categorizer
}

func New() *Enricher {
	return &Enricher{
		normalizer:  merchant.NewNormalizer(),
		categorizer: category.NewCategorizer(),
	}
}

// Enrich computes the canonical merchant name and the category for a raw
// merchant plus optional description. It needs nothing but those two strings,
// so stored transactions can be re-enriched without the original PDF.
func (e *Enricher) Enrich(rawMerchant, description string) (normalized, cat string) {
	return e.normalizer.Normalize(rawMerchant), e.categorizer.Categorize(rawMerchant, description)
}
