// Package merchant maps raw statement merchant strings to canonical display
// names.
package merchant

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// paymentPrefixPattern strips the payment markers card processors prepend
	// to the merchant name, e.g. "PG *", "PAGAMENTO ".
	paymentPrefixPattern = regexp.MustCompile(`(?i)^(pg|pag|pago|pagamento|debito|credito)\s*\*?\s*`)

	asteriskRunPattern   = regexp.MustCompile(`\s+\*+`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// Normalizer resolves merchant names against an ordered canonical table.
// It is read-only after construction and safe for concurrent use.
type Normalizer struct {
	entries []Entry
	index   map[string]string
}

func NewNormalizer() *Normalizer {
	return NewNormalizerWithTable(canonicalMerchants)
}

// NewNormalizerWithTable builds a normalizer over the given entries. Table
// order is meaningful: it is the tie-break for the containment fallback.
func NewNormalizerWithTable(entries []Entry) *Normalizer {
	index := make(map[string]string, len(entries))

	for _, e := range entries {
		if _, ok := index[e.Key]; !ok {
			index[e.Key] = e.Name
		}
	}

	return &Normalizer{entries: entries, index: index}
}

// Normalize returns the canonical display name for a raw merchant string.
// Resolution order: exact lookup of the cleaned key, then a containment scan
// in table order (either string containing the other), then a title-cased
// rendering of the raw input. Empty or whitespace-only input is returned
// unchanged.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	cleaned := cleanKey(raw)

	if name, ok := n.index[cleaned]; ok {
		return name
	}

	for _, e := range n.entries {
		if strings.Contains(cleaned, e.Key) || strings.Contains(e.Key, cleaned) {
			return e.Name
		}
	}

	return titleCase(raw)
}

// cleanKey lowercases the input, strips the payment-marker prefix, and
// normalizes asterisk and whitespace runs into single spaces.
func cleanKey(raw string) string {
	k := strings.TrimSpace(strings.ToLower(raw))
	k = paymentPrefixPattern.ReplaceAllString(k, "")
	k = asteriskRunPattern.ReplaceAllString(k, " ")
	k = whitespaceRunPattern.ReplaceAllString(k, " ")

	return strings.TrimSpace(k)
}

// titleCase lowercases the string and uppercases the first rune of each
// space-separated token.
func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")

	for i, w := range words {
		if w == "" {
			continue
		}

		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}
