// Package importer runs the statement pipeline: extract text from the
// uploaded document, segment it into transactions, and enrich each one.
package importer

import (
	"github.com/mfigueira/extrato/internal/statement"
)

// Source identifies the upload format.
type Source string

const (
	// SourceC6PDF is a C6 Bank PDF statement, optionally password protected.
	SourceC6PDF Source = "c6-pdf"
	// SourceC6Text is already-extracted statement text, charset-detected and
	// fed straight to the segmenter.
	SourceC6Text Source = "c6-text"
)

// Currency is assigned to every imported transaction. Statements carry no
// currency marker; C6 accounts are BRL.
const Currency = "BRL"

type Extractor interface {
	Extract(data []byte, password string) (string, error)
}

type Segmenter interface {
	Segment(text string) []statement.ParsedTransaction
}

type Enricher interface {
	Enrich(rawMerchant, description string) (normalizedMerchant, category string)
}
