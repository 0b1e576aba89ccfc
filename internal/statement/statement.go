// Package statement turns extracted C6 Bank statement text into discrete
// transactions. The input is whatever the PDF extractor produced: one line per
// visual row, in statement order.
package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedTransaction is a single statement entry recovered from the text.
// Merchant is never empty and Amount is never zero; entries that would
// violate either are dropped during segmentation.
type ParsedTransaction struct {
	Date           time.Time
	Merchant       string
	Amount         decimal.Decimal
	RawDescription string
}
