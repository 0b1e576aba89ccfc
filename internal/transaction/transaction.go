package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a stored ledger entry. Merchant and RawDescription keep the
// statement text as parsed; NormalizedMerchant and Category are derived and
// can be recomputed from them at any time.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Date               time.Time
	Merchant           string
	NormalizedMerchant string
	Amount             decimal.Decimal
	Currency           string
	RawDescription     string
	Category           string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
