package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfigueira/extrato/internal/transaction"
)

type transactionResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Date               string          `json:"date"`
	Merchant           string          `json:"merchant"`
	NormalizedMerchant string          `json:"normalized_merchant"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	RawDescription     string          `json:"raw_description,omitempty"`
	Category           string          `json:"category"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                 tx.ID,
		Date:               tx.Date.Format(time.DateOnly),
		Merchant:           tx.Merchant,
		NormalizedMerchant: tx.NormalizedMerchant,
		Amount:             tx.Amount,
		Currency:           tx.Currency,
		RawDescription:     tx.RawDescription,
		Category:           tx.Category,
		CreatedAt:          tx.CreatedAt,
		UpdatedAt:          tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
