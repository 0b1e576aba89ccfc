package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateCategory(ctx context.Context, userID, id uuid.UUID, category string) error
	UpdateEnrichment(ctx context.Context, userID, id uuid.UUID, normalizedMerchant, category string) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// Enricher recomputes the derived fields from the parsed ones. The merchant
// normalizer and the categorizer behind it are pure, so re-running them is
// always safe.
type Enricher interface {
	Enrich(rawMerchant, description string) (normalizedMerchant, category string)
}

type Service struct {
	repo     Repository
	enricher Enricher
}

func NewService(repo Repository, enricher Enricher) *Service {
	return &Service{repo: repo, enricher: enricher}
}

// CreateParams carries one enriched pipeline record into storage; identity
// and timestamps are assigned by the repository.
type CreateParams struct {
	Date               time.Time
	Merchant           string
	NormalizedMerchant string
	Amount             decimal.Decimal
	Currency           string
	RawDescription     string
	Category           string
}

type ListFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	tx := fromParams(userID, params)

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ImportBatch stores a parsed statement's transactions for a user in one go.
func (s *Service) ImportBatch(ctx context.Context, userID uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = fromParams(userID, p)
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("importing transactions: %w", err)
	}

	return txs, nil
}

// Get fetches one of the user's transactions. Rows belonging to another
// user are indistinguishable from missing ones.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) UpdateCategory(ctx context.Context, userID, id uuid.UUID, category string) error {
	return s.repo.UpdateCategory(ctx, userID, id, category)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

// Recategorize re-runs enrichment over all of a user's stored transactions,
// using only the stored merchant and raw description. Returns how many rows
// actually changed.
func (s *Service) Recategorize(ctx context.Context, userID uuid.UUID) (int, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{UserID: userID})
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	updated := 0

	for _, tx := range txs {
		normalized, cat := s.enricher.Enrich(tx.Merchant, tx.RawDescription)
		if normalized == tx.NormalizedMerchant && cat == tx.Category {
			continue
		}

		if err := s.repo.UpdateEnrichment(ctx, userID, tx.ID, normalized, cat); err != nil {
			return updated, fmt.Errorf("updating transaction %s: %w", tx.ID, err)
		}

		updated++
	}

	return updated, nil
}

func fromParams(userID uuid.UUID, p CreateParams) *Transaction {
	return &Transaction{
		UserID:             userID,
		Date:               p.Date,
		Merchant:           p.Merchant,
		NormalizedMerchant: p.NormalizedMerchant,
		Amount:             p.Amount,
		Currency:           p.Currency,
		RawDescription:     p.RawDescription,
		Category:           p.Category,
	}
}
