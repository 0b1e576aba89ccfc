package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfigueira/extrato/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, user_id, date, merchant, normalized_merchant,
// amount, currency, raw_description, category, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var normalized, rawDesc, category sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.Date, &tx.Merchant, &normalized,
		&tx.Amount, &tx.Currency, &rawDesc, &category,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.NormalizedMerchant = normalized.String
	tx.RawDescription = rawDesc.String
	tx.Category = category.String

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.user_id, t.date, t.merchant, t.normalized_merchant,
	t.amount, t.currency, t.raw_description, t.category, t.created_at, t.updated_at
`

const insertTransactionQuery = `
	INSERT INTO transactions (user_id, date, merchant, normalized_merchant, amount, currency, raw_description, category, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	RETURNING id, created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	err := s.db.QueryRowContext(ctx, insertTransactionQuery,
		tx.UserID,
		tx.Date,
		tx.Merchant,
		tx.NormalizedMerchant,
		tx.Amount,
		tx.Currency,
		tx.RawDescription,
		tx.Category,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// CreateTransactions inserts a parsed statement in one database transaction
// so a half-imported statement never becomes visible.
func (s *Store) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = dbTx.Rollback() }()

	stmt, err := dbTx.PrepareContext(ctx, insertTransactionQuery)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, tx := range txs {
		err := stmt.QueryRowContext(ctx,
			tx.UserID,
			tx.Date,
			tx.Merchant,
			tx.NormalizedMerchant,
			tx.Amount,
			tx.Currency,
			tx.RawDescription,
			tx.Category,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	return nil
}

// GetTransaction is scoped to the owning user; another user's row reads as
// not found.
func (s *Store) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1 AND t.user_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.user_id = $1`

	args := []any{filter.UserID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND t.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	// Statement order is chronological; keep it that way for consumers.
	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) UpdateCategory(ctx context.Context, userID, id uuid.UUID, category string) error {
	query := `
		UPDATE transactions
		SET category = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, category, id, userID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) UpdateEnrichment(ctx context.Context, userID, id uuid.UUID, normalizedMerchant, category string) error {
	query := `
		UPDATE transactions
		SET normalized_merchant = $1, category = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
	`

	res, err := s.db.ExecContext(ctx, query, normalizedMerchant, category, id, userID)
	if err != nil {
		return fmt.Errorf("updating enrichment: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return checkAffected(res)
}

// checkAffected turns a write that matched no row into ErrNotFound, which
// covers both an unknown id and an id owned by someone else.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
