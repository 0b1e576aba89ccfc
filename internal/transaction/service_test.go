package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfigueira/extrato/internal/transaction"
)

func newMocks(t *testing.T) (*transaction.MockRepository, *transaction.MockEnricher, *transaction.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	enricher := transaction.NewMockEnricher(ctrl)

	return repo, enricher, transaction.NewService(repo, enricher)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Date:               time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
				Merchant:           "UBER TRIP",
				NormalizedMerchant: "Uber",
				Amount:             decimal.RequireFromString("25.90"),
				Currency:           "BRL",
				RawDescription:     "UBER TRIP 25,90",
				Category:           "Transportation/Ride Share",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Merchant: "UBER TRIP",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newMocks(t)
			tt.setupMock(repo)

			got, err := svc.Create(context.Background(), uuid.New(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Merchant, got.Merchant)
		})
	}
}

func TestService_ImportBatch(t *testing.T) {
	userID := uuid.New()

	params := []transaction.CreateParams{
		{Merchant: "UBER TRIP", Amount: decimal.RequireFromString("25.90"), Currency: "BRL"},
		{Merchant: "IFOOD", Amount: decimal.RequireFromString("45.50"), Currency: "BRL"},
	}

	t.Run("Success", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		repo.EXPECT().
			CreateTransactions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
				require.Len(t, txs, 2)
				for _, tx := range txs {
					assert.Equal(t, userID, tx.UserID)
					tx.ID = uuid.New()
				}
				return nil
			})

		txs, err := svc.ImportBatch(context.Background(), userID, params)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "UBER TRIP", txs[0].Merchant)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		repo.EXPECT().
			CreateTransactions(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.ImportBatch(context.Background(), userID, params)
		assert.Error(t, err)
	})
}

func TestService_Recategorize(t *testing.T) {
	userID := uuid.New()

	stale := &transaction.Transaction{
		ID:                 uuid.New(),
		UserID:             userID,
		Merchant:           "PG *Uber",
		NormalizedMerchant: "Pg *uber",
		RawDescription:     "PG *Uber 25,90",
		Category:           "Other",
	}

	current := &transaction.Transaction{
		ID:                 uuid.New(),
		UserID:             userID,
		Merchant:           "NETFLIX.COM",
		NormalizedMerchant: "Netflix",
		RawDescription:     "NETFLIX.COM 39,90",
		Category:           "Entertainment/Streaming",
	}

	t.Run("UpdatesOnlyChangedRows", func(t *testing.T) {
		repo, enricher, svc := newMocks(t)

		repo.EXPECT().
			ListTransactions(gomock.Any(), transaction.ListFilter{UserID: userID}).
			Return([]*transaction.Transaction{stale, current}, nil)

		enricher.EXPECT().
			Enrich(stale.Merchant, stale.RawDescription).
			Return("Uber", "Transportation/Ride Share")
		enricher.EXPECT().
			Enrich(current.Merchant, current.RawDescription).
			Return("Netflix", "Entertainment/Streaming")

		repo.EXPECT().
			UpdateEnrichment(gomock.Any(), userID, stale.ID, "Uber", "Transportation/Ride Share").
			Return(nil)

		updated, err := svc.Recategorize(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("ListError", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		repo.EXPECT().
			ListTransactions(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("list error"))

		_, err := svc.Recategorize(context.Background(), userID)
		assert.Error(t, err)
	})

	t.Run("UpdateError", func(t *testing.T) {
		repo, enricher, svc := newMocks(t)

		repo.EXPECT().
			ListTransactions(gomock.Any(), gomock.Any()).
			Return([]*transaction.Transaction{stale}, nil)

		enricher.EXPECT().
			Enrich(gomock.Any(), gomock.Any()).
			Return("Uber", "Transportation/Ride Share")

		repo.EXPECT().
			UpdateEnrichment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.Recategorize(context.Background(), userID)
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		filter := transaction.ListFilter{UserID: uuid.New()}

		repo.EXPECT().
			ListTransactions(gomock.Any(), filter).
			Return([]*transaction.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		txs, err := svc.List(context.Background(), filter)
		require.NoError(t, err)
		assert.Len(t, txs, 2)
	})

	t.Run("Error", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		repo.EXPECT().
			ListTransactions(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("list error"))

		_, err := svc.List(context.Background(), transaction.ListFilter{})
		assert.Error(t, err)
	})
}

func TestService_UpdateCategory(t *testing.T) {
	repo, _, svc := newMocks(t)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().
		UpdateCategory(gomock.Any(), userID, id, "Food/Delivery").
		Return(nil)

	assert.NoError(t, svc.UpdateCategory(context.Background(), userID, id, "Food/Delivery"))
}

func TestService_Get_ScopedToUser(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	t.Run("OwnerSeesRow", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		repo.EXPECT().
			GetTransaction(gomock.Any(), owner, id).
			Return(&transaction.Transaction{ID: id, UserID: owner}, nil)

		tx, err := svc.Get(context.Background(), owner, id)
		require.NoError(t, err)
		assert.Equal(t, owner, tx.UserID)
	})

	t.Run("OtherUserGetsNotFound", func(t *testing.T) {
		repo, _, svc := newMocks(t)

		stranger := uuid.New()

		repo.EXPECT().
			GetTransaction(gomock.Any(), stranger, id).
			Return(nil, transaction.ErrNotFound)

		_, err := svc.Get(context.Background(), stranger, id)
		assert.ErrorIs(t, err, transaction.ErrNotFound)
	})
}

func TestService_Delete_ScopedToUser(t *testing.T) {
	repo, _, svc := newMocks(t)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().
		DeleteTransaction(gomock.Any(), userID, id).
		Return(transaction.ErrNotFound)

	err := svc.Delete(context.Background(), userID, id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
