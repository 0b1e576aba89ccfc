// Package statement handles statement uploads: the file is parsed, its
// transactions enriched and persisted, and the imported rows returned.
package statement

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfigueira/extrato/internal/extractor"
	"github.com/mfigueira/extrato/internal/importer"
	"github.com/mfigueira/extrato/internal/transaction"
)

// Importer turns an uploaded document into create-params records.
type Importer interface {
	Import(source importer.Source, data []byte, password string) ([]transaction.CreateParams, error)
}

// TransactionImporter persists a parsed statement for a user.
type TransactionImporter interface {
	ImportBatch(ctx context.Context, userID uuid.UUID, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

type Handler struct {
	importSvc Importer
	txSvc     TransactionImporter

	maxUploadBytes int64
}

func NewHandler(importSvc Importer, txSvc TransactionImporter, maxUploadBytes int64) *Handler {
	return &Handler{
		importSvc:      importSvc,
		txSvc:          txSvc,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg, Code: code}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

type importedTransaction struct {
	ID                 uuid.UUID       `json:"id"`
	Date               string          `json:"date"`
	Merchant           string          `json:"merchant"`
	NormalizedMerchant string          `json:"normalized_merchant"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Category           string          `json:"category"`
}

type uploadResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(r.Header.Get("X-User-ID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-ID header", "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form", "")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required", "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file", "")
		return
	}

	source := importer.SourceC6PDF
	if s := r.FormValue("source"); s != "" {
		source = importer.Source(s)
	}

	params, err := h.importSvc.Import(source, data, r.FormValue("password"))
	if err != nil {
		h.writeImportError(w, err)
		return
	}

	txs, err := h.txSvc.ImportBatch(r.Context(), uid, params)
	if err != nil {
		slog.Error("failed to persist imported transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transactions", "")

		return
	}

	resp := uploadResponse{
		Imported:     len(txs),
		Transactions: make([]importedTransaction, len(txs)),
	}

	for i, tx := range txs {
		resp.Transactions[i] = importedTransaction{
			ID:                 tx.ID,
			Date:               tx.Date.Format(time.DateOnly),
			Merchant:           tx.Merchant,
			NormalizedMerchant: tx.NormalizedMerchant,
			Amount:             tx.Amount,
			Currency:           tx.Currency,
			Category:           tx.Category,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, extractor.ErrPasswordRequired):
		writeError(w, http.StatusUnprocessableEntity, "statement is password protected", "password_required")
	case errors.Is(err, extractor.ErrIncorrectPassword):
		writeError(w, http.StatusUnauthorized, "incorrect statement password", "incorrect_password")
	case errors.Is(err, extractor.ErrExtractionFailed):
		writeError(w, http.StatusBadRequest, "could not extract text from statement", "extraction_failed")
	default:
		writeError(w, http.StatusBadRequest, err.Error(), "")
	}
}
