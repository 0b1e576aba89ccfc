package importer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mfigueira/extrato/internal/encoding"
	"github.com/mfigueira/extrato/internal/enrich"
	"github.com/mfigueira/extrato/internal/extractor"
	"github.com/mfigueira/extrato/internal/statement"
	"github.com/mfigueira/extrato/internal/transaction"
)

type Service struct {
	extractor Extractor
	segmenter Segmenter
	enricher  Enricher
}

func NewService() *Service {
	return &Service{
		extractor: extractor.New(),
		segmenter: statement.NewSegmenter(),
		enricher:  enrich.New(),
	}
}

// Import runs the full pipeline over an uploaded statement and returns one
// create-params record per recognized transaction, in statement order.
// Extraction errors surface as-is so the caller can distinguish password
// problems; segmentation and enrichment never fail.
func (s *Service) Import(source Source, data []byte, password string) ([]transaction.CreateParams, error) {
	text, err := s.text(source, data, password)
	if err != nil {
		return nil, err
	}

	parsed := s.segmenter.Segment(text)

	params := make([]transaction.CreateParams, 0, len(parsed))

	for _, p := range parsed {
		normalized, category := s.enricher.Enrich(p.Merchant, p.RawDescription)

		params = append(params, transaction.CreateParams{
			Date:               p.Date,
			Merchant:           p.Merchant,
			NormalizedMerchant: normalized,
			Amount:             p.Amount,
			Currency:           Currency,
			RawDescription:     p.RawDescription,
			Category:           category,
		})
	}

	return params, nil
}

func (s *Service) text(source Source, data []byte, password string) (string, error) {
	switch source {
	case SourceC6PDF:
		return s.extractor.Extract(data, password)

	case SourceC6Text:
		r, err := encoding.NewUTF8Reader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("detect encoding: %w", err)
		}

		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("decode statement text: %w", err)
		}

		return string(b), nil

	default:
		return "", fmt.Errorf("unknown source: %s", source)
	}
}
