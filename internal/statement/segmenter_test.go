package statement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueira/extrato/internal/statement"
)

// fixedClock pins year inference: months up to June resolve to 2026, months
// after June to 2025.
func fixedClock() time.Time {
	return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newSegmenter() *statement.Segmenter {
	return statement.NewSegmenterWithClock(fixedClock)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSegment_Basic(t *testing.T) {
	text := `EXTRATO C6 BANK
SALDO ANTERIOR 1.000,00
Data Descrição Valor
12 jan UBER TRIP 25,90
13 jan IFOOD RESTAURANTE 45,50
`

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, "UBER TRIP", txs[0].Merchant)
	assert.True(t, txs[0].Amount.Equal(amt("25.90")))
	assert.Equal(t, "UBER TRIP 25,90", txs[0].RawDescription)

	assert.Equal(t, time.Date(2026, time.January, 13, 0, 0, 0, 0, time.UTC), txs[1].Date)
	assert.Equal(t, "IFOOD RESTAURANTE", txs[1].Merchant)
	assert.True(t, txs[1].Amount.Equal(amt("45.50")))
}

func TestSegment_ConsecutiveBoundaries(t *testing.T) {
	text := "2 mar NETFLIX.COM 39,90\n3 mar SPOTIFY 21,90\n"

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 2)

	// No line leaks across the boundary.
	assert.Equal(t, "NETFLIX.COM 39,90", txs[0].RawDescription)
	assert.Equal(t, "SPOTIFY 21,90", txs[1].RawDescription)
}

func TestSegment_RightMostAmountWins(t *testing.T) {
	txs := newSegmenter().Segment("12 jan LOJA 123,45 REF 99,90\n")
	require.Len(t, txs, 1)

	assert.Equal(t, "LOJA 123,45 REF", txs[0].Merchant)
	assert.True(t, txs[0].Amount.Equal(amt("99.90")))
}

func TestSegment_MultiLineTransaction(t *testing.T) {
	text := `5 fev PATREON MEMBERSHIP
INTERNATIONAL PURCHASE
USD 5,00 CONVERTED 26,43
6 fev UBER TRIP 18,00
`

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 2)

	assert.Equal(t, "PATREON MEMBERSHIP INTERNATIONAL PURCHASE USD 5,00 CONVERTED 26,43", txs[0].RawDescription)
	assert.Equal(t, "PATREON MEMBERSHIP INTERNATIONAL PURCHASE USD 5,00 CONVERTED", txs[0].Merchant)
	assert.True(t, txs[0].Amount.Equal(amt("26.43")))

	assert.Equal(t, "UBER TRIP", txs[1].Merchant)
}

func TestSegment_WhitespaceNormalization(t *testing.T) {
	text := "12   jan    UBER   TRIP     25,90\r\n"

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "UBER TRIP", txs[0].Merchant)
}

func TestSegment_ExclusionMarker(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "lowercase", text: "12 jan inclusao de pagamento 100,00\n"},
		{name: "uppercase", text: "12 jan INCLUSAO DE PAGAMENTO 100,00\n"},
		{name: "on continuation line", text: "12 jan PAGAMENTO FATURA 100,00\nInclusao de Pagamento\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, newSegmenter().Segment(tt.text))
		})
	}
}

func TestSegment_Discards(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no amount", text: "12 jan TRANSFERENCIA RECEBIDA\n"},
		{name: "zero amount", text: "12 jan ESTORNO 0,00\n"},
		{name: "empty merchant", text: "12 jan 25,90\n"},
		{name: "no boundary at all", text: "UBER TRIP 25,90\nsome other text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, newSegmenter().Segment(tt.text))
		})
	}
}

func TestSegment_DiscardedSpanDoesNotSwallowNextBoundary(t *testing.T) {
	// The first transaction has no amount and is discarded; the scan must
	// resume at the next boundary, not past it.
	text := "12 jan TRANSFERENCIA RECEBIDA\n13 jan UBER TRIP 25,90\n"

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "UBER TRIP", txs[0].Merchant)
}

func TestSegment_NoiseLinesAreSkipped(t *testing.T) {
	text := `C6 BANK S.A.
EXTRATO DE CONTA
SALDO ANTERIOR 2.345,67
PÁGINA 1 DE 3
Data Descrição Valor
Date Description Amount
12 jan UBER TRIP 25,90
`

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "UBER TRIP", txs[0].Merchant)
}

func TestSegment_NoiseInsideSpanIsKept(t *testing.T) {
	// Continuation lines are not noise-filtered: a balance line inside a span
	// is folded into the raw description.
	text := "12 jan UBER TRIP 25,90\nSALDO PARCIAL\n13 jan IFOOD 30,00\n"

	txs := newSegmenter().Segment(text)
	require.Len(t, txs, 2)
	assert.Equal(t, "UBER TRIP 25,90 SALDO PARCIAL", txs[0].RawDescription)
	assert.Equal(t, "UBER TRIP", txs[0].Merchant)
}

func TestSegment_YearInference(t *testing.T) {
	// Current month is June 2026 under the fixed clock.
	tests := []struct {
		name     string
		text     string
		wantDate time.Time
	}{
		{
			name:     "past month stays in current year",
			text:     "12 jan UBER TRIP 25,90\n",
			wantDate: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "current month stays in current year",
			text:     "1 jun UBER TRIP 25,90\n",
			wantDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "future month rolls back a year",
			text:     "24 dez UBER TRIP 25,90\n",
			wantDate: time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := newSegmenter().Segment(tt.text)
			require.Len(t, txs, 1)
			assert.Equal(t, tt.wantDate, txs[0].Date)
		})
	}
}

func TestSegment_DecemberSeenInJanuary(t *testing.T) {
	january := func() time.Time {
		return time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	}

	txs := statement.NewSegmenterWithClock(january).Segment("24 dez MERCADO LIVRE 150,00\n")
	require.Len(t, txs, 1)
	assert.Equal(t, 2025, txs[0].Date.Year())
}

func TestSegment_DayZeroPadding(t *testing.T) {
	txs := newSegmenter().Segment("3 mai FARMACIA DROGASIL 19,99\n")
	require.Len(t, txs, 1)
	assert.Equal(t, "2026-05-03", txs[0].Date.Format(time.DateOnly))
}

func TestSegment_CaseInsensitiveBoundary(t *testing.T) {
	txs := newSegmenter().Segment("12 JAN UBER TRIP 25,90\n")
	require.Len(t, txs, 1)
	assert.Equal(t, time.January, txs[0].Date.Month())
}

func TestSegment_EmptyInput(t *testing.T) {
	assert.Empty(t, newSegmenter().Segment(""))
	assert.Empty(t, newSegmenter().Segment("\n\n\n"))
}
