package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNumbers maps the Portuguese month abbreviations C6 prints in front of
// each transaction to calendar months.
var monthNumbers = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

var (
	// boundaryPattern marks the start of a transaction: "12 jan ...".
	boundaryPattern = regexp.MustCompile(`(?i)^(\d{1,2})\s+(jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)\s+`)

	// amountPattern matches Brazilian currency tokens: "173,56", "1.234,56".
	amountPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)

	// columnHeaderPattern matches the table header row in either locale.
	columnHeaderPattern = regexp.MustCompile(`(?i)^(data\s+descrição|date\s+description)`)
)

// exclusionMarker flags invoice-payment bookkeeping entries that mirror a real
// transaction elsewhere on the statement. Matched against lowercased text.
const exclusionMarker = "inclusao de pagamento"

// Segmenter extracts transactions from statement text. The zero statement year
// is not printed by C6, so the segmenter infers it from the clock; tests
// inject a fixed one.
type Segmenter struct {
	now func() time.Time
}

func NewSegmenter() *Segmenter {
	return &Segmenter{now: time.Now}
}

// NewSegmenterWithClock returns a segmenter that resolves years against the
// given clock instead of time.Now.
func NewSegmenterWithClock(now func() time.Time) *Segmenter {
	return &Segmenter{now: now}
}

// Segment scans the text for date-prefixed transaction lines and returns one
// ParsedTransaction per boundary, in source order. It never fails: content it
// cannot make sense of yields fewer transactions, not an error.
func (s *Segmenter) Segment(text string) []ParsedTransaction {
	lines := normalizeLines(text)

	var txs []ParsedTransaction

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isNoise(line) {
			continue
		}

		m := boundaryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		month, ok := monthNumbers[strings.ToLower(m[2])]
		if !ok {
			continue
		}

		// The transaction spans this line (minus the date prefix) plus every
		// following line up to the next boundary. Continuation lines are taken
		// verbatim; only boundary candidates go through the noise filter.
		span := []string{strings.TrimSpace(line[len(m[0]):])}

		j := i + 1
		for j < len(lines) && !boundaryPattern.MatchString(lines[j]) {
			span = append(span, lines[j])
			j++
		}

		// The span is consumed regardless of whether it yields a transaction.
		i = j - 1

		joined := strings.Join(span, " ")

		// The description may itself contain amount-shaped tokens (codes,
		// wrapped partial amounts); the real amount is the right-most match.
		locs := amountPattern.FindAllStringIndex(joined, -1)
		if len(locs) == 0 {
			continue
		}

		last := locs[len(locs)-1]

		merchant := strings.TrimSpace(joined[:last[0]])
		if merchant == "" {
			continue
		}

		if strings.Contains(strings.ToLower(joined), exclusionMarker) {
			continue
		}

		amount, err := ParseAmount(joined[last[0]:last[1]])
		if err != nil || amount.IsZero() {
			continue
		}

		day, _ := strconv.Atoi(m[1])

		txs = append(txs, ParsedTransaction{
			Date:           s.resolveDate(day, month),
			Merchant:       merchant,
			Amount:         amount,
			RawDescription: joined,
		})
	}

	return txs
}

// normalizeLines splits the text into lines, collapses runs of whitespace to a
// single space, trims, and drops empties.
func normalizeLines(text string) []string {
	var lines []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.Join(strings.Fields(raw), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// isNoise reports whether a line is known non-transaction content: statement
// headers, balance lines, page markers, or the column-header row.
func isNoise(line string) bool {
	if strings.Contains(line, "EXTRATO") ||
		strings.Contains(line, "C6 BANK") ||
		strings.Contains(line, "SALDO") ||
		strings.Contains(line, "PÁGINA") {
		return true
	}

	return columnHeaderPattern.MatchString(line)
}

// resolveDate builds the transaction date. Statements omit the year; a month
// ahead of the current one can only belong to the previous year (a December
// entry on a statement generated in January).
func (s *Segmenter) resolveDate(day int, month time.Month) time.Time {
	now := s.now()

	year := now.Year()
	if month > now.Month() {
		year--
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
