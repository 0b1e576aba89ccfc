package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a Brazilian-formatted amount token into a signed decimal.
// Format examples: "1.234,56" -> 1234.56, "-45,00" -> -45, "R$ 173,56" -> 173.56.
// Dots are thousands separators, the comma is the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))

	negative := strings.HasPrefix(clean, "-")
	clean = strings.TrimPrefix(clean, "-")

	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Replace(clean, ",", ".", 1)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if negative {
		d = d.Neg()
	}

	return d, nil
}
