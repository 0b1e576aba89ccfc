// Command parse runs the statement pipeline against a local file and prints
// the result, without a database. Useful when checking a new statement layout.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfigueira/extrato/internal/importer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: parse <statement.pdf|statement.txt> [password]")
		os.Exit(1)
	}

	path := os.Args[1]

	password := ""
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	source := importer.SourceC6PDF
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		source = importer.SourceC6Text
	}

	params, err := importer.NewService().Import(source, data, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing statement: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transactions: %d\n\n", len(params))

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, p := range params {
		fmt.Printf("  %s | %10s | %-28s | %-26s | %s\n",
			p.Date.Format("2006-01-02"),
			p.Amount.StringFixed(2),
			truncate(p.NormalizedMerchant, 28),
			truncate(p.Category, 26),
			truncate(p.RawDescription, 50),
		)

		total = total.Add(p.Amount)
		byCategory[p.Category] = byCategory[p.Category].Add(p.Amount)
	}

	fmt.Println("\nTotals by Category:")
	fmt.Println("-------------------")
	for cat, amount := range byCategory {
		fmt.Printf("  %-30s %12s\n", cat, amount.StringFixed(2))
	}

	fmt.Printf("\n  %-30s %12s\n", "TOTAL", total.StringFixed(2))
}

// truncate operates on runes so accented merchant names are never cut
// mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-3]) + "..."
}
