// Package balance aggregates backend-computed balance records for display.
// All operations are pure reductions; empty input yields zero aggregates.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/contable-dev/contable/internal/model"
)

// Total sums the net balance across the records.
func Total(records []model.BalanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Saldo)
	}
	return total
}

// ByType returns the net-balance subtotal for each of the five account
// types. Type comparison is case-insensitive. Every type is present in the
// result, at zero when no record matches.
func ByType(records []model.BalanceRecord) map[model.AccountType]decimal.Decimal {
	subtotals := make(map[model.AccountType]decimal.Decimal, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		subtotals[t] = decimal.Zero
	}
	for _, r := range records {
		t := model.NormalizeAccountType(string(r.Tipo))
		subtotals[t] = subtotals[t].Add(r.Saldo)
	}
	return subtotals
}

// Counts classifies records by the sign of their net balance.
type Counts struct {
	Positive int
	Negative int
	Zero     int
}

// Classify counts records with positive, negative and exactly-zero balance.
func Classify(records []model.BalanceRecord) Counts {
	var c Counts
	for _, r := range records {
		switch r.Saldo.Sign() {
		case 1:
			c.Positive++
		case -1:
			c.Negative++
		default:
			c.Zero++
		}
	}
	return c
}

// FilterByType keeps the records whose account type matches tipo,
// case-insensitively. An empty tipo keeps everything.
func FilterByType(records []model.BalanceRecord, tipo string) []model.BalanceRecord {
	if tipo == "" {
		return records
	}
	want := model.NormalizeAccountType(tipo)
	var out []model.BalanceRecord
	for _, r := range records {
		if model.NormalizeAccountType(string(r.Tipo)) == want {
			out = append(out, r)
		}
	}
	return out
}
