package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// MonthTotal is the expense total for one "YYYY-MM" bucket.
type MonthTotal struct {
	Month string
	Total decimal.Decimal // absolute value
}

// MonthlyTotals sums expenses per calendar month, ascending by month.
func MonthlyTotals(txns []model.Transaction) []MonthTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		m := t.Month()
		sums[m] = sums[m].Add(t.Amount)
	}

	out := make([]MonthTotal, 0, len(sums))
	for m, total := range sums {
		out = append(out, MonthTotal{Month: m, Total: total.Abs()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
