package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// CategoryShare is the expense total for one category.
type CategoryShare struct {
	Category string
	Total    decimal.Decimal // absolute value
}

// CategoryDistribution sums expenses per category, excluding rows whose
// type equals excludedType. Categories are currently a constant label so
// the table usually has a single row; the shape is kept for when real
// classification lands.
func CategoryDistribution(txns []model.Transaction, excludedType string) []CategoryShare {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() || t.Type == excludedType {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	out := make([]CategoryShare, 0, len(sums))
	for c, s := range sums {
		out = append(out, CategoryShare{Category: c, Total: s.Abs()})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
