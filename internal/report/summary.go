// Package report computes derived tables from a ledger subset. Every
// function is pure: rows in, small table out, recomputed on each filter
// change. Empty input yields an empty (or sentinel) table, never an error.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Summary holds the headline KPI figures for a ledger subset.
type Summary struct {
	TotalSpent     decimal.Decimal // absolute value of all expenses
	TotalReceived  decimal.Decimal
	AverageExpense decimal.Decimal // absolute value, zero when no expenses
	Count          int
	Net            decimal.Decimal // received minus spent
}

// Summarize computes the KPI figures. Amount sign alone decides whether a
// row counts as expense or income.
func Summarize(txns []model.Transaction) Summary {
	var s Summary
	spent := decimal.Zero
	expenses := 0
	for _, t := range txns {
		s.Count++
		if t.IsExpense() {
			spent = spent.Add(t.Amount)
			expenses++
		} else if t.IsIncome() {
			s.TotalReceived = s.TotalReceived.Add(t.Amount)
		}
	}
	s.TotalSpent = spent.Abs()
	if expenses > 0 {
		s.AverageExpense = s.TotalSpent.Div(decimal.NewFromInt(int64(expenses))).Round(2)
	}
	s.Net = s.TotalReceived.Sub(s.TotalSpent)
	return s
}
