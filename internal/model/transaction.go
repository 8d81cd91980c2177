package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized ledger row assembled from a bank export.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal // negative = expense, positive = income
	Description string
	Type        string // constant label, no classification logic yet
	Category    string // constant label, no classification logic yet
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction is an inflow.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// Month returns the "YYYY-MM" bucket of the transaction date.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Day returns the date truncated to midnight, dropping any time of day.
func (t Transaction) Day() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
}
