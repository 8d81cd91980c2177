// Package ledger holds the combined transaction table and the filter
// predicates the dashboard applies to it. A Ledger is immutable after
// assembly: filters produce new subsets, nothing is written back.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Ledger is an ordered collection of transactions, newest first.
type Ledger struct {
	txns []model.Transaction
}

// New builds a Ledger from rows in any order, sorting descending by date.
// The sort is stable so rows from the same file keep their relative order
// within a day.
func New(txns []model.Transaction) *Ledger {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return &Ledger{txns: sorted}
}

// All returns the rows, newest first. Callers must not mutate the slice.
func (l *Ledger) All() []model.Transaction {
	return l.txns
}

// Len returns the row count.
func (l *Ledger) Len() int {
	return len(l.txns)
}

// Payees returns the sorted unique descriptions.
func (l *Ledger) Payees() []string {
	return l.uniques(func(t model.Transaction) string { return t.Description })
}

// Types returns the sorted unique transaction type labels.
func (l *Ledger) Types() []string {
	return l.uniques(func(t model.Transaction) string { return t.Type })
}

func (l *Ledger) uniques(key func(model.Transaction) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range l.txns {
		k := key(t)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the oldest and newest dates. ok is false when the
// ledger is empty.
func (l *Ledger) DateBounds() (oldest, newest time.Time, ok bool) {
	if len(l.txns) == 0 {
		return time.Time{}, time.Time{}, false
	}
	// Rows are sorted newest first.
	return l.txns[len(l.txns)-1].Date, l.txns[0].Date, true
}

// AmountBounds returns the smallest and largest signed amounts. ok is
// false when the ledger is empty.
func (l *Ledger) AmountBounds() (min, max decimal.Decimal, ok bool) {
	if len(l.txns) == 0 {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	min, max = l.txns[0].Amount, l.txns[0].Amount
	for _, t := range l.txns[1:] {
		if t.Amount.LessThan(min) {
			min = t.Amount
		}
		if t.Amount.GreaterThan(max) {
			max = t.Amount
		}
	}
	return min, max, true
}
