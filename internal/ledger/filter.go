package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Filter is the set of predicates the dashboard applies to the ledger.
// Zero values mean "no constraint": zero times for the date range, empty
// strings for type and payee, nil for the amount bounds.
type Filter struct {
	Start time.Time
	End   time.Time
	Type  string
	Payee string
	Min   *decimal.Decimal
	Max   *decimal.Decimal
}

// DatesInverted reports whether both dates are set with Start after End.
// An inverted range does not error: Apply ignores the date constraint and
// the caller is expected to warn the user.
func (f Filter) DatesInverted() bool {
	return !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End)
}

// Apply returns the subset of l matching the filter, preserving order.
// Zero-amount rows are always excluded from filtered views.
func (f Filter) Apply(l *Ledger) *Ledger {
	useDates := (!f.Start.IsZero() || !f.End.IsZero()) && !f.DatesInverted()

	var out []model.Transaction
	for _, t := range l.txns {
		if t.Amount.IsZero() {
			continue
		}
		if useDates {
			if !f.Start.IsZero() && t.Date.Before(f.Start) {
				continue
			}
			if !f.End.IsZero() && t.Date.After(f.End) {
				continue
			}
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Payee != "" && t.Description != f.Payee {
			continue
		}
		if f.Min != nil && t.Amount.LessThan(*f.Min) {
			continue
		}
		if f.Max != nil && t.Amount.GreaterThan(*f.Max) {
			continue
		}
		out = append(out, t)
	}
	return &Ledger{txns: out}
}
