package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// DayFlow is the signed net movement for one calendar day.
type DayFlow struct {
	Day time.Time
	Net decimal.Decimal
}

// BalancePoint is one step of the running balance.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// DailyFlow sums signed amounts per calendar day, ascending.
func DailyFlow(txns []model.Transaction) []DayFlow {
	sums := make(map[time.Time]decimal.Decimal)
	for _, t := range txns {
		d := t.Day()
		sums[d] = sums[d].Add(t.Amount)
	}

	out := make([]DayFlow, 0, len(sums))
	for d, net := range sums {
		out = append(out, DayFlow{Day: d, Net: net})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// CumulativeBalance returns the running sum of signed amounts in
// ascending date order, one point per row.
func CumulativeBalance(txns []model.Transaction) []BalancePoint {
	ordered := make([]model.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	out := make([]BalancePoint, 0, len(ordered))
	running := decimal.Zero
	for _, t := range ordered {
		running = running.Add(t.Amount)
		out = append(out, BalancePoint{Date: t.Date, Balance: running})
	}
	return out
}
