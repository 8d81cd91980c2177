package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// PayeeTotal is the expense total for one description.
type PayeeTotal struct {
	Payee string
	Total decimal.Decimal // absolute value
}

// RankingSentinel is the single row returned by Ranking for an empty subset.
const RankingSentinel = "N/A"

type signedTotal struct {
	payee string
	sum   decimal.Decimal
}

// expenseTotals groups expenses by description, most negative sum first.
// Ties break on payee name so output is deterministic.
func expenseTotals(txns []model.Transaction) []signedTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		sums[t.Description] = sums[t.Description].Add(t.Amount)
	}

	out := make([]signedTotal, 0, len(sums))
	for p, s := range sums {
		out = append(out, signedTotal{payee: p, sum: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].sum.Equal(out[j].sum) {
			return out[i].sum.LessThan(out[j].sum)
		}
		return out[i].payee < out[j].payee
	})
	return out
}

// TopPayees returns the n largest expense destinations, biggest first.
// "Largest" means the n most negative signed sums; zero or negative n
// means no limit.
func TopPayees(txns []model.Transaction, n int) []PayeeTotal {
	grouped := expenseTotals(txns)
	if n > 0 && len(grouped) > n {
		grouped = grouped[:n]
	}
	out := make([]PayeeTotal, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, PayeeTotal{Payee: g.payee, Total: g.sum.Abs()})
	}
	return out
}

// Ranking returns the full expense ranking, biggest first. An empty
// subset yields a single sentinel row instead of an empty table.
func Ranking(txns []model.Transaction) []PayeeTotal {
	out := TopPayees(txns, 0)
	if len(out) == 0 {
		return []PayeeTotal{{Payee: RankingSentinel, Total: decimal.Zero}}
	}
	return out
}
