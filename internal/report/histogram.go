package report

import (
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// HistogramBin is one equal-width bucket over signed amounts.
type HistogramBin struct {
	Low   decimal.Decimal
	High  decimal.Decimal
	Count int
}

// Histogram buckets signed amounts into equal-width bins between the
// smallest and largest value. All identical values collapse into a single
// bin. Empty input returns nil.
func Histogram(txns []model.Transaction, bins int) []HistogramBin {
	if len(txns) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = 1
	}

	min, max := txns[0].Amount, txns[0].Amount
	for _, t := range txns[1:] {
		if t.Amount.LessThan(min) {
			min = t.Amount
		}
		if t.Amount.GreaterThan(max) {
			max = t.Amount
		}
	}

	if min.Equal(max) {
		return []HistogramBin{{Low: min, High: max, Count: len(txns)}}
	}

	width := max.Sub(min).Div(decimal.NewFromInt(int64(bins)))
	out := make([]HistogramBin, bins)
	for i := range out {
		low := min.Add(width.Mul(decimal.NewFromInt(int64(i))))
		out[i] = HistogramBin{Low: low, High: low.Add(width)}
	}
	// Close the last bin exactly at max to absorb rounding.
	out[bins-1].High = max

	for _, t := range txns {
		idx := int(t.Amount.Sub(min).Div(width).IntPart())
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
