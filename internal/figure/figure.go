// Package figure defines the renderable chart specification handed to the
// presentation layer. Builders wrap the report tables; an empty table
// becomes a placeholder figure instead of an error.
package figure

import (
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/report"
)

// Kind identifies the chart family a Figure should be drawn as.
type Kind string

const (
	KindBar       Kind = "bar"
	KindHBar      Kind = "hbar"
	KindPie       Kind = "pie"
	KindLine      Kind = "line"
	KindHistogram Kind = "histogram"
)

// PlaceholderTitle is used when the input subset has no matching rows.
const PlaceholderTitle = "Sem dados de gastos para o período"

// Figure is a chart specification: labels paired with values, plus axis
// titles. Renderers decide how to draw each kind.
type Figure struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []decimal.Decimal
}

// Empty reports whether the figure is a placeholder with no data points.
func (f Figure) Empty() bool {
	return len(f.Values) == 0
}

func placeholder(kind Kind) Figure {
	return Figure{Kind: kind, Title: PlaceholderTitle}
}

// MonthlyTotals builds the monthly expenses bar chart.
func MonthlyTotals(rows []report.MonthTotal) Figure {
	if len(rows) == 0 {
		return placeholder(KindBar)
	}
	f := Figure{
		Kind:   KindBar,
		Title:  "Gastos Totais por Mês",
		XLabel: "Mês",
		YLabel: "Valor (R$)",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Month)
		f.Values = append(f.Values, r.Total)
	}
	return f
}

// TopPayees builds the horizontal top-expenses bar chart.
func TopPayees(rows []report.PayeeTotal) Figure {
	if len(rows) == 0 {
		return placeholder(KindHBar)
	}
	f := Figure{
		Kind:   KindHBar,
		Title:  "Top Estabelecimentos de Gastos",
		XLabel: "Valor (R$)",
		YLabel: "Estabelecimento",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Payee)
		f.Values = append(f.Values, r.Total)
	}
	return f
}

// CategoryDistribution builds the category pie chart.
func CategoryDistribution(rows []report.CategoryShare) Figure {
	if len(rows) == 0 {
		return placeholder(KindPie)
	}
	f := Figure{
		Kind:  KindPie,
		Title: "Distribuição de Gastos por Categoria",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Category)
		f.Values = append(f.Values, r.Total)
	}
	return f
}

// DailyFlow builds the daily in/out line chart.
func DailyFlow(rows []report.DayFlow) Figure {
	if len(rows) == 0 {
		return placeholder(KindLine)
	}
	f := Figure{
		Kind:   KindLine,
		Title:  "Fluxo de Entrada e Saída (Diário)",
		XLabel: "Data",
		YLabel: "Valor (R$)",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Day.Format("2006-01-02"))
		f.Values = append(f.Values, r.Net)
	}
	return f
}

// CumulativeBalance builds the running balance line chart.
func CumulativeBalance(rows []report.BalancePoint) Figure {
	if len(rows) == 0 {
		return placeholder(KindLine)
	}
	f := Figure{
		Kind:   KindLine,
		Title:  "Saldo Acumulado ao Longo do Tempo",
		XLabel: "Data",
		YLabel: "Saldo Acumulado",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Date.Format("2006-01-02"))
		f.Values = append(f.Values, r.Balance)
	}
	return f
}

// Histogram builds the amount distribution chart.
func Histogram(rows []report.HistogramBin) Figure {
	if len(rows) == 0 {
		return placeholder(KindHistogram)
	}
	f := Figure{
		Kind:   KindHistogram,
		Title:  "Distribuição dos Valores das Transações",
		XLabel: "Valor",
		YLabel: "Contagem",
	}
	for _, r := range rows {
		f.Labels = append(f.Labels, r.Low.StringFixed(2)+" a "+r.High.StringFixed(2))
		f.Values = append(f.Values, decimal.NewFromInt(int64(r.Count)))
	}
	return f
}
