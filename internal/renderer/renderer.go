// Package renderer draws figures and tables as styled terminal text.
package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/figure"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	creditStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	debitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Figure renders a chart spec as text. Placeholder figures render their
// title in a muted style and nothing else.
func Figure(f figure.Figure, width int) string {
	if f.Empty() {
		return mutedStyle.Render(f.Title)
	}

	lines := []string{titleStyle.Render(f.Title)}
	switch f.Kind {
	case figure.KindPie:
		lines = append(lines, pieLines(f)...)
	default:
		lines = append(lines, barLines(f, width)...)
	}
	return strings.Join(lines, "\n")
}

// barLines draws one scaled bar per label. Used for bar, hbar, line and
// histogram kinds; the terminal collapses them all to horizontal bars.
func barLines(f figure.Figure, width int) []string {
	labelWidth := 0
	for _, l := range f.Labels {
		if n := utf8.RuneCountInString(l); n > labelWidth {
			labelWidth = n
		}
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	maxAbs := decimal.Zero
	for _, v := range f.Values {
		if v.Abs().GreaterThan(maxAbs) {
			maxAbs = v.Abs()
		}
	}

	barWidth := width - labelWidth - 16
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range f.Values {
		label := truncate(f.Labels[i], labelWidth)
		n := 0
		if !maxAbs.IsZero() {
			n = int(v.Abs().Div(maxAbs).Mul(decimal.NewFromInt(int64(barWidth))).IntPart())
		}
		bar := barStyle.Render(strings.Repeat("█", n))
		value := v.StringFixed(2)
		if v.IsNegative() {
			value = debitStyle.Render(value)
		} else {
			value = valueStyle.Render(value)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", labelStyle.Render(padRight(label, labelWidth)), bar, value))
	}
	return lines
}

// pieLines draws each slice as a percentage of the whole.
func pieLines(f figure.Figure) []string {
	total := decimal.Zero
	for _, v := range f.Values {
		total = total.Add(v)
	}

	var lines []string
	for i, v := range f.Values {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = v.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
		}
		lines = append(lines, fmt.Sprintf("%s %s%% (%s)",
			labelStyle.Render(padRight(truncate(f.Labels[i], 24), 24)),
			valueStyle.Render(pct.StringFixed(1)),
			v.StringFixed(2)))
	}
	return lines
}

// Summary renders the KPI block.
func Summary(s report.Summary) string {
	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Total Gasto", "R$ " + s.TotalSpent.StringFixed(2), debitStyle},
		{"Total Recebido", "R$ " + s.TotalReceived.StringFixed(2), creditStyle},
		{"Valor Médio Gasto", "R$ " + s.AverageExpense.StringFixed(2), debitStyle},
		{"Nº de Transações", fmt.Sprintf("%d", s.Count), valueStyle},
	}

	netStyle := creditStyle
	if s.Net.IsNegative() {
		netStyle = debitStyle
	}
	rows = append(rows, struct {
		label string
		value string
		style lipgloss.Style
	}{"Saldo Líquido", "R$ " + s.Net.StringFixed(2), netStyle})

	var lines []string
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(padRight(r.label, 18))+" "+r.style.Render(r.value))
	}
	return strings.Join(lines, "\n")
}

// Ranking renders the full payee expense ranking table.
func Ranking(rows []report.PayeeTotal, width int) string {
	descWidth := width - 16
	if descWidth < 10 {
		descWidth = 10
	}
	lines := []string{titleStyle.Render("Ranking de Gastos por Estabelecimento")}
	for i, r := range rows {
		lines = append(lines, fmt.Sprintf("%2d. %s %s",
			i+1,
			labelStyle.Render(padRight(truncate(r.Payee, descWidth), descWidth)),
			valueStyle.Render(r.Total.StringFixed(2))))
	}
	return strings.Join(lines, "\n")
}

// Transactions renders the detail table, newest first, at most limit rows.
func Transactions(txns []model.Transaction, limit, width int) string {
	dateWidth := 10
	amountWidth := 12
	descWidth := width - dateWidth - amountWidth - 4
	if descWidth < 5 {
		descWidth = 5
	}

	header := fmt.Sprintf("%s  %*s  %s",
		padRight("Data", dateWidth), amountWidth, "Valor", padRight("Descrição", descWidth))
	lines := []string{labelStyle.Render(header)}

	shown := txns
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, t := range shown {
		amount := fmt.Sprintf("%*s", amountWidth, t.Amount.StringFixed(2))
		if t.Amount.IsNegative() {
			amount = debitStyle.Render(amount)
		} else {
			amount = creditStyle.Render(amount)
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			padRight(t.Date.Format("2006-01-02"), dateWidth), amount,
			padRight(truncate(t.Description, descWidth), descWidth)))
	}
	if limit > 0 && len(txns) > limit {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("── mostrando %d de %d ──", limit, len(txns))))
	}
	return strings.Join(lines, "\n")
}

// padRight and truncate count runes so accented labels stay aligned and
// never get cut mid-sequence.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
