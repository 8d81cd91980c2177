package renderer

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxo-dev/fluxo/internal/figure"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/report"
)

func TestFigure_Placeholder(t *testing.T) {
	got := Figure(figure.MonthlyTotals(nil), 80)
	assert.Contains(t, got, figure.PlaceholderTitle)
	assert.Equal(t, 1, len(strings.Split(got, "\n")))
}

func TestFigure_Bars(t *testing.T) {
	f := figure.MonthlyTotals([]report.MonthTotal{
		{Month: "2024-01", Total: decimal.RequireFromString("100")},
		{Month: "2024-02", Total: decimal.RequireFromString("50")},
	})

	got := Figure(f, 80)
	assert.Contains(t, got, "Gastos Totais por Mês")
	assert.Contains(t, got, "2024-01")
	assert.Contains(t, got, "100.00")
	assert.Contains(t, got, "█")
}

func TestFigure_Pie(t *testing.T) {
	f := figure.CategoryDistribution([]report.CategoryShare{
		{Category: "N/A", Total: decimal.RequireFromString("75")},
		{Category: "Alimentação", Total: decimal.RequireFromString("25")},
	})

	got := Figure(f, 80)
	assert.Contains(t, got, "75.0%")
	assert.Contains(t, got, "25.0%")
}

func TestSummary(t *testing.T) {
	got := Summary(report.Summary{
		TotalSpent:     decimal.RequireFromString("80"),
		TotalReceived:  decimal.RequireFromString("1200"),
		AverageExpense: decimal.RequireFromString("40"),
		Count:          3,
		Net:            decimal.RequireFromString("1120"),
	})

	assert.Contains(t, got, "Total Gasto")
	assert.Contains(t, got, "R$ 80.00")
	assert.Contains(t, got, "R$ 1120.00")
	assert.Contains(t, got, "Nº de Transações")
}

func TestRanking(t *testing.T) {
	got := Ranking([]report.PayeeTotal{
		{Payee: "Mercado", Total: decimal.RequireFromString("80")},
		{Payee: "Padaria", Total: decimal.RequireFromString("60")},
	}, 80)

	assert.Contains(t, got, "Ranking de Gastos")
	assert.Contains(t, got, " 1. ")
	assert.Contains(t, got, "Mercado")
	assert.Contains(t, got, "60.00")
}

func TestTransactions_Limit(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 5; i++ {
		txns = append(txns, model.Transaction{
			Date:        time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-10"),
			Description: "Mercado",
		})
	}

	got := Transactions(txns, 3, 80)
	assert.Contains(t, got, "mostrando 3 de 5")
	require.Contains(t, got, "2024-01-01")

	got = Transactions(txns, 0, 80)
	assert.NotContains(t, got, "mostrando")
}

func TestFigure_AlignsAccentedLabels(t *testing.T) {
	f := figure.TopPayees([]report.PayeeTotal{
		{Payee: "Salário", Total: decimal.RequireFromString("80")},
		{Payee: "Mercado", Total: decimal.RequireFromString("60")},
	})

	lines := strings.Split(Figure(f, 80), "\n")
	require.Len(t, lines, 3)
	// Bars start at the same rune column regardless of accents.
	assert.Equal(t, runeIndex(lines[1], '█'), runeIndex(lines[2], '█'))
}

func runeIndex(s string, target rune) int {
	for i, r := range []rune(s) {
		if r == target {
			return i
		}
	}
	return -1
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdef", 5))
	assert.Equal(t, "a", truncate("abc", 1))

	// Rune-based: accented labels keep one symbol per cell and never
	// produce invalid UTF-8.
	assert.Equal(t, "Descrição", truncate("Descrição", 9))
	assert.Equal(t, "Descriç…", truncate("Descrição", 8))
	assert.Equal(t, "ç…", truncate("ção", 2))
	assert.True(t, utf8.ValidString(truncate("ção", 2)))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "Salário   ", padRight("Salário", 10))
	assert.Equal(t, 10, utf8.RuneCountInString(padRight("Salário", 10)))
}
