// Package tui is the interactive dashboard: a Bubble Tea model holding
// the raw ledger plus the current filter parameters. Every derived view
// is recomputed from that state through the pure report functions on each
// change; nothing is cached between interactions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/figure"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/report"
)

// Date range presets cycled with the timeframe key.
const (
	rangeAll = iota
	range30d
	range90d
	rangeYTD
	rangeCustom
	rangeCount
)

var rangeLabels = []string{"Tudo", "30D", "90D", "Ano atual", "Personalizado"}

// Amount band presets cycled with the band key.
const (
	bandAll = iota
	bandExpenses
	bandIncome
	bandCount
)

var bandLabels = []string{"Todos os valores", "Apenas gastos", "Apenas receitas"}

// derived bundles every view recomputed from the filtered subset.
type derived struct {
	rows      []model.Transaction
	summary   report.Summary
	monthly   figure.Figure
	topPayees figure.Figure
	flow      figure.Figure
	ranking   []report.PayeeTotal
	narrative string
}

// Model is the dashboard state: the immutable ledger plus filter
// parameters, and the derived views computed from them.
type Model struct {
	cfg    *config.Config
	led    *ledger.Ledger
	filter ledger.Filter

	rangeIdx int
	bandIdx  int
	payees   []string // "" sentinel at index 0 means all
	payeeIdx int
	types    []string
	typeIdx  int

	editingDates bool
	dateInput    string
	customStart  string

	exportPath string
	status     string
	width      int
	height     int
	quitting   bool

	view derived
}

// New builds the dashboard model over an assembled ledger.
func New(cfg *config.Config, led *ledger.Ledger, exportPath string) Model {
	m := Model{
		cfg:        cfg,
		led:        led,
		exportPath: exportPath,
		payees:     append([]string{""}, led.Payees()...),
		types:      append([]string{""}, led.Types()...),
		width:      100,
		height:     40,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentFilter assembles the ledger filter from the cursor state.
func (m *Model) currentFilter() ledger.Filter {
	f := ledger.Filter{
		Type:  m.types[m.typeIdx],
		Payee: m.payees[m.payeeIdx],
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch m.rangeIdx {
	case range30d:
		f.Start, f.End = today.AddDate(0, 0, -29), today
	case range90d:
		f.Start, f.End = today.AddDate(0, 0, -89), today
	case rangeYTD:
		f.Start, f.End = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today
	case rangeCustom:
		f.Start, f.End = m.filter.Start, m.filter.End
	}

	zero := decimal.Zero
	switch m.bandIdx {
	case bandExpenses:
		f.Max = &zero
	case bandIncome:
		f.Min = &zero
	}
	return f
}

// recompute rebuilds every derived view from the raw ledger and the
// current filter. This is the whole-dashboard refresh path.
func (m *Model) recompute() {
	f := m.currentFilter()
	m.filter = f

	subset := f.Apply(m.led)
	rows := subset.All()

	m.view = derived{
		rows:      rows,
		summary:   report.Summarize(rows),
		monthly:   figure.MonthlyTotals(report.MonthlyTotals(rows)),
		topPayees: figure.TopPayees(report.TopPayees(rows, m.cfg.Reports.TopPayees)),
		flow:      figure.DailyFlow(report.DailyFlow(rows)),
		ranking:   report.Ranking(rows),
		narrative: report.Narrative(rows),
	}
}
