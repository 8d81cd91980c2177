package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fluxo-dev/fluxo/internal/renderer"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")).Padding(0, 1)
	filterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

const footerHelp = "t período · b faixa · p/P estabelecimento · y tipo · r limpar · e exportar · q sair"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("💸 Dashboard Financeiro") + "\n")
	b.WriteString(filterStyle.Render(m.filterLine()) + "\n")

	if m.filter.DatesInverted() {
		b.WriteString(warnStyle.Render("A data de início não pode ser maior que a data de fim; período ignorado.") + "\n")
	}
	if m.editingDates {
		b.WriteString(warnStyle.Render("Data: "+m.dateInput+"▌") + "\n")
	}

	b.WriteString(sectionStyle.Render(renderer.Summary(m.view.summary)) + "\n")
	b.WriteString(sectionStyle.Render(renderer.Figure(m.view.monthly, m.width)) + "\n")
	b.WriteString(sectionStyle.Render(renderer.Figure(m.view.topPayees, m.width)) + "\n")
	b.WriteString(sectionStyle.Render(renderer.Figure(m.view.flow, m.width)) + "\n")
	b.WriteString(sectionStyle.Render(renderer.Transactions(m.view.rows, m.transactionRows(), m.width)) + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(footerStyle.Render(footerHelp))
	return b.String()
}

func (m Model) filterLine() string {
	parts := []string{"Período: " + rangeLabels[m.rangeIdx], "Faixa: " + bandLabels[m.bandIdx]}
	if p := m.payees[m.payeeIdx]; p != "" {
		parts = append(parts, "Estabelecimento: "+p)
	}
	if t := m.types[m.typeIdx]; t != "" {
		parts = append(parts, "Tipo: "+t)
	}
	return strings.Join(parts, "  ·  ")
}

// transactionRows budgets the detail table to whatever height is left.
func (m Model) transactionRows() int {
	rows := m.height - 30
	if rows < 5 {
		rows = 5
	}
	if rows > 15 {
		rows = 15
	}
	return rows
}
