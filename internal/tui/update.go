package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxo-dev/fluxo/internal/ledger"
)

type exportDoneMsg struct {
	path string
	err  error
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Falha na exportação: %v", msg.err)
		} else {
			m.status = "Exportado para " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		if m.editingDates {
			return m.updateDateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "t":
		m.rangeIdx = (m.rangeIdx + 1) % rangeCount
		if m.rangeIdx == rangeCustom {
			m.editingDates = true
			m.dateInput = ""
			m.customStart = ""
			m.status = "Intervalo personalizado: digite a data inicial (AAAA-MM-DD) e Enter."
			return m, nil
		}
		m.filter.Start, m.filter.End = time.Time{}, time.Time{}
		m.recompute()
		m.status = "Período: " + rangeLabels[m.rangeIdx]
		return m, nil

	case "b":
		m.bandIdx = (m.bandIdx + 1) % bandCount
		m.recompute()
		m.status = "Faixa de valor: " + bandLabels[m.bandIdx]
		return m, nil

	case "p":
		m.payeeIdx = (m.payeeIdx + 1) % len(m.payees)
		m.recompute()
		if m.payees[m.payeeIdx] == "" {
			m.status = "Estabelecimento: todos"
		} else {
			m.status = "Estabelecimento: " + m.payees[m.payeeIdx]
		}
		return m, nil

	case "P":
		m.payeeIdx--
		if m.payeeIdx < 0 {
			m.payeeIdx = len(m.payees) - 1
		}
		m.recompute()
		return m, nil

	case "y":
		m.typeIdx = (m.typeIdx + 1) % len(m.types)
		m.recompute()
		if m.types[m.typeIdx] == "" {
			m.status = "Tipo: todos"
		} else {
			m.status = "Tipo: " + m.types[m.typeIdx]
		}
		return m, nil

	case "r":
		m.rangeIdx = rangeAll
		m.bandIdx = bandAll
		m.payeeIdx = 0
		m.typeIdx = 0
		m.filter = ledger.Filter{}
		m.recompute()
		m.status = "Filtros limpos."
		return m, nil

	case "e":
		return m, m.exportCmd()
	}
	return m, nil
}

// updateDateInput collects the custom start and end dates, one at a time.
// An inverted range warns and falls back to the unfiltered view.
func (m Model) updateDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.editingDates = false
		m.rangeIdx = rangeAll
		m.filter.Start, m.filter.End = time.Time{}, time.Time{}
		m.recompute()
		m.status = "Intervalo personalizado cancelado."
		return m, nil

	case "backspace":
		if len(m.dateInput) > 0 {
			m.dateInput = m.dateInput[:len(m.dateInput)-1]
		}
		return m, nil

	case "enter":
		parsed, err := time.Parse("2006-01-02", m.dateInput)
		if err != nil {
			m.status = "Data inválida. Use AAAA-MM-DD."
			return m, nil
		}
		if m.customStart == "" {
			m.customStart = m.dateInput
			m.dateInput = ""
			m.status = "Agora a data final (AAAA-MM-DD) e Enter."
			return m, nil
		}
		start, _ := time.Parse("2006-01-02", m.customStart)
		end := parsed
		m.editingDates = false
		m.dateInput = ""
		m.filter.Start, m.filter.End = start.UTC(), end.UTC()
		if start.After(end) {
			// Keep the range so the warning shows; Apply ignores it.
			m.status = "A data de início não pode ser maior que a data de fim."
		} else {
			m.status = fmt.Sprintf("Período: %s a %s", m.customStart, end.Format("2006-01-02"))
		}
		m.recompute()
		return m, nil

	default:
		if len(msg.String()) == 1 {
			m.dateInput += msg.String()
		}
		return m, nil
	}
}

// exportCmd writes the currently filtered rows to the export path.
func (m Model) exportCmd() tea.Cmd {
	subset := ledger.New(m.view.rows)
	path := m.exportPath
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		defer f.Close()
		if err := ledger.WriteCSV(f, subset); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path}
	}
}
