package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fluxo-dev/fluxo/internal/tui"
)

func newDashboardCommand() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "dashboard [directory]",
		Short: "Abre o dashboard interativo no terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			return runDashboard(dir, exportPath)
		},
	}

	cmd.Flags().StringVarP(&exportPath, "out", "o", "dados_filtrados.csv", "destino da exportação CSV")

	return cmd
}

func runDashboard(dir, exportPath string) error {
	led, cfg, _, err := buildLedger(dir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(cfg, led, exportPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
