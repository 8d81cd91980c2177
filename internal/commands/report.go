package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluxo-dev/fluxo/internal/figure"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/report"
	"github.com/fluxo-dev/fluxo/internal/renderer"
)

const reportWidth = 100

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [directory]",
		Short: "Monta o ledger e imprime o relatório completo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			return runReport(cmd, dir)
		},
	}
	return cmd
}

func runReport(cmd *cobra.Command, dir string) error {
	led, cfg, _, err := buildLedger(dir)
	if err != nil {
		return err
	}
	// Same view the dashboard and export show: zero-amount rows excluded.
	rows := (ledger.Filter{}).Apply(led).All()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.Summary(report.Summarize(rows)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Narrative(rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.MonthlyTotals(report.MonthlyTotals(rows)), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.TopPayees(report.TopPayees(rows, cfg.Reports.TopPayees)), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Ranking(report.Ranking(rows), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.CategoryDistribution(report.CategoryDistribution(rows, cfg.Labels.ExcludedType)), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.DailyFlow(report.DailyFlow(rows)), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.CumulativeBalance(report.CumulativeBalance(rows)), reportWidth))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.Figure(figure.Histogram(report.Histogram(rows, cfg.Reports.HistogramBins)), reportWidth))
	return nil
}
