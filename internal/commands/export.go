package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fluxo-dev/fluxo/internal/ledger"
)

const exportDateFormat = "2006-01-02"

func newExportCommand() *cobra.Command {
	var (
		out      string
		from, to string
		typ      string
		payee    string
		min, max string
	)

	cmd := &cobra.Command{
		Use:   "export [directory]",
		Short: "Exporta o ledger filtrado para CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			filter, err := parseFilterFlags(from, to, typ, payee, min, max)
			if err != nil {
				return err
			}
			return runExport(cmd, dir, out, filter)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dados_filtrados.csv", "arquivo CSV de saída")
	cmd.Flags().StringVar(&from, "from", "", "data inicial (AAAA-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "data final (AAAA-MM-DD)")
	cmd.Flags().StringVar(&typ, "type", "", "tipo de transação")
	cmd.Flags().StringVar(&payee, "payee", "", "estabelecimento")
	cmd.Flags().StringVar(&min, "min", "", "valor mínimo")
	cmd.Flags().StringVar(&max, "max", "", "valor máximo")

	return cmd
}

func parseFilterFlags(from, to, typ, payee, min, max string) (ledger.Filter, error) {
	var f ledger.Filter
	var err error

	if from != "" {
		if f.Start, err = time.Parse(exportDateFormat, from); err != nil {
			return f, fmt.Errorf("parsing --from: %w", err)
		}
		f.Start = f.Start.UTC()
	}
	if to != "" {
		if f.End, err = time.Parse(exportDateFormat, to); err != nil {
			return f, fmt.Errorf("parsing --to: %w", err)
		}
		f.End = f.End.UTC()
	}
	f.Type = typ
	f.Payee = payee

	if min != "" {
		v, err := decimal.NewFromString(min)
		if err != nil {
			return f, fmt.Errorf("parsing --min: %w", err)
		}
		f.Min = &v
	}
	if max != "" {
		v, err := decimal.NewFromString(max)
		if err != nil {
			return f, fmt.Errorf("parsing --max: %w", err)
		}
		f.Max = &v
	}
	return f, nil
}

func runExport(cmd *cobra.Command, dir, out string, filter ledger.Filter) error {
	led, _, log, err := buildLedger(dir)
	if err != nil {
		return err
	}

	if filter.DatesInverted() {
		log.Warnw("start date after end date, date filter ignored",
			"from", filter.Start.Format(exportDateFormat),
			"to", filter.End.Format(exportDateFormat))
	}
	subset := filter.Apply(led)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := ledger.WriteCSV(f, subset); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exportadas %d transações para %s\n", subset.Len(), out)
	return nil
}
