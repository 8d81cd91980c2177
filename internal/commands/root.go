package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fluxo-dev/fluxo/internal/buildinfo"
	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/importer"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/logging"
)

// ConfigFileName is the per-directory configuration file.
const ConfigFileName = "fluxo.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fluxo",
		Short:   "Dashboard financeiro pessoal a partir de extratos e faturas",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// resolveDir turns an optional positional argument into an absolute path.
func resolveDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absDir, nil
}

// buildLedger loads config and runs the full ingestion pipeline for dir.
func buildLedger(dir string) (*ledger.Ledger, *config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.LoadOrDefault(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	led, err := importer.Load(dir, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return led, cfg, log, nil
}
