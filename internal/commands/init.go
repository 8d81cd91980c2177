package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fluxo-dev/fluxo/internal/config"
)

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Escreve um fluxo.yaml padrão no diretório",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}
			return runInit(dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "sobrescreve um fluxo.yaml existente")

	return cmd
}

func runInit(dir string, force bool) error {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s já existe (use --force para sobrescrever)", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Configuração criada em %s\n", path)
	return nil
}
