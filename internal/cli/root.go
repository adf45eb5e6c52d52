// Package cli wires the pets commands: configuration resolution, logging
// setup, and the list/browse/regions subcommands.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aliagaaaaaa/pets/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pets CLI. It resolves
// configuration (file, environment, flags) and sets up logging before any
// subcommand runs.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pets",
		Short:   "Browse adoptable animals from your terminal",
		Long:    "pets: fetch a public animal adoption listing, filter it by region, and page through it",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			if cfgPath == "" {
				if defaultPath, err := config.DefaultPath(); err == nil {
					cfgPath = defaultPath
				}
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			// CLI flags override environment variables and config file.
			if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
				cfg.Endpoint = endpoint
			}
			config.SetGlobal(cfg)

			setupLogging(cmd, cfg)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("endpoint", "", "listing endpoint URL (overrides config file and PETS_ENDPOINT)")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.pets/config.yaml)")
	cmd.AddCommand(NewListCmd(), NewBrowseCmd(), NewRegionsCmd())

	return cmd
}

const rootCmdExample = `  # Browse the catalog interactively
  pets browse

  # Print the first page of animals in the Biobío region
  pets list --region biobio

  # Page 2, ten animals per page, as JSON
  pets list --page 2 --page-size 10 --output json

  # Which regions currently have adoptable animals?
  pets regions`
