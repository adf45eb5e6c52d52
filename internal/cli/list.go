package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
	"github.com/Aliagaaaaaa/pets/internal/config"
	"github.com/Aliagaaaaaa/pets/internal/fetch"
)

// listFlags holds the flags for the list command.
type listFlags struct {
	Region   string
	Page     int
	PageSize int
	Output   string
}

// NewListCmd creates the non-interactive "list" command: one fetch, one
// filtered page printed to stdout.
func NewListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a page of adoptable animals",
		Long:  "Fetch the full listing, filter it by region, and print a single page",
		Example: `  # First page, all regions
  pets list

  # Region matching is case- and accent-insensitive
  pets list --region biobio
  pets list --region "Los Ríos"

  # Page 3 as YAML
  pets list --page 3 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Region, "region", "", "filter by region (\"all\" or a Chilean region name)")
	cmd.Flags().IntVar(&flags.Page, "page", 1, "1-based page number, clamped to the last page")
	cmd.Flags().IntVar(&flags.PageSize, "page-size", 0, "animals per page (0 = config default)")
	cmd.Flags().StringVar(&flags.Output, "output", "", "output format: table, json, or yaml (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	cfg := config.GetGlobal()

	region, ok := catalog.MatchRegion(flags.Region)
	if !ok {
		return fmt.Errorf("unknown region %q (valid regions: %s)",
			flags.Region, strings.Join(catalog.CanonicalRegions, ", "))
	}

	pageSize := flags.PageSize
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}
	if pageSize < 1 {
		return fmt.Errorf("page-size must be >= 1, got %d", pageSize)
	}

	output := flags.Output
	if output == "" {
		output = cfg.Output
	}

	view := catalog.NewView(pageSize)
	view.BeginLoad()
	animals, err := fetch.NewClient(cfg.Endpoint).Load(cmd.Context())
	view.FinishLoad(animals, err)
	if err != nil {
		return fmt.Errorf("could not load the animal listing: %w", err)
	}

	view.SelectRegion(region)
	view.GoToPage(flags.Page)

	snap := view.Snapshot()
	logger.Debug().
		Str("region", snap.Region).
		Int("page", snap.Page).
		Int("total_pages", snap.TotalPages).
		Int("animals", snap.TotalRecords).
		Msg("rendering animal page")

	return renderSnapshot(cmd.OutOrStdout(), snap, output)
}
