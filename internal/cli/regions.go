package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
	"github.com/Aliagaaaaaa/pets/internal/config"
	"github.com/Aliagaaaaaa/pets/internal/fetch"
)

// NewRegionsCmd creates the "regions" command, which prints the regions that
// currently have adoptable animals, in canonical north-to-south order.
func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions with adoptable animals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobal()

			animals, err := fetch.NewClient(cfg.Endpoint).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load the animal listing: %w", err)
			}

			regions := catalog.AvailableRegions(animals)
			if len(regions) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No regions with adoptable animals right now.")
				return err
			}

			for _, region := range regions {
				count := len(catalog.FilterByRegion(animals, region))
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", region, count); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
