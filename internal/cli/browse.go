package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aliagaaaaaa/pets/internal/config"
	"github.com/Aliagaaaaaa/pets/internal/fetch"
	"github.com/Aliagaaaaaa/pets/internal/tui"
)

// NewBrowseCmd creates the "browse" command, which runs the interactive
// catalog TUI.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long:  "Open a full-screen browser: pick a region, page through the animals, inspect details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("browse needs an interactive terminal; use 'pets list' instead")
			}

			cfg := config.GetGlobal()
			client := fetch.NewClient(cfg.Endpoint)
			model := tui.NewBrowseModel(cmd.Context(), client.Load, cfg.PageSize)

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}
}
