package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/cli/render"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// NewProposalsCmd creates the proposals command
func NewProposalsCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "List governance proposals and their phases",
		Long: `List all governance proposals with vote tallies and the phase each one is
in. Active proposals show how many blocks remain in their voting window.`,
		Example: `  # All proposals
  gavel proposals

  # Only proposals currently open for voting
  gavel proposals --active`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{
				ActiveOnly: activeOnly,
			})
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only show proposals open for voting")

	return cmd
}
