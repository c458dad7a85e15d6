package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/cli/render"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	var all bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current auction and what the next valid bid is",
		Long: `Show the current auction: phase, highest bid, minimum next bid, time
remaining and whether a bid placed now would extend the auction.

With --all the active governance proposals are listed below the auction.
With --watch the status stays on screen with a live countdown, refetching
chain state periodically.`,
		Example: `  # One-shot auction status
  gavel status

  # Auction plus active proposals
  gavel status --all

  # Live countdown until the auction ends
  gavel status --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if watch {
				return runStatusWatch(cmd, app)
			}

			result, err := app.GetAuctionStatus.Run(cmd.Context())
			if err != nil {
				return err
			}

			var proposals *usecase.ListProposalsResult
			if all {
				proposals, err = app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{ActiveOnly: true})
				if err != nil {
					return err
				}
			}

			// Output JSON if requested
			if app.Config.JSON {
				output := map[string]interface{}{
					"auction": result,
				}
				if proposals != nil {
					output["proposals"] = proposals
				}
				data, err := json.MarshalIndent(output, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			renderer := render.NewAuctionRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}
			if proposals != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				proposalsRenderer := render.NewProposalsRenderer(cmd.OutOrStdout())
				return proposalsRenderer.Render(proposals)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also list active governance proposals")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the status on screen with a live countdown")

	return cmd
}
