package cli

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/app"
	"github.com/gavel-org/gavel-cli/internal/cli/render"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// NewBidCmd creates the bid command
func NewBidCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "bid <amount-wei>",
		Short: "Validate and place a bid on the current auction",
		Long: `Validate a bid against the live auction and submit it if it would be
accepted. The amount is given in wei.

Validation happens locally before any transaction is signed: the auction
must be active and the amount must meet the minimum next bid derived from
the reserve price and the increment percentage. A rejected bid costs no
gas.`,
		Example: `  # Bid 1.5 ETH on the current auction
  gavel bid 1500000000000000000

  # Check whether the bid would be accepted without submitting
  gavel bid 1500000000000000000 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := new(big.Int).SetString(args[0], 10)
			if !ok || amount.Sign() < 0 {
				return fmt.Errorf("invalid bid amount: %s (expected a wei value)", args[0])
			}

			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !dryRun && !app.Config.NonInteractive {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Bid %s on the current auction", render.FormatEth(amount)),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					return fmt.Errorf("bid cancelled")
				}
			}

			result, err := app.PlaceBid.Run(cmd.Context(), usecase.PlaceBidParams{
				Amount: amount,
				DryRun: dryRun,
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

			renderer := render.NewBidRenderer(cmd.OutOrStdout(), explorerURL(app))
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the bid without submitting a transaction")

	return cmd
}

// explorerURL returns the configured network's explorer base URL, empty
// when no network is configured.
func explorerURL(a *app.App) string {
	if a.Config.Network == nil {
		return ""
	}
	return a.Config.Network.ExplorerURL
}
