package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/app"
	"github.com/gavel-org/gavel-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gavel",
		Short: "Auction bidding and governance voting for on-chain DAOs",
		Long: `Gavel reads live auction and governance state over JSON-RPC, validates
bids and votes locally against the protocol rules, and submits the
transaction only when it would not revert.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Set up viper
			v := config.SetupViper()

			// Bind global flags that have been set
			config.BindGlobalFlags(v, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
					appInstance.Close()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout, including transaction confirmation")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "auction",
		Title: "Auction Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})

	statusCmd := NewStatusCmd()
	statusCmd.GroupID = "auction"
	rootCmd.AddCommand(statusCmd)

	bidCmd := NewBidCmd()
	bidCmd.GroupID = "auction"
	rootCmd.AddCommand(bidCmd)

	proposalsCmd := NewProposalsCmd()
	proposalsCmd.GroupID = "governance"
	rootCmd.AddCommand(proposalsCmd)

	voteCmd := NewVoteCmd()
	voteCmd.GroupID = "governance"
	rootCmd.AddCommand(voteCmd)

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
