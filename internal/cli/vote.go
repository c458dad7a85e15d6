package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gavel-org/gavel-cli/internal/app"
	"github.com/gavel-org/gavel-cli/internal/cli/render"
	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var reason string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "vote [proposal-id] <support>",
		Short: "Validate and cast a vote on a governance proposal",
		Long: `Validate vote eligibility against the live proposal and cast the vote if
it would be accepted.

Support is "for", "against" or "abstain" (or the numeric codes 1, 0, 2).
When the proposal id is omitted, an interactive picker lists the
proposals currently open for voting.

Eligibility is checked locally before any transaction is signed: the
proposal must be active, the voter must hold voting power and must not
have voted already. Delegation pointing away from the voter is reported
as a warning, not an error.`,
		Example: `  # Vote for proposal 42
  gavel vote 42 for

  # Vote against, with an on-chain reason
  gavel vote 42 against --reason "Treasury impact is too large"

  # Pick the proposal interactively
  gavel vote for`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			supportArg := args[len(args)-1]
			support, err := parseSupport(supportArg)
			if err != nil {
				return err
			}

			var proposalID uint64
			if len(args) == 2 {
				proposalID, err = strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid proposal id: %s", args[0])
				}
			} else {
				proposalID, err = pickProposal(cmd, app)
				if err != nil {
					return err
				}
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{
				ProposalID: proposalID,
				Support:    support,
				Reason:     reason,
				DryRun:     dryRun,
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

			renderer := render.NewVoteRenderer(cmd.OutOrStdout(), explorerURL(app))
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Optional reason recorded on-chain with the vote")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate eligibility without submitting a transaction")

	return cmd
}

// parseSupport maps the user-facing support argument onto the governor's
// numeric codes.
func parseSupport(arg string) (uint8, error) {
	switch arg {
	case "against", "0":
		return domain.SupportAgainst, nil
	case "for", "1":
		return domain.SupportFor, nil
	case "abstain", "2":
		return domain.SupportAbstain, nil
	default:
		return 0, fmt.Errorf("invalid support: %s (expected for, against or abstain)", arg)
	}
}

// pickProposal lists the proposals open for voting and lets the user pick
// one interactively.
func pickProposal(cmd *cobra.Command, a *app.App) (uint64, error) {
	result, err := a.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{ActiveOnly: true})
	if err != nil {
		return 0, err
	}
	if len(result.Items) == 0 {
		return 0, fmt.Errorf("no proposals are open for voting")
	}

	item, err := a.Selector.SelectProposal(cmd.Context(), result.Items, "Select a proposal to vote on")
	if err != nil {
		return 0, err
	}
	return item.Snapshot.ID, nil
}
