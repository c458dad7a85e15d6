package render

import (
	"fmt"
	"io"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

var supportNames = map[uint8]string{
	domain.SupportAgainst: "against",
	domain.SupportFor:     "for",
	domain.SupportAbstain: "abstain",
}

// VoteRenderer renders the outcome of a vote submission.
type VoteRenderer struct {
	out         io.Writer
	explorerURL string
}

// NewVoteRenderer creates a new vote renderer.
func NewVoteRenderer(out io.Writer, explorerURL string) *VoteRenderer {
	return &VoteRenderer{out: out, explorerURL: explorerURL}
}

// Render prints the vote result, including any delegation advisory.
func (r *VoteRenderer) Render(result *usecase.CastVoteResult) error {
	if advisory := result.Params.Advisory; advisory != nil {
		fmt.Fprintln(r.out, FormatWarning(advisory.Message))
	}

	verb := supportNames[result.Params.Support]
	if result.DryRun {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf(
			"Vote %q on proposal #%d would be accepted (dry run, not submitted)",
			verb, result.Params.ProposalID)))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf(
		"Voted %q on proposal #%d with %s votes",
		verb, result.Params.ProposalID, result.Eligibility.Votes)))
	if result.Params.Reason != "" {
		fmt.Fprintf(r.out, "  Reason: %s\n", result.Params.Reason)
	}
	fmt.Fprintf(r.out, "  Tx:     %s\n", result.Submission.TxHash.Hex())
	if r.explorerURL != "" {
		fmt.Fprintf(r.out, "  %s/tx/%s\n", r.explorerURL, result.Submission.TxHash.Hex())
	}
	return nil
}

var _ Renderer[*usecase.CastVoteResult] = (*VoteRenderer)(nil)
