package render

import (
	"fmt"
	"io"

	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// BidRenderer renders the outcome of a bid submission.
type BidRenderer struct {
	out         io.Writer
	explorerURL string
}

// NewBidRenderer creates a new bid renderer.
func NewBidRenderer(out io.Writer, explorerURL string) *BidRenderer {
	return &BidRenderer{out: out, explorerURL: explorerURL}
}

// Render prints the bid result.
func (r *BidRenderer) Render(result *usecase.PlaceBidResult) error {
	if result.DryRun {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf(
			"Bid of %s on token #%s would be accepted (dry run, not submitted)",
			FormatEth(result.Params.Value), result.Params.TokenID)))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf(
		"Bid of %s on token #%s submitted",
		FormatEth(result.Params.Value), result.Params.TokenID)))
	fmt.Fprintf(r.out, "  Tx:    %s\n", result.Submission.TxHash.Hex())
	fmt.Fprintf(r.out, "  Block: %s\n", FormatBlocks(result.Submission.BlockNumber))
	if r.explorerURL != "" {
		fmt.Fprintf(r.out, "  %s/tx/%s\n", r.explorerURL, result.Submission.TxHash.Hex())
	}
	if result.Status.WillExtend {
		fmt.Fprintln(r.out, FormatWarning("Late bid: the auction end time has been extended"))
	}
	return nil
}

var _ Renderer[*usecase.PlaceBidResult] = (*BidRenderer)(nil)
