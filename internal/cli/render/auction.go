package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

var (
	labelStyle      = color.New(color.Faint)
	activeStyle     = color.New(color.FgGreen, color.Bold)
	inactiveStyle   = color.New(color.FgYellow, color.Bold)
	amountStyle     = color.New(color.FgHiWhite, color.Bold)
	willExtendStyle = color.New(color.FgCyan)
)

// AuctionRenderer renders the evaluated auction status.
type AuctionRenderer struct {
	out io.Writer
}

// NewAuctionRenderer creates a new auction renderer.
func NewAuctionRenderer(out io.Writer) *AuctionRenderer {
	return &AuctionRenderer{out: out}
}

// Render prints the auction snapshot and its evaluation.
func (r *AuctionRenderer) Render(result *usecase.AuctionStatusResult) error {
	snap, status := result.Snapshot, result.Status

	fmt.Fprintf(r.out, "Auction for token #%s\n\n", snap.TokenID)

	phaseStyle := inactiveStyle
	if status.Phase == domain.AuctionActive {
		phaseStyle = activeStyle
	}
	r.row("Phase", phaseStyle.Sprint(string(status.Phase)))

	if snap.CurrentBid.Sign() == 0 {
		r.row("Current bid", "none (reserve "+FormatEth(snap.ReservePrice)+")")
	} else {
		r.row("Current bid", amountStyle.Sprint(FormatEth(snap.CurrentBid))+" by "+snap.Bidder.Hex())
	}
	r.row("Min next bid", amountStyle.Sprint(FormatEth(status.MinNextBid)))
	r.row("Time remaining", FormatCountdown(status.SecondsRemaining))

	if status.WillExtend {
		r.row("Extension", willExtendStyle.Sprintf(
			"a bid now extends the auction by %s", snap.ExtensionDuration))
	}

	return nil
}

func (r *AuctionRenderer) row(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-16s", label), value)
}

var _ Renderer[*usecase.AuctionStatusResult] = (*AuctionRenderer)(nil)
