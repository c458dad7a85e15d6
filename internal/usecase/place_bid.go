package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// PlaceBidParams contains parameters for placing a bid.
type PlaceBidParams struct {
	// Amount is the proposed bid in wei.
	Amount *big.Int

	// DryRun validates the bid without submitting a transaction.
	DryRun bool
}

// PlaceBidResult contains the validated bid and, unless this was a dry
// run, the submitted transaction.
type PlaceBidResult struct {
	Snapshot   *domain.AuctionSnapshot
	Status     *domain.AuctionStatus
	Params     *domain.BidParams
	Submission *domain.Submission
	DryRun     bool
}

// PlaceBid is the use case for validating and submitting an auction bid.
// Every validation failure is detected before any write is attempted.
type PlaceBid struct {
	auction   AuctionReader
	submitter BidSubmitter
	clock     Clock
	sink      ProgressSink
	log       *slog.Logger
}

// NewPlaceBid creates a new PlaceBid use case.
func NewPlaceBid(auction AuctionReader, submitter BidSubmitter, clock Clock, sink ProgressSink, log *slog.Logger) *PlaceBid {
	return &PlaceBid{
		auction:   auction,
		submitter: submitter,
		clock:     clock,
		sink:      sink,
		log:       log,
	}
}

// Run executes the place bid use case.
func (uc *PlaceBid) Run(ctx context.Context, params PlaceBidParams) (*PlaceBidResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "reading",
		Message: "Fetching current auction",
		Spinner: true,
	})

	snap, err := uc.auction.CurrentAuction(ctx)
	if err != nil {
		return nil, err
	}

	status, err := domain.EvaluateAuction(snap, uc.clock())
	if err != nil {
		return nil, err
	}

	bid, err := domain.ValidateBid(snap, status, params.Amount)
	if err != nil {
		return nil, err
	}

	result := &PlaceBidResult{
		Snapshot: snap,
		Status:   status,
		Params:   bid,
		DryRun:   params.DryRun,
	}
	if params.DryRun {
		uc.log.Debug("dry run, skipping submission", "tokenId", bid.TokenID, "value", bid.Value)
		return result, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: "Submitting bid transaction",
		Spinner: true,
	})

	submission, err := uc.submitter.SubmitBid(ctx, bid)
	if err != nil {
		// The contract can still reject for reasons outside our rule set,
		// e.g. another bidder landing first. Reported, never retried.
		return nil, domain.SubmissionFailedErr{Op: "bid", Err: err}
	}

	uc.log.Info("bid submitted",
		"tokenId", bid.TokenID,
		"value", bid.Value,
		"tx", submission.TxHash,
	)

	result.Submission = submission
	return result, nil
}
