package domain

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for validation failures that carry no extra context.
var (
	// ErrAuctionNotActive is returned when a bid targets an auction outside its active window
	ErrAuctionNotActive = errors.New("auction not active")

	// ErrBidNotHigher is returned when a bid equals the current highest bid
	ErrBidNotHigher = errors.New("bid not higher than current bid")

	// ErrNoVotingPower is returned when the voter holds zero votes
	ErrNoVotingPower = errors.New("no voting power")

	// ErrProposalNotActive is returned when a vote targets a proposal outside its voting window
	ErrProposalNotActive = errors.New("proposal not active")

	// ErrAlreadyVoted is returned when the voter has already cast a vote on the proposal
	ErrAlreadyVoted = errors.New("already voted")
)

// InvalidSnapshotErr is returned when on-chain state fails basic sanity checks.
type InvalidSnapshotErr struct {
	Reason string
}

func (e InvalidSnapshotErr) Error() string {
	return fmt.Sprintf("invalid auction snapshot: %s", e.Reason)
}

// BidTooLowErr is returned when a proposed bid is below the minimum next bid.
// MinNextBid is carried so the caller can correct and resubmit.
type BidTooLowErr struct {
	Proposed   *big.Int
	MinNextBid *big.Int
}

func (e BidTooLowErr) Error() string {
	return fmt.Sprintf("bid %s below minimum next bid %s", e.Proposed, e.MinNextBid)
}

// UnknownPhaseErr is returned when the chain reports a proposal state code
// outside the recognized range.
type UnknownPhaseErr struct {
	Code uint8
}

func (e UnknownPhaseErr) Error() string {
	return fmt.Sprintf("unknown proposal phase code %d", e.Code)
}

// InvalidSupportErr is returned when a vote support value is not one of
// against (0), for (1), or abstain (2).
type InvalidSupportErr struct {
	Support uint8
}

func (e InvalidSupportErr) Error() string {
	return fmt.Sprintf("invalid support value %d (expected 0, 1 or 2)", e.Support)
}

// SubmissionFailedErr wraps an error from the chain client when a write
// transaction could not be submitted or reverted. The collaborator's
// message is preserved verbatim.
type SubmissionFailedErr struct {
	Op  string
	Err error
}

func (e SubmissionFailedErr) Error() string {
	return fmt.Sprintf("%s submission failed: %v", e.Op, e.Err)
}

func (e SubmissionFailedErr) Unwrap() error {
	return e.Err
}
