package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AuctionPhase is the lifecycle stage of the current token auction,
// derived from timestamps rather than stored on-chain.
type AuctionPhase string

const (
	AuctionNotStarted     AuctionPhase = "not-started"
	AuctionActive         AuctionPhase = "active"
	AuctionEndedUnsettled AuctionPhase = "ended-unsettled"
)

// Default extension parameters used when the auction house exposes no getter.
const (
	DefaultExtensionWindow   = 900 * time.Second
	DefaultExtensionDuration = 600 * time.Second
)

// AuctionSnapshot is a read-only projection of the auction house state at
// a single point in time. Amounts are in wei; a zero CurrentBid means no
// bid has been placed yet.
type AuctionSnapshot struct {
	TokenID           *big.Int
	CurrentBid        *big.Int
	Bidder            common.Address
	StartTime         time.Time
	EndTime           time.Time
	ReservePrice      *big.Int
	MinIncrementPct   uint8
	ExtensionWindow   time.Duration
	ExtensionDuration time.Duration
}

// Validate checks the snapshot's structural invariants.
func (s *AuctionSnapshot) Validate() error {
	if s.TokenID == nil || s.CurrentBid == nil || s.ReservePrice == nil {
		return InvalidSnapshotErr{Reason: "missing amount"}
	}
	if s.CurrentBid.Sign() < 0 || s.ReservePrice.Sign() < 0 || s.TokenID.Sign() < 0 {
		return InvalidSnapshotErr{Reason: "negative amount"}
	}
	if s.EndTime.Before(s.StartTime) {
		return InvalidSnapshotErr{Reason: "end time before start time"}
	}
	return nil
}

// PhaseAt derives the auction phase at the given instant. A settled phase
// is never observed here: settlement manifests as a new auction whose
// start time has begun.
func (s *AuctionSnapshot) PhaseAt(now time.Time) AuctionPhase {
	switch {
	case now.Before(s.StartTime):
		return AuctionNotStarted
	case now.After(s.EndTime):
		return AuctionEndedUnsettled
	default:
		return AuctionActive
	}
}

// AuctionStatus is the evaluator's view of an auction: its phase, the
// smallest bid the contract would accept next, and whether a qualifying
// bid placed now would trigger an end-time extension.
type AuctionStatus struct {
	Phase            AuctionPhase `json:"phase"`
	MinNextBid       *big.Int     `json:"minNextBid"`
	SecondsRemaining int64        `json:"secondsRemaining"`
	WillExtend       bool         `json:"willExtend"`
}

// EvaluateAuction classifies the auction and computes bid arithmetic.
// It is a pure function of the snapshot and the supplied clock reading.
func EvaluateAuction(s *AuctionSnapshot, now time.Time) (*AuctionStatus, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	remaining := s.EndTime.Unix() - now.Unix()
	if remaining < 0 {
		remaining = 0
	}

	phase := s.PhaseAt(now)
	status := &AuctionStatus{
		Phase:            phase,
		MinNextBid:       MinNextBid(s.CurrentBid, s.ReservePrice, s.MinIncrementPct),
		SecondsRemaining: remaining,
		WillExtend:       phase == AuctionActive && remaining <= int64(s.ExtensionWindow/time.Second),
	}
	return status, nil
}

// MinNextBid computes the smallest acceptable next bid. With no bid placed
// yet the reserve price applies regardless of the increment percentage.
// The increment is rounded up: rounding down could compute a value the
// contract rejects as insufficient.
func MinNextBid(currentBid, reservePrice *big.Int, incrementPct uint8) *big.Int {
	if currentBid.Sign() == 0 {
		return new(big.Int).Set(reservePrice)
	}
	inc := new(big.Int).Mul(currentBid, big.NewInt(int64(incrementPct)))
	rem := new(big.Int)
	inc.QuoRem(inc, big.NewInt(100), rem)
	if rem.Sign() > 0 {
		inc.Add(inc, big.NewInt(1))
	}
	return inc.Add(inc, currentBid)
}

// BidParams are the contract-call parameters for a validated bid,
// ready for submission.
type BidParams struct {
	TokenID *big.Int `json:"tokenId"`
	Value   *big.Int `json:"value"`
}

// ValidateBid checks a proposed bid against the evaluated auction status.
// Rules are applied in order and the first failure wins. Wallet balance is
// deliberately not checked here; that belongs to the chain client.
func ValidateBid(s *AuctionSnapshot, status *AuctionStatus, amount *big.Int) (*BidParams, error) {
	if status.Phase != AuctionActive {
		return nil, ErrAuctionNotActive
	}
	if amount.Cmp(status.MinNextBid) < 0 {
		return nil, BidTooLowErr{
			Proposed:   new(big.Int).Set(amount),
			MinNextBid: new(big.Int).Set(status.MinNextBid),
		}
	}
	// The increment rule is strict: matching the current bid is a tie even
	// when it clears MinNextBid (possible with a zero increment percentage).
	if amount.Cmp(s.CurrentBid) == 0 {
		return nil, ErrBidNotHigher
	}
	return &BidParams{
		TokenID: new(big.Int).Set(s.TokenID),
		Value:   new(big.Int).Set(amount),
	}, nil
}
