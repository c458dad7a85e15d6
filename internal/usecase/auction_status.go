package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// AuctionStatusResult contains the evaluated state of the current auction.
type AuctionStatusResult struct {
	Snapshot   *domain.AuctionSnapshot
	Status     *domain.AuctionStatus
	ObservedAt time.Time
}

// GetAuctionStatus is the use case for inspecting the current auction.
type GetAuctionStatus struct {
	auction AuctionReader
	clock   Clock
	log     *slog.Logger
}

// NewGetAuctionStatus creates a new GetAuctionStatus use case.
func NewGetAuctionStatus(auction AuctionReader, clock Clock, log *slog.Logger) *GetAuctionStatus {
	return &GetAuctionStatus{
		auction: auction,
		clock:   clock,
		log:     log,
	}
}

// Run fetches a fresh auction snapshot and evaluates it.
func (uc *GetAuctionStatus) Run(ctx context.Context) (*AuctionStatusResult, error) {
	snap, err := uc.auction.CurrentAuction(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	status, err := domain.EvaluateAuction(snap, now)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("evaluated auction",
		"tokenId", snap.TokenID,
		"phase", status.Phase,
		"minNextBid", status.MinNextBid,
		"secondsRemaining", status.SecondsRemaining,
	)

	return &AuctionStatusResult{
		Snapshot:   snap,
		Status:     status,
		ObservedAt: now,
	}, nil
}
