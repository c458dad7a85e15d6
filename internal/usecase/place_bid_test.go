package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

func activeAuction() *domain.AuctionSnapshot {
	start := time.Unix(1_700_000_000, 0)
	return &domain.AuctionSnapshot{
		TokenID:           big.NewInt(42),
		CurrentBid:        big.NewInt(1000),
		StartTime:         start,
		EndTime:           start.Add(24 * time.Hour),
		ReservePrice:      big.NewInt(1),
		MinIncrementPct:   10,
		ExtensionWindow:   domain.DefaultExtensionWindow,
		ExtensionDuration: domain.DefaultExtensionDuration,
	}
}

func TestPlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("valid bid is submitted", func(t *testing.T) {
		snap := activeAuction()
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)

		submitter := new(MockBidSubmitter)
		submitter.On("SubmitBid", mock.Anything, mock.MatchedBy(func(p *domain.BidParams) bool {
			return p.Value.Cmp(big.NewInt(1100)) == 0 && p.TokenID.Cmp(big.NewInt(42)) == 0
		})).Return(&domain.Submission{TxHash: common.HexToHash("0xabc")}, nil)

		uc := usecase.NewPlaceBid(reader, submitter, fixedClock(snap.StartTime.Add(time.Hour)), usecase.NopProgress{}, testLogger())
		result, err := uc.Run(ctx, usecase.PlaceBidParams{Amount: big.NewInt(1100)})

		require.NoError(t, err)
		require.NotNil(t, result.Submission)
		assert.Equal(t, common.HexToHash("0xabc"), result.Submission.TxHash)
		submitter.AssertExpectations(t)
	})

	t.Run("low bid never reaches the submitter", func(t *testing.T) {
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(activeAuction(), nil)
		submitter := new(MockBidSubmitter)

		uc := usecase.NewPlaceBid(reader, submitter, fixedClock(time.Unix(1_700_003_600, 0)), usecase.NopProgress{}, testLogger())
		_, err := uc.Run(ctx, usecase.PlaceBidParams{Amount: big.NewInt(1099)})

		var tooLow domain.BidTooLowErr
		require.ErrorAs(t, err, &tooLow)
		assert.Zero(t, big.NewInt(1100).Cmp(tooLow.MinNextBid))
		submitter.AssertNotCalled(t, "SubmitBid", mock.Anything, mock.Anything)
	})

	t.Run("ended auction rejected before submission", func(t *testing.T) {
		snap := activeAuction()
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)
		submitter := new(MockBidSubmitter)

		uc := usecase.NewPlaceBid(reader, submitter, fixedClock(snap.EndTime.Add(time.Minute)), usecase.NopProgress{}, testLogger())
		_, err := uc.Run(ctx, usecase.PlaceBidParams{Amount: big.NewInt(10_000)})

		assert.ErrorIs(t, err, domain.ErrAuctionNotActive)
		submitter.AssertNotCalled(t, "SubmitBid", mock.Anything, mock.Anything)
	})

	t.Run("dry run skips submission", func(t *testing.T) {
		snap := activeAuction()
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)
		submitter := new(MockBidSubmitter)

		uc := usecase.NewPlaceBid(reader, submitter, fixedClock(snap.StartTime.Add(time.Hour)), usecase.NopProgress{}, testLogger())
		result, err := uc.Run(ctx, usecase.PlaceBidParams{Amount: big.NewInt(1100), DryRun: true})

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Nil(t, result.Submission)
		submitter.AssertNotCalled(t, "SubmitBid", mock.Anything, mock.Anything)
	})

	t.Run("reverted submission surfaces verbatim", func(t *testing.T) {
		snap := activeAuction()
		reverted := errors.New("execution reverted: Auction expired")

		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)
		submitter := new(MockBidSubmitter)
		submitter.On("SubmitBid", mock.Anything, mock.Anything).Return(nil, reverted)

		uc := usecase.NewPlaceBid(reader, submitter, fixedClock(snap.StartTime.Add(time.Hour)), usecase.NopProgress{}, testLogger())
		_, err := uc.Run(ctx, usecase.PlaceBidParams{Amount: big.NewInt(1100)})

		var failed domain.SubmissionFailedErr
		require.ErrorAs(t, err, &failed)
		assert.ErrorIs(t, err, reverted)
		assert.Contains(t, failed.Error(), "Auction expired")
	})
}
