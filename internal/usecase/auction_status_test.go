package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

func TestGetAuctionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("evaluates the snapshot at the injected time", func(t *testing.T) {
		snap := activeAuction()
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)

		now := snap.StartTime.Add(time.Hour)
		uc := usecase.NewGetAuctionStatus(reader, fixedClock(now), testLogger())
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, domain.AuctionActive, result.Status.Phase)
		assert.Equal(t, big.NewInt(1100), result.Status.MinNextBid)
		assert.Equal(t, now, result.ObservedAt)
		assert.Same(t, snap, result.Snapshot)
	})

	t.Run("flags the extension window near the end", func(t *testing.T) {
		snap := activeAuction()
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)

		now := snap.EndTime.Add(-10 * time.Minute)
		uc := usecase.NewGetAuctionStatus(reader, fixedClock(now), testLogger())
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(600), result.Status.SecondsRemaining)
		assert.True(t, result.Status.WillExtend)
	})

	t.Run("read failure is returned as-is", func(t *testing.T) {
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(nil, errors.New("rpc down"))

		uc := usecase.NewGetAuctionStatus(reader, usecase.SystemClock(), testLogger())
		_, err := uc.Run(ctx)

		require.EqualError(t, err, "rpc down")
	})

	t.Run("malformed snapshot fails evaluation", func(t *testing.T) {
		snap := activeAuction()
		snap.EndTime = snap.StartTime.Add(-time.Hour)
		reader := new(MockAuctionReader)
		reader.On("CurrentAuction", mock.Anything).Return(snap, nil)

		uc := usecase.NewGetAuctionStatus(reader, fixedClock(snap.StartTime), testLogger())
		_, err := uc.Run(ctx)

		var invalid domain.InvalidSnapshotErr
		require.ErrorAs(t, err, &invalid)
	})
}
