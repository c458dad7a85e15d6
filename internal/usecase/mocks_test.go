package usecase_test

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock(t time.Time) usecase.Clock {
	return func() time.Time { return t }
}

// MockAuctionReader is a mock implementation of AuctionReader.
type MockAuctionReader struct {
	mock.Mock
}

func (m *MockAuctionReader) CurrentAuction(ctx context.Context) (*domain.AuctionSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuctionSnapshot), args.Error(1)
}

// MockBidSubmitter is a mock implementation of BidSubmitter.
type MockBidSubmitter struct {
	mock.Mock
}

func (m *MockBidSubmitter) SubmitBid(ctx context.Context, params *domain.BidParams) (*domain.Submission, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

// MockGovernanceReader is a mock implementation of GovernanceReader.
type MockGovernanceReader struct {
	mock.Mock
}

func (m *MockGovernanceReader) ProposalCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceReader) Proposal(ctx context.Context, id uint64) (*domain.ProposalSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProposalSnapshot), args.Error(1)
}

func (m *MockGovernanceReader) ProposalState(ctx context.Context, id uint64) (uint8, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockGovernanceReader) CurrentBlock(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceReader) HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error) {
	args := m.Called(ctx, id, voter)
	return args.Bool(0), args.Error(1)
}

// MockVotesReader is a mock implementation of VotesReader.
type MockVotesReader struct {
	mock.Mock
}

func (m *MockVotesReader) Votes(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockVotesReader) Delegate(ctx context.Context, account common.Address) (common.Address, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockVoteSubmitter is a mock implementation of VoteSubmitter.
type MockVoteSubmitter struct {
	mock.Mock
}

func (m *MockVoteSubmitter) Sender() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockVoteSubmitter) SubmitVote(ctx context.Context, params *domain.VoteParams) (*domain.Submission, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}
