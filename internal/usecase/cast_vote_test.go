package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

var voter = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func activeProposal() *domain.ProposalSnapshot {
	return &domain.ProposalSnapshot{
		ID:           7,
		Proposer:     common.HexToAddress("0x00000000000000000000000000000000000000c3"),
		StartBlock:   100,
		EndBlock:     250,
		ForVotes:     big.NewInt(10),
		AgainstVotes: big.NewInt(2),
		AbstainVotes: big.NewInt(0),
	}
}

type voteFixture struct {
	gov       *MockGovernanceReader
	votes     *MockVotesReader
	submitter *MockVoteSubmitter
}

// newVoteFixture wires mocks for an eligible, self-delegated voter on an
// active proposal. Individual tests override what they need.
func newVoteFixture() *voteFixture {
	f := &voteFixture{
		gov:       new(MockGovernanceReader),
		votes:     new(MockVotesReader),
		submitter: new(MockVoteSubmitter),
	}
	f.submitter.On("Sender").Return(voter, nil)
	f.gov.On("Proposal", mock.Anything, uint64(7)).Return(activeProposal(), nil)
	f.gov.On("ProposalState", mock.Anything, uint64(7)).Return(uint8(domain.ProposalActive), nil)
	f.gov.On("CurrentBlock", mock.Anything).Return(uint64(150), nil)
	f.gov.On("HasVoted", mock.Anything, uint64(7), voter).Return(false, nil)
	f.votes.On("Votes", mock.Anything, voter).Return(big.NewInt(3), nil)
	f.votes.On("Delegate", mock.Anything, voter).Return(voter, nil)
	return f
}

func (f *voteFixture) usecase() *usecase.CastVote {
	return usecase.NewCastVote(f.gov, f.votes, f.submitter, usecase.NopProgress{}, testLogger())
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible vote is submitted", func(t *testing.T) {
		f := newVoteFixture()
		f.submitter.On("SubmitVote", mock.Anything, mock.MatchedBy(func(p *domain.VoteParams) bool {
			return p.ProposalID == 7 && p.Support == domain.SupportFor && p.Reason == "lgtm"
		})).Return(&domain.Submission{TxHash: common.HexToHash("0xbeef")}, nil)

		result, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor, Reason: "lgtm"})

		require.NoError(t, err)
		require.NotNil(t, result.Submission)
		assert.Nil(t, result.Params.Advisory)
		require.NotNil(t, result.Status.BlocksRemaining)
		assert.Equal(t, uint64(100), *result.Status.BlocksRemaining)
		f.submitter.AssertExpectations(t)
	})

	t.Run("invalid support fails before any read", func(t *testing.T) {
		f := newVoteFixture()
		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: 5})

		var invalid domain.InvalidSupportErr
		require.ErrorAs(t, err, &invalid)
		f.gov.AssertNotCalled(t, "Proposal", mock.Anything, mock.Anything)
		f.submitter.AssertNotCalled(t, "SubmitVote", mock.Anything, mock.Anything)
	})

	t.Run("zero balance rejected", func(t *testing.T) {
		f := newVoteFixture()
		f.votes.ExpectedCalls = nil
		f.votes.On("Votes", mock.Anything, voter).Return(big.NewInt(0), nil)
		f.votes.On("Delegate", mock.Anything, voter).Return(voter, nil)

		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor})
		assert.ErrorIs(t, err, domain.ErrNoVotingPower)
		f.submitter.AssertNotCalled(t, "SubmitVote", mock.Anything, mock.Anything)
	})

	t.Run("inactive proposal rejected", func(t *testing.T) {
		f := newVoteFixture()
		f.gov.ExpectedCalls = nil
		f.gov.On("Proposal", mock.Anything, uint64(7)).Return(activeProposal(), nil)
		f.gov.On("ProposalState", mock.Anything, uint64(7)).Return(uint8(domain.ProposalDefeated), nil)
		f.gov.On("CurrentBlock", mock.Anything).Return(uint64(400), nil)
		f.gov.On("HasVoted", mock.Anything, uint64(7), voter).Return(false, nil)

		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor})
		assert.ErrorIs(t, err, domain.ErrProposalNotActive)
	})

	t.Run("already voted rejected", func(t *testing.T) {
		f := newVoteFixture()
		f.gov.ExpectedCalls = nil
		f.gov.On("Proposal", mock.Anything, uint64(7)).Return(activeProposal(), nil)
		f.gov.On("ProposalState", mock.Anything, uint64(7)).Return(uint8(domain.ProposalActive), nil)
		f.gov.On("CurrentBlock", mock.Anything).Return(uint64(150), nil)
		f.gov.On("HasVoted", mock.Anything, uint64(7), voter).Return(true, nil)

		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportAgainst})
		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	})

	t.Run("unknown phase code rejected", func(t *testing.T) {
		f := newVoteFixture()
		f.gov.ExpectedCalls = nil
		f.gov.On("Proposal", mock.Anything, uint64(7)).Return(activeProposal(), nil)
		f.gov.On("ProposalState", mock.Anything, uint64(7)).Return(uint8(9), nil)
		f.gov.On("CurrentBlock", mock.Anything).Return(uint64(150), nil)
		f.gov.On("HasVoted", mock.Anything, uint64(7), voter).Return(false, nil)

		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor})
		var unknown domain.UnknownPhaseErr
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, uint8(9), unknown.Code)
	})

	t.Run("delegation mismatch still submits with advisory", func(t *testing.T) {
		other := common.HexToAddress("0x00000000000000000000000000000000000000b2")
		f := newVoteFixture()
		f.votes.ExpectedCalls = nil
		f.votes.On("Votes", mock.Anything, voter).Return(big.NewInt(3), nil)
		f.votes.On("Delegate", mock.Anything, voter).Return(other, nil)
		f.submitter.On("SubmitVote", mock.Anything, mock.Anything).Return(&domain.Submission{TxHash: common.HexToHash("0x1")}, nil)

		result, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor})

		require.NoError(t, err)
		require.NotNil(t, result.Params.Advisory)
		assert.Equal(t, domain.AdvisoryDelegationMismatch, result.Params.Advisory.Code)
		require.NotNil(t, result.Submission)
	})

	t.Run("dry run skips submission", func(t *testing.T) {
		f := newVoteFixture()
		result, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportAbstain, DryRun: true})

		require.NoError(t, err)
		assert.Nil(t, result.Submission)
		f.submitter.AssertNotCalled(t, "SubmitVote", mock.Anything, mock.Anything)
	})

	t.Run("reverted submission wraps verbatim", func(t *testing.T) {
		reverted := errors.New("execution reverted: GovernorBravo::castVoteInternal: voting is closed")
		f := newVoteFixture()
		f.submitter.On("SubmitVote", mock.Anything, mock.Anything).Return(nil, reverted)

		_, err := f.usecase().Run(ctx, usecase.CastVoteParams{ProposalID: 7, Support: domain.SupportFor})

		var failed domain.SubmissionFailedErr
		require.ErrorAs(t, err, &failed)
		assert.ErrorIs(t, err, reverted)
	})
}
