package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// CastVoteParams contains parameters for casting a governance vote.
type CastVoteParams struct {
	ProposalID uint64
	Support    uint8

	// Reason is optional free text, passed through to the contract as-is.
	Reason string

	// DryRun validates eligibility without submitting a transaction.
	DryRun bool
}

// CastVoteResult contains the validated vote and, unless this was a dry
// run, the submitted transaction.
type CastVoteResult struct {
	Proposal    *domain.ProposalSnapshot
	Status      *domain.ProposalStatus
	Eligibility *domain.VoterEligibility
	Params      *domain.VoteParams
	Submission  *domain.Submission
	DryRun      bool
}

// CastVote is the use case for validating and submitting a governance
// vote. All eligibility rules are checked locally before the write.
type CastVote struct {
	gov       GovernanceReader
	votes     VotesReader
	submitter VoteSubmitter
	sink      ProgressSink
	log       *slog.Logger
}

// NewCastVote creates a new CastVote use case.
func NewCastVote(gov GovernanceReader, votes VotesReader, submitter VoteSubmitter, sink ProgressSink, log *slog.Logger) *CastVote {
	return &CastVote{
		gov:       gov,
		votes:     votes,
		submitter: submitter,
		sink:      sink,
		log:       log,
	}
}

// Run executes the cast vote use case.
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	// Support is validated before touching the chain so a bad flag fails
	// fast even when the RPC endpoint is down.
	if params.Support > domain.SupportAbstain {
		return nil, domain.InvalidSupportErr{Support: params.Support}
	}

	voter, err := uc.submitter.Sender()
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "reading",
		Message: "Fetching proposal and voter state",
		Spinner: true,
	})

	// Independent reads with no ordering requirement between them.
	var (
		snap         *domain.ProposalSnapshot
		stateCode    uint8
		currentBlock uint64
		balance      *big.Int
		delegate     common.Address
		hasVoted     bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = uc.gov.Proposal(gctx, params.ProposalID)
		return err
	})
	g.Go(func() error {
		var err error
		stateCode, err = uc.gov.ProposalState(gctx, params.ProposalID)
		return err
	})
	g.Go(func() error {
		var err error
		currentBlock, err = uc.gov.CurrentBlock(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		balance, err = uc.votes.Votes(gctx, voter)
		return err
	})
	g.Go(func() error {
		var err error
		delegate, err = uc.votes.Delegate(gctx, voter)
		return err
	})
	g.Go(func() error {
		var err error
		hasVoted, err = uc.gov.HasVoted(gctx, params.ProposalID, voter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status, err := domain.ClassifyProposal(stateCode, snap, currentBlock)
	if err != nil {
		return nil, err
	}

	eligibility := &domain.VoterEligibility{
		Voter:    voter,
		Votes:    balance,
		Delegate: delegate,
		HasVoted: hasVoted,
	}
	vote, err := domain.CheckVote(eligibility, status.Phase, params.ProposalID, params.Support, params.Reason)
	if err != nil {
		return nil, err
	}

	result := &CastVoteResult{
		Proposal:    snap,
		Status:      status,
		Eligibility: eligibility,
		Params:      vote,
		DryRun:      params.DryRun,
	}
	if params.DryRun {
		uc.log.Debug("dry run, skipping submission", "proposalId", vote.ProposalID, "support", vote.Support)
		return result, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: "Submitting vote transaction",
		Spinner: true,
	})

	submission, err := uc.submitter.SubmitVote(ctx, vote)
	if err != nil {
		return nil, domain.SubmissionFailedErr{Op: "vote", Err: err}
	}

	uc.log.Info("vote submitted",
		"proposalId", vote.ProposalID,
		"support", vote.Support,
		"tx", submission.TxHash,
	)

	result.Submission = submission
	return result, nil
}
