package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// AuctionReader provides the current auction snapshot from the auction
// house contract. Every read is a fresh projection; nothing is cached.
type AuctionReader interface {
	CurrentAuction(ctx context.Context) (*domain.AuctionSnapshot, error)
}

// GovernanceReader provides proposal state from the governor contract.
type GovernanceReader interface {
	ProposalCount(ctx context.Context) (uint64, error)
	Proposal(ctx context.Context, id uint64) (*domain.ProposalSnapshot, error)
	ProposalState(ctx context.Context, id uint64) (uint8, error)
	CurrentBlock(ctx context.Context) (uint64, error)
	HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error)
}

// VotesReader provides an account's voting power and delegation from the
// votes token contract.
type VotesReader interface {
	Votes(ctx context.Context, account common.Address) (*big.Int, error)
	Delegate(ctx context.Context, account common.Address) (common.Address, error)
}

// BidSubmitter signs and broadcasts a bid transaction. At most one write
// is issued per invocation and failures are never retried here.
type BidSubmitter interface {
	SubmitBid(ctx context.Context, params *domain.BidParams) (*domain.Submission, error)
}

// VoteSubmitter signs and broadcasts a vote transaction. Sender errors
// when no signing key is configured.
type VoteSubmitter interface {
	Sender() (common.Address, error)
	SubmitVote(ctx context.Context, params *domain.VoteParams) (*domain.Submission, error)
}

// NetworkStore lists the networks known to the tool.
type NetworkStore interface {
	All() []*domain.Network
}

// ProposalSelector interactively picks a proposal when none was given.
type ProposalSelector interface {
	SelectProposal(ctx context.Context, items []*ProposalItem, prompt string) (*ProposalItem, error)
}

// Clock supplies the current time. Injected so phase derivation stays a
// pure function in tests.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() Clock {
	return time.Now
}

// ProgressEvent represents a progress update surfaced to the CLI.
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink.
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
