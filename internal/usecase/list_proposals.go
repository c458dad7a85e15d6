package usecase

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// proposalFetchLimit bounds how many proposal reads run concurrently.
const proposalFetchLimit = 8

// ListProposalsParams contains parameters for listing proposals.
type ListProposalsParams struct {
	// ActiveOnly restricts the result to proposals open for voting.
	ActiveOnly bool
}

// ProposalItem pairs a proposal snapshot with its classified status.
type ProposalItem struct {
	Snapshot *domain.ProposalSnapshot
	Status   *domain.ProposalStatus
}

// ListProposalsResult contains the result of listing proposals.
type ListProposalsResult struct {
	Items        []*ProposalItem
	CurrentBlock uint64
}

// ListProposals is the use case for listing governance proposals. The
// governor holds no history index beyond the contiguous 1-indexed ids, so
// the full range is fetched each time.
type ListProposals struct {
	gov GovernanceReader
	log *slog.Logger
}

// NewListProposals creates a new ListProposals use case.
func NewListProposals(gov GovernanceReader, log *slog.Logger) *ListProposals {
	return &ListProposals{gov: gov, log: log}
}

// Run executes the list proposals use case.
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ListProposalsResult, error) {
	// Count and block height are independent reads.
	var count, currentBlock uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = uc.gov.ProposalCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		currentBlock, err = uc.gov.CurrentBlock(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.log.Debug("listing proposals", "count", count, "block", currentBlock)

	items := make([]*ProposalItem, 0, count)
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(proposalFetchLimit)
	results := make([]*ProposalItem, count)
	for id := uint64(1); id <= count; id++ {
		g.Go(func() error {
			item, err := uc.fetchOne(gctx, id, currentBlock)
			if err != nil {
				return err
			}
			results[id-1] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, item := range results {
		if params.ActiveOnly && item.Status.Phase != domain.ProposalActive {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Snapshot.ID < items[j].Snapshot.ID
	})

	return &ListProposalsResult{Items: items, CurrentBlock: currentBlock}, nil
}

func (uc *ListProposals) fetchOne(ctx context.Context, id uint64, currentBlock uint64) (*ProposalItem, error) {
	var (
		snap  *domain.ProposalSnapshot
		state uint8
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = uc.gov.Proposal(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		state, err = uc.gov.ProposalState(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status, err := domain.ClassifyProposal(state, snap, currentBlock)
	if err != nil {
		return nil, err
	}
	return &ProposalItem{Snapshot: snap, Status: status}, nil
}
