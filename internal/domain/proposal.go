package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalPhase is the lifecycle stage of a governance proposal as
// reported by the governor contract. The passing/failing rules depend on
// quorum and threshold parameters that live in the contract, so the phase
// is interpreted here, never recomputed.
type ProposalPhase uint8

const (
	ProposalPending ProposalPhase = iota
	ProposalActive
	ProposalCanceled
	ProposalDefeated
	ProposalSucceeded
	ProposalQueued
	ProposalExpired
	ProposalExecuted
)

var proposalPhaseNames = map[ProposalPhase]string{
	ProposalPending:   "Pending",
	ProposalActive:    "Active",
	ProposalCanceled:  "Canceled",
	ProposalDefeated:  "Defeated",
	ProposalSucceeded: "Succeeded",
	ProposalQueued:    "Queued",
	ProposalExpired:   "Expired",
	ProposalExecuted:  "Executed",
}

func (p ProposalPhase) String() string {
	if name, ok := proposalPhaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// ProposalSnapshot is a read-only projection of a single governance
// proposal. Proposal ids are positive, contiguous and 1-indexed.
type ProposalSnapshot struct {
	ID           uint64
	Proposer     common.Address
	StartBlock   uint64
	EndBlock     uint64
	ForVotes     *big.Int
	AgainstVotes *big.Int
	AbstainVotes *big.Int
	Canceled     bool
	Executed     bool
}

// ProposalStatus is the classifier's view of a proposal. BlocksRemaining
// is only defined while the proposal is active.
type ProposalStatus struct {
	Phase           ProposalPhase `json:"phase"`
	BlocksRemaining *uint64       `json:"blocksRemaining,omitempty"`
}

// ClassifyProposal maps the chain-reported state code to a named phase and
// computes the remaining voting window. A code outside 0..7 fails with
// UnknownPhaseErr rather than silently defaulting.
func ClassifyProposal(stateCode uint8, snap *ProposalSnapshot, currentBlock uint64) (*ProposalStatus, error) {
	if stateCode > uint8(ProposalExecuted) {
		return nil, UnknownPhaseErr{Code: stateCode}
	}
	status := &ProposalStatus{Phase: ProposalPhase(stateCode)}
	if status.Phase == ProposalActive {
		remaining := uint64(0)
		if snap.EndBlock > currentBlock {
			remaining = snap.EndBlock - currentBlock
		}
		status.BlocksRemaining = &remaining
	}
	return status, nil
}
