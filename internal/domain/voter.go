package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Vote support codes as understood by the governor contract.
const (
	SupportAgainst uint8 = 0
	SupportFor     uint8 = 1
	SupportAbstain uint8 = 2
)

// Advisory codes attached to otherwise successful vote decisions.
const (
	AdvisoryDelegationUnset    = "delegation-unset"
	AdvisoryDelegationMismatch = "delegation-mismatch"
)

// VoterEligibility is a read-only projection of a voter's standing against
// a single proposal.
type VoterEligibility struct {
	Voter    common.Address
	Votes    *big.Int
	Delegate common.Address
	HasVoted bool
}

// Advisory is a non-blocking warning attached to a successful decision.
// It flags conditions the chain is authoritative on, where the action will
// succeed but may not count the way the caller expects.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VoteParams are the contract-call parameters for a validated vote, ready
// for submission. Reason is passed through verbatim and may be empty.
type VoteParams struct {
	ProposalID uint64    `json:"proposalId"`
	Support    uint8     `json:"support"`
	Reason     string    `json:"reason,omitempty"`
	Advisory   *Advisory `json:"advisory,omitempty"`
}

// CheckVote validates a requested vote against the voter's eligibility and
// the proposal's phase. Rules are applied in order and the first failure
// wins. A delegation mismatch never blocks: the chain, not this check,
// decides whose voting power counts, so it is surfaced as an advisory on
// the successful result.
func CheckVote(e *VoterEligibility, phase ProposalPhase, proposalID uint64, support uint8, reason string) (*VoteParams, error) {
	if support > SupportAbstain {
		return nil, InvalidSupportErr{Support: support}
	}
	if e.Votes == nil || e.Votes.Sign() == 0 {
		return nil, ErrNoVotingPower
	}
	if phase != ProposalActive {
		return nil, ErrProposalNotActive
	}
	if e.HasVoted {
		return nil, ErrAlreadyVoted
	}

	params := &VoteParams{
		ProposalID: proposalID,
		Support:    support,
		Reason:     reason,
	}
	switch {
	case e.Delegate == (common.Address{}):
		params.Advisory = &Advisory{
			Code:    AdvisoryDelegationUnset,
			Message: "no delegate set; votes may not count until delegation is configured",
		}
	case e.Delegate != e.Voter:
		params.Advisory = &Advisory{
			Code:    AdvisoryDelegationMismatch,
			Message: "votes are delegated to " + e.Delegate.Hex() + "; this vote may not carry the expected weight",
		}
	}
	return params, nil
}
