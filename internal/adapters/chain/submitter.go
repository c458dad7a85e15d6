package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// Sender returns the address transactions are signed with.
func (c *Client) Sender() (common.Address, error) {
	return c.signer.Address()
}

// SubmitBid signs and broadcasts a createBid transaction carrying the bid
// value, then waits for it to be mined. Submission errors are returned
// as-is; the use case wraps them.
func (c *Client) SubmitBid(ctx context.Context, params *domain.BidParams) (*domain.Submission, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	opts, err := c.signer.TransactOpts()
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.Value = params.Value

	tx, err := c.auctionHouse.Transact(opts, "createBid", params.TokenID)
	if err != nil {
		return nil, err
	}

	c.log.Debug("bid transaction broadcast", "tx", tx.Hash(), "value", params.Value)
	return c.waitMined(ctx, tx)
}

// SubmitVote signs and broadcasts a castVote or castVoteWithReason
// transaction, then waits for it to be mined.
func (c *Client) SubmitVote(ctx context.Context, params *domain.VoteParams) (*domain.Submission, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	opts, err := c.signer.TransactOpts()
	if err != nil {
		return nil, err
	}
	opts.Context = ctx

	id := new(big.Int).SetUint64(params.ProposalID)
	var tx *types.Transaction
	if params.Reason != "" {
		tx, err = c.governor.Transact(opts, "castVoteWithReason", id, params.Support, params.Reason)
	} else {
		tx, err = c.governor.Transact(opts, "castVote", id, params.Support)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug("vote transaction broadcast", "tx", tx.Hash(), "proposalId", params.ProposalID)
	return c.waitMined(ctx, tx)
}

// waitMined blocks until the transaction is included or the context's
// deadline fires. A mined-but-reverted transaction is an error: the local
// rules should have caught it, so the revert is surfaced verbatim.
func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*domain.Submission, error) {
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted on-chain", tx.Hash())
	}
	return &domain.Submission{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// Interface guards.
var (
	_ usecase.BidSubmitter  = (*Client)(nil)
	_ usecase.VoteSubmitter = (*Client)(nil)
)
