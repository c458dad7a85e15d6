package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/sync/errgroup"

	"github.com/gavel-org/gavel-cli/internal/config"
	"github.com/gavel-org/gavel-cli/internal/domain"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// Client is the chain client collaborator: it reads auction and
// governance state over JSON-RPC and submits the two write transactions.
// Every read is fresh; there is no transactional snapshot across calls.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int

	auctionHouse *bind.BoundContract
	governor     *bind.BoundContract
	token        *bind.BoundContract

	extensionDuration time.Duration
	signer            *Signer
	log               *slog.Logger
}

// NewClient dials the configured RPC endpoint and binds the auction
// house, governor and votes token contracts. With no network configured
// the client is still constructed so commands that never touch the chain
// keep working; any read or write then fails with a clear error.
func NewClient(cfg *config.RuntimeConfig, signer *Signer, log *slog.Logger) (*Client, error) {
	c := &Client{
		extensionDuration: cfg.ExtensionDuration,
		signer:            signer,
		log:               log,
	}
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return c, nil
	}

	eth, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.eth = eth
	c.chainID = new(big.Int).SetUint64(cfg.Network.ChainID)

	houseABI := mustParseABI("auction house", auctionHouseABI)
	govABI := mustParseABI("governor", governorABI)
	tokenABI := mustParseABI("votes token", votesTokenABI)

	c.auctionHouse = bind.NewBoundContract(common.HexToAddress(cfg.Network.AuctionHouse), houseABI, eth, eth, eth)
	c.governor = bind.NewBoundContract(common.HexToAddress(cfg.Network.Governor), govABI, eth, eth, eth)
	c.token = bind.NewBoundContract(common.HexToAddress(cfg.Network.Token), tokenABI, eth, eth, eth)

	return c, nil
}

// ready guards chain access for commands run without a usable network.
func (c *Client) ready() error {
	if c.eth == nil {
		return fmt.Errorf("no network configured: pass --network or set one in gavel.toml")
	}
	return nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}

// CurrentAuction assembles an auction snapshot from four independent
// contract reads issued concurrently.
func (c *Client) CurrentAuction(ctx context.Context) (*domain.AuctionSnapshot, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var (
		tokenID, amount, start, end *big.Int
		bidder                      common.Address
		reserve                     *big.Int
		incrementPct                uint8
		timeBuffer                  *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var out []interface{}
		if err := c.auctionHouse.Call(&bind.CallOpts{Context: gctx}, &out, "auction"); err != nil {
			return fmt.Errorf("auction(): %w", err)
		}
		tokenID = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
		amount = *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
		start = *abi.ConvertType(out[2], new(*big.Int)).(**big.Int)
		end = *abi.ConvertType(out[3], new(*big.Int)).(**big.Int)
		bidder = *abi.ConvertType(out[4], new(common.Address)).(*common.Address)
		return nil
	})
	g.Go(func() error {
		var out []interface{}
		if err := c.auctionHouse.Call(&bind.CallOpts{Context: gctx}, &out, "reservePrice"); err != nil {
			return fmt.Errorf("reservePrice(): %w", err)
		}
		reserve = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
		return nil
	})
	g.Go(func() error {
		var out []interface{}
		if err := c.auctionHouse.Call(&bind.CallOpts{Context: gctx}, &out, "minBidIncrementPercentage"); err != nil {
			return fmt.Errorf("minBidIncrementPercentage(): %w", err)
		}
		incrementPct = *abi.ConvertType(out[0], new(uint8)).(*uint8)
		return nil
	})
	g.Go(func() error {
		var out []interface{}
		if err := c.auctionHouse.Call(&bind.CallOpts{Context: gctx}, &out, "timeBuffer"); err != nil {
			return fmt.Errorf("timeBuffer(): %w", err)
		}
		timeBuffer = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.AuctionSnapshot{
		TokenID:           tokenID,
		CurrentBid:        amount,
		Bidder:            bidder,
		StartTime:         time.Unix(start.Int64(), 0),
		EndTime:           time.Unix(end.Int64(), 0),
		ReservePrice:      reserve,
		MinIncrementPct:   incrementPct,
		ExtensionWindow:   time.Duration(timeBuffer.Int64()) * time.Second,
		ExtensionDuration: c.extensionDuration,
	}, nil
}

// ProposalCount returns the number of proposals ever created. Ids are
// contiguous and 1-indexed on the governor.
func (c *Client) ProposalCount(ctx context.Context) (uint64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	var out []interface{}
	if err := c.governor.Call(&bind.CallOpts{Context: ctx}, &out, "proposalCount"); err != nil {
		return 0, fmt.Errorf("proposalCount(): %w", err)
	}
	count := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return count.Uint64(), nil
}

// Proposal fetches a proposal snapshot by id.
func (c *Client) Proposal(ctx context.Context, id uint64) (*domain.ProposalSnapshot, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var out []interface{}
	if err := c.governor.Call(&bind.CallOpts{Context: ctx}, &out, "proposals", new(big.Int).SetUint64(id)); err != nil {
		return nil, fmt.Errorf("proposals(%d): %w", id, err)
	}

	snap := &domain.ProposalSnapshot{
		ID:           (*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)).Uint64(),
		Proposer:     *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		StartBlock:   (*abi.ConvertType(out[2], new(*big.Int)).(**big.Int)).Uint64(),
		EndBlock:     (*abi.ConvertType(out[3], new(*big.Int)).(**big.Int)).Uint64(),
		ForVotes:     *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
		AgainstVotes: *abi.ConvertType(out[5], new(*big.Int)).(**big.Int),
		AbstainVotes: *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		Canceled:     *abi.ConvertType(out[7], new(bool)).(*bool),
		Executed:     *abi.ConvertType(out[8], new(bool)).(*bool),
	}
	return snap, nil
}

// ProposalState returns the governor's numeric state code for a proposal.
// The code is interpreted by the classifier, never here.
func (c *Client) ProposalState(ctx context.Context, id uint64) (uint8, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	var out []interface{}
	if err := c.governor.Call(&bind.CallOpts{Context: ctx}, &out, "state", new(big.Int).SetUint64(id)); err != nil {
		return 0, fmt.Errorf("state(%d): %w", id, err)
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// CurrentBlock returns the node's latest block number.
func (c *Client) CurrentBlock(ctx context.Context) (uint64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	return c.eth.BlockNumber(ctx)
}

// HasVoted reports whether the account already cast a vote on a proposal.
func (c *Client) HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error) {
	if err := c.ready(); err != nil {
		return false, err
	}
	var out []interface{}
	if err := c.governor.Call(&bind.CallOpts{Context: ctx}, &out, "hasVoted", new(big.Int).SetUint64(id), voter); err != nil {
		return false, fmt.Errorf("hasVoted(%d, %s): %w", id, voter, err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// Votes returns the account's current voting power.
func (c *Client) Votes(ctx context.Context, account common.Address) (*big.Int, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var out []interface{}
	if err := c.token.Call(&bind.CallOpts{Context: ctx}, &out, "getVotes", account); err != nil {
		return nil, fmt.Errorf("getVotes(%s): %w", account, err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Delegate returns the address the account has delegated its votes to.
// The zero address means delegation was never configured.
func (c *Client) Delegate(ctx context.Context, account common.Address) (common.Address, error) {
	if err := c.ready(); err != nil {
		return common.Address{}, err
	}
	var out []interface{}
	if err := c.token.Call(&bind.CallOpts{Context: ctx}, &out, "delegates", account); err != nil {
		return common.Address{}, fmt.Errorf("delegates(%s): %w", account, err)
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Interface guards.
var (
	_ usecase.AuctionReader    = (*Client)(nil)
	_ usecase.GovernanceReader = (*Client)(nil)
	_ usecase.VotesReader      = (*Client)(nil)
)
