package domain

import "github.com/ethereum/go-ethereum/common"

// Submission records the outcome of a write transaction that was accepted
// by the network. BlockNumber is zero until the transaction is mined.
type Submission struct {
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber,omitempty"`
	GasUsed     uint64      `json:"gasUsed,omitempty"`
}

// Network is a resolved chain configuration.
type Network struct {
	ChainID     uint64 `json:"chainId" yaml:"chain_id" toml:"chain_id"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	RPCURL      string `json:"rpcUrl" yaml:"rpc_url" toml:"rpc_url"`
	ExplorerURL string `json:"explorerUrl,omitempty" yaml:"explorer_url,omitempty" toml:"explorer_url,omitempty"`

	// Contract addresses for the auction house, governor and votes token.
	AuctionHouse string `json:"auctionHouse,omitempty" yaml:"auction_house,omitempty" toml:"auction_house,omitempty"`
	Governor     string `json:"governor,omitempty" yaml:"governor,omitempty" toml:"governor,omitempty"`
	Token        string `json:"token,omitempty" yaml:"token,omitempty" toml:"token,omitempty"`
}
