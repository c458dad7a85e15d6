package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABI surfaces for the three collaborator contracts. Only the
// functions this tool calls are declared; the contracts expose more.

const auctionHouseABI = `[
	{"type":"function","name":"auction","inputs":[],"outputs":[
		{"name":"tokenId","type":"uint256"},
		{"name":"amount","type":"uint256"},
		{"name":"startTime","type":"uint256"},
		{"name":"endTime","type":"uint256"},
		{"name":"bidder","type":"address"},
		{"name":"settled","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"reservePrice","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"minBidIncrementPercentage","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
	{"type":"function","name":"timeBuffer","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"createBid","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[],"stateMutability":"payable"}
]`

const governorABI = `[
	{"type":"function","name":"proposalCount","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"proposals","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[
		{"name":"id","type":"uint256"},
		{"name":"proposer","type":"address"},
		{"name":"startBlock","type":"uint256"},
		{"name":"endBlock","type":"uint256"},
		{"name":"forVotes","type":"uint256"},
		{"name":"againstVotes","type":"uint256"},
		{"name":"abstainVotes","type":"uint256"},
		{"name":"canceled","type":"bool"},
		{"name":"executed","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"state","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
	{"type":"function","name":"hasVoted","inputs":[{"name":"proposalId","type":"uint256"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"castVote","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"castVoteWithReason","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"},{"name":"reason","type":"string"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable"}
]`

const votesTokenABI = `[
	{"type":"function","name":"getVotes","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"delegates","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}
]`

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	return parsed
}
