package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// ListNetworksResult contains the known network configurations.
type ListNetworksResult struct {
	Networks []*domain.Network
}

// ListNetworks is the use case for listing configured networks.
type ListNetworks struct {
	store NetworkStore
}

// NewListNetworks creates a new ListNetworks use case.
func NewListNetworks(store NetworkStore) *ListNetworks {
	return &ListNetworks{store: store}
}

// Run executes the list networks use case.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	networks := uc.store.All()

	// Only networks with governance contracts configured are usable.
	networks = lo.Filter(networks, func(n *domain.Network, _ int) bool {
		return n.RPCURL != "" || n.AuctionHouse != "" || n.Governor != ""
	})
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].ChainID < networks[j].ChainID
	})

	return &ListNetworksResult{Networks: networks}, nil
}
