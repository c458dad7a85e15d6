package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// NetworkResolver resolves a network by name or chain id from built-in
// defaults, gavel.toml entries, and an optional shared networks.yaml.
type NetworkResolver struct {
	networks      map[string]*domain.Network
	chainIDLookup map[uint64]string
}

// NewNetworkResolver creates a resolver seeded with well-known networks.
func NewNetworkResolver() *NetworkResolver {
	r := &NetworkResolver{
		networks:      make(map[string]*domain.Network),
		chainIDLookup: make(map[uint64]string),
	}

	defaults := []domain.Network{
		{
			ChainID:      1,
			Name:         "mainnet",
			ExplorerURL:  "https://etherscan.io",
			AuctionHouse: "0x830BD73E4184ceF73443C15111a1DF14e495C706",
			Governor:     "0x6f3E6272A167e8AcCb32072d08E0957F9c79223d",
			Token:        "0x9C8fF314C9Bc7F6e59A9d9225Fb22946427eDC03",
		},
		{ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"},
		{ChainID: 31337, Name: "localhost", RPCURL: "http://localhost:8545"},
		{ChainID: 31337, Name: "anvil", RPCURL: "http://localhost:8545"},
	}
	for _, network := range defaults {
		r.Add(&network)
	}
	return r
}

// Add registers a network, overriding any default with the same name.
func (r *NetworkResolver) Add(network *domain.Network) {
	r.networks[strings.ToLower(network.Name)] = network
	r.chainIDLookup[network.ChainID] = network.Name
}

// LoadNetworks merges in networks from a parsed gavel.toml.
func (r *NetworkResolver) LoadNetworks(networks map[string]*domain.Network) {
	for name, network := range networks {
		if network.Name == "" {
			network.Name = name
		}
		r.Add(network)
	}
}

// LoadYAML merges in networks from a shared registry file, a flat yaml
// map of name to network.
func (r *NetworkResolver) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	networks := map[string]*domain.Network{}
	if err := yaml.Unmarshal(data, &networks); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	r.LoadNetworks(networks)
	return nil
}

// Resolve finds a network by name or numeric chain id.
func (r *NetworkResolver) Resolve(input string) (*domain.Network, error) {
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}
	if network, ok := r.networks[strings.ToLower(input)]; ok {
		return network, nil
	}
	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		if name, ok := r.chainIDLookup[chainID]; ok {
			return r.networks[strings.ToLower(name)], nil
		}
	}
	return nil, fmt.Errorf("unknown network %q", input)
}

// All returns every known network.
func (r *NetworkResolver) All() []*domain.Network {
	seen := make(map[*domain.Network]bool, len(r.networks))
	out := make([]*domain.Network, 0, len(r.networks))
	for _, network := range r.networks {
		if !seen[network] {
			seen[network] = true
			out = append(out, network)
		}
	}
	return out
}
