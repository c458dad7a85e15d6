//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/gavel-org/gavel-cli/internal/adapters/chain"
	"github.com/gavel-org/gavel-cli/internal/adapters/interactive"
	"github.com/gavel-org/gavel-cli/internal/config"
	"github.com/gavel-org/gavel-cli/internal/logging"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration and shared infrastructure
		config.Provider,
		config.NewNetworkStore,
		logging.NewLogger,
		usecase.SystemClock,
		ProvideProgressSink,

		// Adapters
		chain.NewSigner,
		chain.NewClient,
		interactive.NewSelectorAdapter,
		wire.Bind(new(usecase.AuctionReader), new(*chain.Client)),
		wire.Bind(new(usecase.GovernanceReader), new(*chain.Client)),
		wire.Bind(new(usecase.VotesReader), new(*chain.Client)),
		wire.Bind(new(usecase.BidSubmitter), new(*chain.Client)),
		wire.Bind(new(usecase.VoteSubmitter), new(*chain.Client)),
		wire.Bind(new(usecase.NetworkStore), new(*config.NetworkResolver)),
		wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),

		// Use cases
		usecase.NewGetAuctionStatus,
		usecase.NewPlaceBid,
		usecase.NewListProposals,
		usecase.NewCastVote,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
