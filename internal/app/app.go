package app

import (
	"log/slog"

	"github.com/gavel-org/gavel-cli/internal/adapters/chain"
	"github.com/gavel-org/gavel-cli/internal/adapters/progress"
	"github.com/gavel-org/gavel-cli/internal/config"
	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Log      *slog.Logger
	Selector usecase.ProposalSelector

	// Use cases
	GetAuctionStatus *usecase.GetAuctionStatus
	PlaceBid         *usecase.PlaceBid
	ListProposals    *usecase.ListProposals
	CastVote         *usecase.CastVote
	ListNetworks     *usecase.ListNetworks

	// Adapters (needed for lifecycle management)
	Chain *chain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.ProposalSelector,
	getAuctionStatus *usecase.GetAuctionStatus,
	placeBid *usecase.PlaceBid,
	listProposals *usecase.ListProposals,
	castVote *usecase.CastVote,
	listNetworks *usecase.ListNetworks,
	chainClient *chain.Client,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Selector:         selector,
		GetAuctionStatus: getAuctionStatus,
		PlaceBid:         placeBid,
		ListProposals:    listProposals,
		CastVote:         castVote,
		ListNetworks:     listNetworks,
		Chain:            chainClient,
	}, nil
}

// Close releases resources held by the app, currently only the RPC
// connection.
func (a *App) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
}

// ProvideProgressSink selects a spinner or a no-op sink depending on
// whether the command runs interactively.
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	return progress.NewSink(!cfg.NonInteractive && !cfg.JSON)
}
