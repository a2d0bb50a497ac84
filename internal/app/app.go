package app

import (
	"log/slog"

	"github.com/trebuchet-org/campaign-keeper/internal/adapters/blockchain"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters/metrics"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	RunKeeper       *usecase.RunKeeper
	VerifyCampaign  *usecase.VerifyCampaign
	InspectCampaign *usecase.InspectCampaign

	// Adapters
	MetricsServer *metrics.Server
	Signer        *blockchain.Signer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	runKeeper *usecase.RunKeeper,
	verifyCampaign *usecase.VerifyCampaign,
	inspectCampaign *usecase.InspectCampaign,
	metricsServer *metrics.Server,
	signer *blockchain.Signer,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		RunKeeper:       runKeeper,
		VerifyCampaign:  verifyCampaign,
		InspectCampaign: inspectCampaign,
		MetricsServer:   metricsServer,
		Signer:          signer,
	}, nil
}
