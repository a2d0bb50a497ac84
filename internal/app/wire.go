//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters"
	"github.com/trebuchet-org/campaign-keeper/internal/config"
	"github.com/trebuchet-org/campaign-keeper/internal/logging"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRegistry,
		usecase.NewListenCampaigns,
		usecase.NewVerifyCampaign,
		wire.Bind(new(usecase.VerificationScheduler), new(*usecase.VerifyCampaign)),
		usecase.NewPerformUpkeep,
		usecase.NewRunKeeper,
		usecase.NewInspectCampaign,

		// App
		NewApp,
	)
	return nil, nil, nil
}
