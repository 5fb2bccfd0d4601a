//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters"
	"github.com/trebuchet-org/ssb-deploy/internal/config"
	"github.com/trebuchet-org/ssb-deploy/internal/logging"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.ConfigSet,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewPredictAddress,
		usecase.NewListDeployments,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil, nil
}
