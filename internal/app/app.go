package app

import (
	"log/slog"

	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Confirmer usecase.Confirmer

	// Use cases
	DeployContract  *usecase.DeployContract
	PredictAddress  *usecase.PredictAddress
	ListDeployments *usecase.ListDeployments
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	confirmer usecase.Confirmer,
	deployContract *usecase.DeployContract,
	predictAddress *usecase.PredictAddress,
	listDeployments *usecase.ListDeployments,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Confirmer:       confirmer,
		DeployContract:  deployContract,
		PredictAddress:  predictAddress,
		ListDeployments: listDeployments,
		ListNetworks:    listNetworks,
	}, nil
}
