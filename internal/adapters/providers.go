package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/ssb-deploy/internal/adapters/config"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters/repository/contracts"
	"github.com/trebuchet-org/ssb-deploy/internal/adapters/repository/deployments"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// ProvideBlockchainClient provides the lazily connecting client and its cleanup
func ProvideBlockchainClient(cfg *config.RuntimeConfig, artifacts usecase.ArtifactRepository, log *slog.Logger) (*blockchain.Client, func()) {
	client := blockchain.NewClient(cfg, artifacts, log)
	return client, client.Close
}

// RepositorySet provides filesystem-based implementations
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),

	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	ProvideBlockchainClient,
	wire.Bind(new(usecase.ContractFactoryProvider), new(*blockchain.Client)),
	wire.Bind(new(usecase.ChainReader), new(*blockchain.Client)),
	wire.Bind(new(usecase.ChainIDFetcher), new(*blockchain.Client)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),

	progress.NewProgressSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	BlockchainSet,
	InteractiveSet,
	ConfigSet,
)
