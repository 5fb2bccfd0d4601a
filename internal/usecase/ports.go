package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
)

// ArtifactRepository resolves contract names to compiled artifacts
type ArtifactRepository interface {
	GetContract(ctx context.Context, name string) (*models.Contract, error)
}

// ContractFactoryProvider binds a named artifact to the configured client and signer
type ContractFactoryProvider interface {
	GetContractFactory(ctx context.Context, contractName string) (ContractFactory, error)
}

// ContractFactory submits deployment transactions for one artifact
type ContractFactory interface {
	Contract() *models.Contract
	// Deploy submits one deployment transaction with positional constructor arguments
	Deploy(ctx context.Context, args ...any) (DeploymentHandle, error)
}

// DeploymentHandle represents a submitted deployment transaction
type DeploymentHandle interface {
	TxHash() common.Hash
	// PredictedAddress is derived from the sender nonce at submission time
	PredictedAddress() common.Address
	// Wait blocks until the transaction is mined and returns the deployed address
	Wait(ctx context.Context) (common.Address, error)
}

// ChainReader exposes the connected chain and signing account
type ChainReader interface {
	ChainID(ctx context.Context) (uint64, error)
	Sender() (common.Address, error)
	PendingNonce(ctx context.Context) (uint64, error)
}

// ChainIDFetcher reads the chain ID served by an RPC endpoint
type ChainIDFetcher interface {
	FetchChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// DeploymentRepository handles persistence of deployments
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// Confirmer asks the operator before an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    ExecutionStage
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ExecutionStage represents a stage in the deployment process
type ExecutionStage string

const (
	StageResolving    ExecutionStage = "Resolving"
	StageBroadcasting ExecutionStage = "Broadcasting"
	StageConfirming   ExecutionStage = "Confirming"
	StageCompleted    ExecutionStage = "Completed"
)
