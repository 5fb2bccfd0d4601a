package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	ContractName string
	Args         domain.ConstructorArgs
}

// DeployContractResult contains the result of a confirmed deployment
type DeployContractResult struct {
	Address    common.Address
	TxHash     common.Hash
	Deployment *models.Deployment
	// ExplorerURL is the block explorer configured for the active network
	ExplorerURL string
	// Recorded is false when the registry write failed
	Recorded bool
}

// DeployContract resolves an artifact, submits its deployment and waits for confirmation
type DeployContract struct {
	config    *config.RuntimeConfig
	factories ContractFactoryProvider
	chain     ChainReader
	repo      DeploymentRepository
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	factories ContractFactoryProvider,
	chain ChainReader,
	repo DeploymentRepository,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		factories: factories,
		chain:     chain,
		repo:      repo,
		sink:      sink,
		log:       log.With("component", "DeployContract"),
	}
}

// Run executes the deployment. Every step runs only after the previous one
// succeeded; any failure aborts the sequence with a *domain.DeploymentFailure.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	fail := func(stage domain.DeploymentStage, err error) error {
		return &domain.DeploymentFailure{Contract: params.ContractName, Stage: stage, Err: err}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s artifact", params.ContractName),
		Spinner: true,
	})

	factory, err := uc.factories.GetContractFactory(ctx, params.ContractName)
	if err != nil {
		uc.sink.Error("Artifact lookup failed")
		return nil, fail(domain.StageLookup, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageBroadcasting,
		Message: fmt.Sprintf("Submitting %s deployment", params.ContractName),
		Spinner: true,
	})

	handle, err := factory.Deploy(ctx, params.Args.Values()...)
	if err != nil {
		uc.sink.Error("Deployment transaction rejected")
		return nil, fail(domain.StageSubmit, err)
	}

	uc.log.Info("deployment submitted",
		"contract", params.ContractName,
		"tx", handle.TxHash().Hex(),
		"predicted", handle.PredictedAddress().Hex())

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:    StageConfirming,
		Message:  fmt.Sprintf("Waiting for confirmation of %s", handle.TxHash().Hex()),
		Spinner:  true,
		Metadata: handle.TxHash(),
	})

	address, err := handle.Wait(ctx)
	if err != nil {
		uc.sink.Error("Deployment was not confirmed")
		return nil, fail(domain.StageConfirm, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Message: "Deployment confirmed",
	})

	deployment := uc.buildDeployment(ctx, factory.Contract(), params, address, handle.TxHash())
	result := &DeployContractResult{
		Address:    address,
		TxHash:     handle.TxHash(),
		Deployment: deployment,
	}
	if uc.config != nil && uc.config.Network != nil {
		result.ExplorerURL = uc.config.Network.ExplorerURL
	}

	// The contract is live at this point, so a registry problem must not fail the run.
	if uc.repo != nil {
		if previous, err := uc.repo.GetDeploymentByAddress(ctx, deployment.ChainID, deployment.Address); err == nil {
			uc.log.Warn("replacing record of an earlier deployment at the same address",
				"address", deployment.Address,
				"previous_tx", previous.TransactionHash)
		}
		if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
			uc.log.Warn("failed to record deployment", "id", deployment.ID, "error", err)
		} else {
			result.Recorded = true
		}
	}

	return result, nil
}

func (uc *DeployContract) buildDeployment(
	ctx context.Context,
	contract *models.Contract,
	params DeployContractParams,
	address common.Address,
	txHash common.Hash,
) *models.Deployment {
	deployment := &models.Deployment{
		ContractName:    params.ContractName,
		Address:         address.Hex(),
		TransactionHash: txHash.Hex(),
		Status:          models.DeploymentStatusConfirmed,
		ConstructorArgs: params.Args.Strings(),
		CreatedAt:       time.Now().UTC(),
	}

	if uc.config != nil && uc.config.Network != nil {
		deployment.Network = uc.config.Network.Name
	}

	if chainID, err := uc.chain.ChainID(ctx); err == nil {
		deployment.ChainID = chainID
	} else {
		uc.log.Debug("chain id unavailable for record", "error", err)
	}

	if sender, err := uc.chain.Sender(); err == nil {
		deployment.Deployer = sender.Hex()
	}

	if contract != nil {
		deployment.Artifact = models.ArtifactInfo{
			Path:       contract.ArtifactPath,
			SourceName: contract.SourceName,
		}
		if contract.Artifact != nil && contract.Artifact.Bytecode.HasCode() {
			code := common.FromHex(contract.Artifact.Bytecode.Object)
			deployment.Artifact.BytecodeHash = crypto.Keccak256Hash(code).Hex()
		}
	}

	deployment.ID = models.NewDeploymentID(deployment.ChainID, deployment.ContractName, deployment.Address)
	return deployment
}
