package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	ContractName string
	// ChainID defaults to the active network's chain when one is configured
	ChainID uint64
}

// DeploymentListResult contains the listed deployments and a summary
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary counts deployments per chain and contract
type DeploymentSummary struct {
	Total      int
	ByChain    map[uint64]int
	ByContract map[string]int
}

// ListDeployments is the use case for listing recorded deployments
type ListDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
	chain  ChainReader
	sink   ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository, chain ChainReader, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		config: cfg,
		repo:   repo,
		chain:  chain,
		sink:   sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	chainID := params.ChainID
	if chainID == 0 && uc.config.Network != nil {
		id, err := uc.chain.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve chain of network %s: %w", uc.config.Network.Name, err)
		}
		chainID = id
	}

	deployments, err := uc.repo.ListDeployments(ctx, domain.DeploymentFilter{
		ChainID:      chainID,
		ContractName: params.ContractName,
	})
	if err != nil {
		return nil, err
	}

	sortDeployments(deployments)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}, nil
}

// sortDeployments sorts deployments by chain, contract name, then creation time
func sortDeployments(deployments []*models.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].ChainID != deployments[j].ChainID {
			return deployments[i].ChainID < deployments[j].ChainID
		}
		if deployments[i].ContractName != deployments[j].ContractName {
			return deployments[i].ContractName < deployments[j].ContractName
		}
		return deployments[i].CreatedAt.Before(deployments[j].CreatedAt)
	})
}

func calculateSummary(deployments []*models.Deployment) DeploymentSummary {
	return DeploymentSummary{
		Total: len(deployments),
		ByChain: lo.CountValuesBy(deployments, func(d *models.Deployment) uint64 {
			return d.ChainID
		}),
		ByContract: lo.CountValuesBy(deployments, func(d *models.Deployment) string {
			return d.ContractName
		}),
	}
}
