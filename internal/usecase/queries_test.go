package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

func TestPredictAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("uses pending nonce", func(t *testing.T) {
		uc := usecase.NewPredictAddress(&stubChain{chainID: 31337, sender: signerAddr, nonce: 0})

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(31337), result.ChainID)
		assert.Equal(t, signerAddr, result.Sender)
		// anvil's first deployment from the default account
		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", result.Address.Hex())
	})

	t.Run("later nonce", func(t *testing.T) {
		uc := usecase.NewPredictAddress(&stubChain{chainID: 1, sender: signerAddr, nonce: 7})

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, crypto.CreateAddress(signerAddr, 7), result.Address)
	})

	t.Run("no signer", func(t *testing.T) {
		uc := usecase.NewPredictAddress(&stubChain{chainID: 1})

		_, err := uc.Run(ctx)
		assert.ErrorIs(t, err, domain.ErrNoSigner)
	})

	t.Run("rpc failure", func(t *testing.T) {
		uc := usecase.NewPredictAddress(&stubChain{sender: signerAddr, err: errors.New("connection refused")})

		_, err := uc.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestListDeployments(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	deployments := []*models.Deployment{
		{ID: "c", ChainID: 31337, ContractName: "SSB", CreatedAt: now.Add(time.Minute)},
		{ID: "a", ChainID: 1, ContractName: "SSB", CreatedAt: now},
		{ID: "b", ChainID: 31337, ContractName: "SSB", CreatedAt: now},
		{ID: "d", ChainID: 31337, ContractName: "Registry", CreatedAt: now},
	}

	repo := &MockDeploymentRepository{}
	repo.On("ListDeployments", mock.Anything, domain.DeploymentFilter{ContractName: "SSB"}).Return(deployments, nil)

	sink := &MockProgressSink{}
	uc := usecase.NewListDeployments(&config.RuntimeConfig{}, repo, &stubChain{}, sink)
	result, err := uc.Run(ctx, usecase.ListDeploymentsParams{ContractName: "SSB"})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Deployments))
	for _, d := range result.Deployments {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids)
	assert.Equal(t, 4, result.Summary.Total)
	assert.Equal(t, map[uint64]int{1: 1, 31337: 3}, result.Summary.ByChain)
	assert.Equal(t, 3, result.Summary.ByContract["SSB"])
	assert.NotEmpty(t, sink.events)
	repo.AssertExpectations(t)
}

func TestListDeploymentsOnActiveNetwork(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Network: &config.Network{Name: "anvil"}}

	t.Run("filters by connected chain", func(t *testing.T) {
		repo := &MockDeploymentRepository{}
		repo.On("ListDeployments", mock.Anything, domain.DeploymentFilter{ChainID: 31337}).Return([]*models.Deployment{}, nil)

		uc := usecase.NewListDeployments(cfg, repo, &stubChain{chainID: 31337}, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		require.NoError(t, err)
		assert.Zero(t, result.Summary.Total)
		repo.AssertExpectations(t)
	})

	t.Run("unreachable network", func(t *testing.T) {
		uc := usecase.NewListDeployments(cfg, &MockDeploymentRepository{}, &stubChain{err: errors.New("dial tcp: connection refused")}, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve chain of network anvil")
	})
}

func TestListNetworks(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{
		names: []string{"anvil", "broken", "sepolia"},
		networks: map[string]*config.Network{
			"anvil":   {Name: "anvil", RPCURL: "http://localhost:8545"},
			"sepolia": {Name: "sepolia", RPCURL: "https://sepolia.example.org"},
		},
		errs: map[string]error{
			"broken": errors.New("environment variable BROKEN_RPC_URL is not set"),
		},
	}
	fetcher := stubFetcher{"http://localhost:8545": 31337}

	t.Run("without probing", func(t *testing.T) {
		result, err := usecase.NewListNetworks(resolver, fetcher, discardLogger()).Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)
		require.Len(t, result.Networks, 3)

		assert.Equal(t, "anvil", result.Networks[0].Name)
		assert.Zero(t, result.Networks[0].ChainID)
		assert.Error(t, result.Networks[1].Error)
		assert.NoError(t, result.Networks[2].Error)
	})

	t.Run("probing", func(t *testing.T) {
		result, err := usecase.NewListNetworks(resolver, fetcher, discardLogger()).Run(ctx, usecase.ListNetworksParams{QueryChainIDs: true})
		require.NoError(t, err)

		assert.Equal(t, uint64(31337), result.Networks[0].ChainID)
		assert.Error(t, result.Networks[1].Error)
		assert.ErrorIs(t, result.Networks[2].Error, domain.ErrNotFound)
	})
}
