package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// MockFactoryProvider is a mock implementation of ContractFactoryProvider
type MockFactoryProvider struct {
	mock.Mock
}

func (m *MockFactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ContractFactory), args.Error(1)
}

// MockFactory is a mock implementation of ContractFactory
type MockFactory struct {
	mock.Mock
	contract *models.Contract
}

func (m *MockFactory) Contract() *models.Contract {
	return m.contract
}

func (m *MockFactory) Deploy(ctx context.Context, args ...any) (usecase.DeploymentHandle, error) {
	called := m.Called(append([]any{ctx}, args...)...)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(usecase.DeploymentHandle), called.Error(1)
}

// stubHandle confirms with a fixed address, or blocks until the context ends when block is set
type stubHandle struct {
	tx      common.Hash
	address common.Address
	err     error
	block   bool
}

func (h *stubHandle) TxHash() common.Hash              { return h.tx }
func (h *stubHandle) PredictedAddress() common.Address { return h.address }

func (h *stubHandle) Wait(ctx context.Context) (common.Address, error) {
	if h.block {
		<-ctx.Done()
		return common.Address{}, ctx.Err()
	}
	return h.address, h.err
}

// stubChain is a fixed ChainReader
type stubChain struct {
	chainID uint64
	sender  common.Address
	nonce   uint64
	err     error
}

func (c *stubChain) ChainID(context.Context) (uint64, error) { return c.chainID, c.err }
func (c *stubChain) Sender() (common.Address, error) {
	if c.sender == (common.Address{}) {
		return common.Address{}, domain.ErrNoSigner
	}
	return c.sender, nil
}
func (c *stubChain) PendingNonce(context.Context) (uint64, error) { return c.nonce, c.err }

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}

func (m *MockDeploymentRepository) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	args := m.Called(ctx, chainID, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}
func (m *MockProgressSink) Info(string)      {}
func (m *MockProgressSink) Error(msg string) { m.errors = append(m.errors, msg) }

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

// stubResolver serves a fixed network table
type stubResolver struct {
	names    []string
	networks map[string]*config.Network
	errs     map[string]error
}

func (r *stubResolver) GetNetworks(context.Context) []string { return r.names }

func (r *stubResolver) ResolveNetwork(_ context.Context, name string) (*config.Network, error) {
	if err, ok := r.errs[name]; ok {
		return nil, err
	}
	return r.networks[name], nil
}

// stubFetcher maps RPC URLs to chain IDs
type stubFetcher map[string]uint64

func (f stubFetcher) FetchChainID(_ context.Context, url string) (uint64, error) {
	if id, ok := f[url]; ok {
		return id, nil
	}
	return 0, domain.ErrNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
