package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// Backend is the subset of an Ethereum client needed to deploy and confirm contracts.
// Both *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client connects to the configured network on first use and signs with the configured key
type Client struct {
	cfg       *config.RuntimeConfig
	artifacts usecase.ArtifactRepository
	log       *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	closer  func()
}

// NewClient creates a client that dials cfg.Network lazily
func NewClient(cfg *config.RuntimeConfig, artifacts usecase.ArtifactRepository, log *slog.Logger) *Client {
	return &Client{
		cfg:       cfg,
		artifacts: artifacts,
		log:       log.With("component", "BlockchainClient"),
	}
}

// NewClientWithBackend creates a client bound to an existing backend
func NewClientWithBackend(cfg *config.RuntimeConfig, artifacts usecase.ArtifactRepository, backend Backend, log *slog.Logger) *Client {
	c := NewClient(cfg, artifacts, log)
	c.backend = backend
	return c
}

// connect establishes the connection and verifies the chain ID
func (c *Client) connect(ctx context.Context) (Backend, *big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return c.backend, c.chainID, nil
	}

	if c.backend == nil {
		if c.cfg.Network == nil {
			return nil, nil, fmt.Errorf("%w: pass --network or set SSB_NETWORK", domain.ErrNoNetwork)
		}

		c.log.Debug("connecting", "network", c.cfg.Network.Name, "rpc", c.cfg.Network.RPCURL)
		client, err := ethclient.DialContext(ctx, c.cfg.Network.RPCURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
		}
		c.backend = client
		c.closer = client.Close
	}

	networkChainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if c.cfg.Network != nil {
		if c.cfg.Network.ChainID == 0 {
			c.cfg.Network.ChainID = networkChainID.Uint64()
		} else if c.cfg.Network.ChainID != networkChainID.Uint64() {
			return nil, nil, fmt.Errorf("%w: expected chain %d, got %d",
				domain.ErrNetworkMismatch, c.cfg.Network.ChainID, networkChainID.Uint64())
		}
	}

	c.chainID = networkChainID
	return c.backend, c.chainID, nil
}

// Close releases the RPC connection if this client opened it
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
}

// ChainID returns the chain ID reported by the connected network
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	_, chainID, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

// Sender returns the address of the configured signing key
func (c *Client) Sender() (common.Address, error) {
	if c.cfg.PrivateKey == nil {
		return common.Address{}, fmt.Errorf("%w: set SSB_PRIVATE_KEY", domain.ErrNoSigner)
	}
	return crypto.PubkeyToAddress(c.cfg.PrivateKey.PublicKey), nil
}

// PendingNonce returns the next nonce of the signing account
func (c *Client) PendingNonce(ctx context.Context) (uint64, error) {
	sender, err := c.Sender()
	if err != nil {
		return 0, err
	}
	backend, _, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return backend.PendingNonceAt(ctx, sender)
}

// transactor builds signing options for the connected chain
func (c *Client) transactor(ctx context.Context) (*bind.TransactOpts, Backend, error) {
	if c.cfg.PrivateKey == nil {
		return nil, nil, fmt.Errorf("%w: set SSB_PRIVATE_KEY", domain.ErrNoSigner)
	}

	backend, chainID, err := c.connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(c.cfg.PrivateKey, chainID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	return opts, backend, nil
}

// FetchChainID dials an RPC endpoint and reads its chain ID
func (c *Client) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Ensure the client implements the interfaces
var (
	_ usecase.ChainReader             = (*Client)(nil)
	_ usecase.ChainIDFetcher          = (*Client)(nil)
	_ usecase.ContractFactoryProvider = (*Client)(nil)
)
