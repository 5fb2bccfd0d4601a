package config

import (
	"context"

	"github.com/trebuchet-org/ssb-deploy/internal/config"
	domainconfig "github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// NetworkResolverAdapter adapts the config.NetworkResolver to the usecase.NetworkResolver interface
type NetworkResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewNetworkResolverAdapter creates a new adapter over the project's network table
func NewNetworkResolverAdapter(cfg *domainconfig.RuntimeConfig) *NetworkResolverAdapter {
	projectConfig := cfg.ProjectConfig
	if projectConfig == nil {
		projectConfig = &domainconfig.ProjectConfig{}
	}
	return &NetworkResolverAdapter{
		resolver: config.NewNetworkResolver(projectConfig),
	}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	// The underlying resolver doesn't use context, but we accept it for interface compatibility
	return a.resolver.Names()
}

// ResolveNetwork resolves a network name to its configuration
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domainconfig.Network, error) {
	network, err := a.resolver.Resolve(networkName)
	if err != nil {
		return nil, err
	}
	if network.ExplorerURL == "" && network.ChainID != 0 {
		network.ExplorerURL = config.ExplorerURLForChain(network.ChainID)
	}
	return network, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
