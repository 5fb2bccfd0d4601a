package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
)

// NetworkResolver resolves network names to configurations
type NetworkResolver struct {
	projectConfig *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(projectConfig *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{projectConfig: projectConfig}
}

// Names returns the configured network names in sorted order
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.projectConfig.Networks))
	for name := range r.projectConfig.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name or a raw RPC URL to its configuration.
// The chain ID is left at zero; it is read from the RPC on connect.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if isRPCURL(networkName) {
		return &config.Network{
			Name:   "custom",
			RPCURL: networkName,
		}, nil
	}

	raw, exists := r.projectConfig.Networks[networkName]
	if !exists {
		return nil, fmt.Errorf("network '%s' not found in %s [networks] or foundry.toml [rpc_endpoints] (add %s = \"${%s}\")",
			networkName, ProjectFileName, networkName, GenerateEnvVarName(networkName))
	}

	rpcURL, err := ExpandEnvValue(raw)
	if err != nil {
		return nil, err
	}

	return &config.Network{
		Name:        networkName,
		RPCURL:      rpcURL,
		ExplorerURL: r.projectConfig.Explorers[networkName],
	}, nil
}

func isRPCURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// ExplorerURLForChain returns a well-known block explorer for a chain ID
func ExplorerURLForChain(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 84532:
		return "https://sepolia.basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 43114:
		return "https://snowtrace.io"
	case 56:
		return "https://bscscan.com"
	default:
		return ""
	}
}
