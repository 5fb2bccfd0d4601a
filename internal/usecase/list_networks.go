package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const chainIDTimeout = 5 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// QueryChainIDs reads each network's chain ID from its RPC endpoint
	QueryChainIDs bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	fetcher  ChainIDFetcher
	log      *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, fetcher ChainIDFetcher, log *slog.Logger) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		fetcher:  fetcher,
		log:      log.With("component", "ListNetworks"),
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, len(networkNames))
	var wg sync.WaitGroup
	for i, name := range networkNames {
		networks[i].Name = name

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			networks[i].Error = err
			continue
		}
		networks[i].RPCURL = info.RPCURL
		networks[i].ChainID = info.ChainID

		if !params.QueryChainIDs || uc.fetcher == nil {
			continue
		}

		wg.Add(1)
		go func(status *NetworkStatus) {
			defer wg.Done()
			queryCtx, cancel := context.WithTimeout(ctx, chainIDTimeout)
			defer cancel()

			chainID, err := uc.fetcher.FetchChainID(queryCtx, status.RPCURL)
			if err != nil {
				uc.log.Debug("chain id query failed", "network", status.Name, "error", err)
				status.Error = err
				return
			}
			status.ChainID = chainID
		}(&networks[i])
	}
	wg.Wait()

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
