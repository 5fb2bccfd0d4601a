package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PredictAddressResult holds the address the next deployment from the signer will land at
type PredictAddressResult struct {
	ChainID uint64
	Sender  common.Address
	Nonce   uint64
	Address common.Address
}

// PredictAddress computes the CREATE address of the signer's next transaction
type PredictAddress struct {
	chain ChainReader
}

// NewPredictAddress creates a new PredictAddress use case
func NewPredictAddress(chain ChainReader) *PredictAddress {
	return &PredictAddress{chain: chain}
}

// Run executes the use case
func (uc *PredictAddress) Run(ctx context.Context) (*PredictAddressResult, error) {
	sender, err := uc.chain.Sender()
	if err != nil {
		return nil, err
	}

	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	nonce, err := uc.chain.PendingNonce(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce for %s: %w", sender.Hex(), err)
	}

	return &PredictAddressResult{
		ChainID: chainID,
		Sender:  sender,
		Nonce:   nonce,
		Address: crypto.CreateAddress(sender, nonce),
	}, nil
}
