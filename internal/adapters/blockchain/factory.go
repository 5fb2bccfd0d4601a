package blockchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// ErrNoCode is returned when a mined deployment left no code at its address
var ErrNoCode = errors.New("no contract code after deployment")

// ContractFactory deploys one artifact through the client's backend and signer
type ContractFactory struct {
	client   *Client
	contract *models.Contract
	abi      abi.ABI
	bytecode []byte
}

// GetContractFactory resolves an artifact and prepares it for deployment
func (c *Client) GetContractFactory(ctx context.Context, contractName string) (usecase.ContractFactory, error) {
	contract, err := c.artifacts.GetContract(ctx, contractName)
	if err != nil {
		return nil, err
	}
	return NewContractFactory(c, contract)
}

// NewContractFactory validates an artifact's ABI and creation bytecode
func NewContractFactory(client *Client, contract *models.Contract) (*ContractFactory, error) {
	if contract.Artifact == nil || !contract.Artifact.Bytecode.HasCode() {
		return nil, fmt.Errorf("artifact %s has no creation bytecode", contract.Key())
	}
	if !contract.Artifact.Bytecode.IsLinked() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnlinkedBytecode, contract.Key())
	}

	parsed, err := abi.JSON(bytes.NewReader(contract.Artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.Key(), err)
	}

	return &ContractFactory{
		client:   client,
		contract: contract,
		abi:      parsed,
		bytecode: common.FromHex(contract.Artifact.Bytecode.Object),
	}, nil
}

// Contract returns the artifact this factory deploys
func (f *ContractFactory) Contract() *models.Contract {
	return f.contract
}

// Deploy packs the constructor arguments and submits a signed creation transaction.
// Argument count and type mismatches surface here as packing errors.
func (f *ContractFactory) Deploy(ctx context.Context, args ...any) (usecase.DeploymentHandle, error) {
	opts, backend, err := f.client.transactor(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, f.abi, f.bytecode, backend, args...)
	if err != nil {
		return nil, err
	}

	f.client.log.Debug("deployment transaction sent",
		"contract", f.contract.Name,
		"tx", tx.Hash().Hex(),
		"nonce", tx.Nonce(),
		"gas", tx.Gas())

	return &DeploymentHandle{
		backend: backend,
		tx:      tx,
		address: address,
	}, nil
}

// DeploymentHandle tracks a submitted creation transaction
type DeploymentHandle struct {
	backend Backend
	tx      *types.Transaction
	address common.Address
}

// TxHash returns the transaction hash
func (h *DeploymentHandle) TxHash() common.Hash {
	return h.tx.Hash()
}

// PredictedAddress returns the CREATE address derived from the sender and nonce
func (h *DeploymentHandle) PredictedAddress() common.Address {
	return h.address
}

// Wait blocks until the transaction is mined, with no deadline beyond ctx
func (h *DeploymentHandle) Wait(ctx context.Context) (common.Address, error) {
	receipt, err := bind.WaitMined(ctx, h.backend, h.tx)
	if err != nil {
		return common.Address{}, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, fmt.Errorf("transaction %s reverted in block %s", h.tx.Hash().Hex(), receipt.BlockNumber)
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = h.address
	}

	code, err := h.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return common.Address{}, fmt.Errorf("%w: %s", ErrNoCode, address.Hex())
	}

	return address, nil
}
