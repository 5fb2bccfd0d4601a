package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// ConstructorArgs are the positional constructor arguments of the SSB contract:
//
//	constructor(string name, string symbol, address payable beneficiary, address payable royaltyReceiver)
type ConstructorArgs struct {
	Name            string
	Symbol          string
	Beneficiary     common.Address
	RoyaltyReceiver common.Address
}

// Values returns the arguments in constructor order.
func (a ConstructorArgs) Values() []any {
	return []any{a.Name, a.Symbol, a.Beneficiary, a.RoyaltyReceiver}
}

// Strings returns the arguments in constructor order, formatted for records.
func (a ConstructorArgs) Strings() []string {
	return []string{a.Name, a.Symbol, a.Beneficiary.Hex(), a.RoyaltyReceiver.Hex()}
}

// SSBArtifact is the contract name the deploy command resolves.
const SSBArtifact = "SSB"

// SSBConstructorArgs returns the fixed arguments the SSB contract is deployed with.
// Beneficiary and royalty receiver currently share one address.
func SSBConstructorArgs() ConstructorArgs {
	return ConstructorArgs{
		Name:            "SSB Gang",
		Symbol:          "SSB",
		Beneficiary:     common.HexToAddress("0x76cBbaF24a9b9008E534399167b658Ea57F1c750"),
		RoyaltyReceiver: common.HexToAddress("0x76cBbaF24a9b9008E534399167b658Ea57F1c750"),
	}
}

// DeploymentFilter filters recorded deployments
type DeploymentFilter struct {
	ChainID      uint64
	ContractName string
}

// LocalChainIDs are chains that never need a broadcast confirmation
var LocalChainIDs = map[uint64]bool{
	31337: true, // anvil, hardhat
	1337:  true, // ganache, geth --dev, simulated backend
}
