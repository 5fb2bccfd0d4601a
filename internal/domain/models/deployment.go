package models

import (
	"fmt"
	"strings"
	"time"
)

// DeploymentStatus is the state a deployment was recorded in
type DeploymentStatus string

// DeploymentStatusConfirmed marks a deployment whose receipt showed code at the address
const DeploymentStatusConfirmed DeploymentStatus = "CONFIRMED"

// Deployment represents a recorded contract deployment
type Deployment struct {
	// Core identification
	ID           string `json:"id"` // e.g., "31337/SSB/0x5FbD..."
	ChainID      uint64 `json:"chainId"`
	Network      string `json:"network"`
	ContractName string `json:"contractName"`
	Address      string `json:"address"`

	// Transaction details
	TransactionHash string           `json:"transactionHash"`
	Deployer        string           `json:"deployer"`
	Status          DeploymentStatus `json:"status"`

	// Positional constructor arguments as they were submitted
	ConstructorArgs []string `json:"constructorArgs"`

	// Contract artifact information
	Artifact ArtifactInfo `json:"artifact"`

	CreatedAt time.Time `json:"createdAt"`
}

// ArtifactInfo contains contract artifact information
type ArtifactInfo struct {
	Path         string `json:"path"`         // e.g., "out/SSB.sol/SSB.json"
	SourceName   string `json:"sourceName"`   // e.g., "contracts/SSB.sol"
	BytecodeHash string `json:"bytecodeHash"` // keccak256 of creation bytecode
}

// NewDeploymentID builds the registry key for a deployment
func NewDeploymentID(chainID uint64, contractName, address string) string {
	return fmt.Sprintf("%d/%s/%s", chainID, contractName, strings.ToLower(address))
}

// ShortDeployer returns a truncated deployer address for table output
func (d *Deployment) ShortDeployer() string {
	if len(d.Deployer) <= 14 {
		return d.Deployer
	}
	return d.Deployer[:8] + "..." + d.Deployer[len(d.Deployer)-6:]
}
