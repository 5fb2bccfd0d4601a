package config

import (
	"crypto/ecdsa"
	"time"
)

// ProjectKind identifies the Solidity toolchain a project is built with
type ProjectKind string

const (
	ProjectKindFoundry ProjectKind = "foundry"
	ProjectKindHardhat ProjectKind = "hardhat"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ProjectKind ProjectKind
	DataDir     string

	// Context settings
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration // zero means wait for confirmation indefinitely

	// Build settings
	ArtifactsDir string
	BuildCommand []string
	SkipBuild    bool

	// Signer, nil when no private key is configured
	PrivateKey *ecdsa.PrivateKey

	// Resolved configurations
	ProjectConfig *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}
