package config

// FoundryConfig holds the parts of foundry.toml the deployer reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}

// ProjectConfig represents the ssb.toml project file merged with foundry.toml
type ProjectConfig struct {
	// Artifacts overrides the directory compiled artifacts are read from
	Artifacts string `toml:"artifacts,omitempty"`
	// Build overrides the compile command run before artifact lookup
	Build string `toml:"build,omitempty"`
	// Networks maps network names to RPC URLs, ${VAR} references allowed
	Networks map[string]string `toml:"networks"`
	// Explorers maps network names to block explorer base URLs (browser, not API)
	Explorers map[string]string `toml:"explorers,omitempty"`
}
