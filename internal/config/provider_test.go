package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
)

// anvil's first default account
const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindProjectRootFrom(t *testing.T) {
	t.Run("walks up to foundry.toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", "")
		nested := filepath.Join(root, "src", "tokens")
		require.NoError(t, os.MkdirAll(nested, 0755))

		found, err := findProjectRootFrom(nested)
		require.NoError(t, err)
		assert.Equal(t, root, found)
	})

	t.Run("finds hardhat config", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "hardhat.config.js", "module.exports = {}")

		found, err := findProjectRootFrom(root)
		require.NoError(t, err)
		assert.Equal(t, root, found)
	})

	t.Run("fails outside a project", func(t *testing.T) {
		_, err := findProjectRootFrom(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in a contracts project")
	})
}

func TestDetectProjectKind(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  config.ProjectKind
	}{
		{name: "foundry", files: []string{"foundry.toml"}, want: config.ProjectKindFoundry},
		{name: "hardhat js", files: []string{"hardhat.config.js"}, want: config.ProjectKindHardhat},
		{name: "hardhat ts", files: []string{"hardhat.config.ts"}, want: config.ProjectKindHardhat},
		{name: "both prefers foundry", files: []string{"foundry.toml", "hardhat.config.ts"}, want: config.ProjectKindFoundry},
		{name: "ssb.toml only", files: []string{"ssb.toml"}, want: config.ProjectKindFoundry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, root, f, "")
			}
			assert.Equal(t, tt.want, DetectProjectKind(root))
		})
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Run("merges foundry.toml and ssb.toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", `
[profile.default]
src = "src"
out = "build/out"

[rpc_endpoints]
sepolia = "${SEPOLIA_RPC_URL}"
anvil = "http://localhost:8545"

[etherscan]
sepolia = { key = "abc", url = "https://api-sepolia.etherscan.io/api" }
`)
		writeFile(t, root, "ssb.toml", `
build = "forge build --skip test"

[networks]
anvil = "http://127.0.0.1:9545"
base = "https://mainnet.base.org"

[explorers]
base = "https://basescan.org"
`)

		cfg, err := LoadProjectConfig(root)
		require.NoError(t, err)

		assert.Equal(t, "build/out", cfg.Artifacts)
		assert.Equal(t, "forge build --skip test", cfg.Build)
		assert.Equal(t, "${SEPOLIA_RPC_URL}", cfg.Networks["sepolia"], "urls stay raw until resolved")
		assert.Equal(t, "http://127.0.0.1:9545", cfg.Networks["anvil"], "ssb.toml wins")
		assert.Equal(t, "https://mainnet.base.org", cfg.Networks["base"])
		assert.Equal(t, "https://basescan.org", cfg.Explorers["base"])
		assert.NotContains(t, cfg.Explorers, "sepolia", "etherscan urls are API endpoints")
	})

	t.Run("loads .env before resolution", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "ssb.toml", `
[networks]
dotenv = "${SSB_DOTENV_TEST_RPC_URL}"
`)
		writeFile(t, root, ".env", "SSB_DOTENV_TEST_RPC_URL=http://10.0.0.1:8545\n")
		t.Cleanup(func() { os.Unsetenv("SSB_DOTENV_TEST_RPC_URL") })

		cfg, err := LoadProjectConfig(root)
		require.NoError(t, err)

		network, err := NewNetworkResolver(cfg).Resolve("dotenv")
		require.NoError(t, err)
		assert.Equal(t, "http://10.0.0.1:8545", network.RPCURL)
	})

	t.Run("no config files", func(t *testing.T) {
		cfg, err := LoadProjectConfig(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, cfg.Networks)
		assert.Empty(t, cfg.Build)
	})

	t.Run("invalid toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "ssb.toml", "networks = [")

		_, err := LoadProjectConfig(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse ssb.toml")
	})
}

func TestNetworkResolver(t *testing.T) {
	resolver := NewNetworkResolver(&config.ProjectConfig{
		Networks: map[string]string{
			"sepolia": "https://sepolia.example.org",
			"missing": "${SSB_NETWORK_TEST_UNSET}",
			"anvil":   "http://localhost:8545",
		},
		Explorers: map[string]string{
			"sepolia": "https://sepolia.etherscan.io",
		},
	})

	t.Run("named network", func(t *testing.T) {
		network, err := resolver.Resolve("sepolia")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", network.Name)
		assert.Equal(t, "https://sepolia.example.org", network.RPCURL)
		assert.Equal(t, "https://sepolia.etherscan.io", network.ExplorerURL)
		assert.Zero(t, network.ChainID)
	})

	t.Run("raw rpc url", func(t *testing.T) {
		network, err := resolver.Resolve("http://127.0.0.1:8545")
		require.NoError(t, err)
		assert.Equal(t, "custom", network.Name)
		assert.Equal(t, "http://127.0.0.1:8545", network.RPCURL)
	})

	t.Run("unknown network suggests env var", func(t *testing.T) {
		_, err := resolver.Resolve("celo-sepolia")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CELO_SEPOLIA_RPC_URL")
	})

	t.Run("unset env var", func(t *testing.T) {
		_, err := resolver.Resolve("missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SSB_NETWORK_TEST_UNSET")
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"anvil", "missing", "sepolia"}, resolver.Names())
	})
}

func TestProvider(t *testing.T) {
	t.Run("foundry project", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", `
[rpc_endpoints]
anvil = "http://localhost:8545"
`)
		v := SetupViper(root)
		v.Set("network", "anvil")
		v.Set("private_key", testPrivateKey)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, config.ProjectKindFoundry, cfg.ProjectKind)
		assert.Equal(t, filepath.Join(root, ".ssb"), cfg.DataDir)
		assert.Equal(t, filepath.Join(root, "out"), cfg.ArtifactsDir)
		assert.Equal(t, []string{"forge", "build"}, cfg.BuildCommand)
		assert.Equal(t, time.Duration(0), cfg.Timeout, "no confirmation timeout by default")
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "http://localhost:8545", cfg.Network.RPCURL)
		require.NotNil(t, cfg.PrivateKey)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey).Hex())
	})

	t.Run("hardhat project", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "hardhat.config.ts", "export default {}")

		cfg, err := Provider(SetupViper(root))
		require.NoError(t, err)

		assert.Equal(t, config.ProjectKindHardhat, cfg.ProjectKind)
		assert.Equal(t, filepath.Join(root, "artifacts"), cfg.ArtifactsDir)
		assert.Equal(t, []string{"npx", "hardhat", "compile"}, cfg.BuildCommand)
		assert.Nil(t, cfg.Network)
	})

	t.Run("local config file overrides defaults", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", "")
		writeFile(t, root, ".ssb/config.local.json", `{"timeout": "90s", "skip_build": true}`)

		cfg, err := Provider(SetupViper(root))
		require.NoError(t, err)

		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.True(t, cfg.SkipBuild)
	})

	t.Run("invalid private key", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", "")
		v := SetupViper(root)
		v.Set("private_key", "0xnothex")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid private key")
	})

	t.Run("unknown network", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "foundry.toml", "")
		v := SetupViper(root)
		v.Set("network", "nowhere")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve network nowhere")
	})
}
