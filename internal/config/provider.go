package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
)

const (
	// DataDirName holds local config and the deployment registry
	DataDirName = ".ssb"
	// ProjectFileName is the optional project configuration file
	ProjectFileName = "ssb.toml"
)

// ConfigSet provides the runtime configuration for Wire
var ConfigSet = wire.NewSet(
	Provider,
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	kind := DetectProjectKind(projectRoot)

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ProjectKind:    kind,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		SkipBuild:      v.GetBool("skip_build"),
	}

	projectConfig, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	cfg.ProjectConfig = projectConfig
	cfg.ArtifactsDir = resolveArtifactsDir(projectRoot, kind, projectConfig)
	cfg.BuildCommand = resolveBuildCommand(kind, projectConfig)

	// AutomaticEnv reads SSB_PRIVATE_KEY lazily, so keys from .env are seen here
	if key := v.GetString("private_key"); key != "" {
		privateKey, err := ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		cfg.PrivateKey = privateKey
	}

	if networkName := v.GetString("network"); networkName != "" {
		resolver := NewNetworkResolver(projectConfig)
		network, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// projectMarkers are the files that identify a project root, in lookup order
var projectMarkers = []string{
	ProjectFileName,
	"foundry.toml",
	"hardhat.config.ts",
	"hardhat.config.js",
}

// FindProjectRoot walks up from current directory to find a project marker
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a contracts project (none of %s found)", strings.Join(projectMarkers, ", "))
		}
		dir = parent
	}
}

// DetectProjectKind reports whether the project builds with Foundry or Hardhat.
// Foundry wins when both configurations are present.
func DetectProjectKind(projectRoot string) config.ProjectKind {
	if _, err := os.Stat(filepath.Join(projectRoot, "foundry.toml")); err == nil {
		return config.ProjectKindFoundry
	}
	for _, name := range []string{"hardhat.config.ts", "hardhat.config.js"} {
		if _, err := os.Stat(filepath.Join(projectRoot, name)); err == nil {
			return config.ProjectKindHardhat
		}
	}
	return config.ProjectKindFoundry
}

func resolveArtifactsDir(projectRoot string, kind config.ProjectKind, pc *config.ProjectConfig) string {
	dir := pc.Artifacts
	if dir == "" {
		switch kind {
		case config.ProjectKindHardhat:
			dir = "artifacts"
		default:
			dir = "out"
		}
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectRoot, dir)
}

func resolveBuildCommand(kind config.ProjectKind, pc *config.ProjectConfig) []string {
	if pc.Build != "" {
		return strings.Fields(pc.Build)
	}
	switch kind {
	case config.ProjectKindHardhat:
		return []string{"npx", "hardhat", "compile"}
	default:
		return []string{"forge", "build"}
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("SSB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("skip_build", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
