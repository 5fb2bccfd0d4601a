package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
)

// LoadProjectConfig loads .env files, ssb.toml and foundry.toml from the project root.
// Both TOML files are optional; ssb.toml entries win over foundry.toml ones.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	cfg := &config.ProjectConfig{
		Networks:  make(map[string]string),
		Explorers: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); err == nil {
		var foundry config.FoundryConfig
		if _, err := toml.DecodeFile(foundryPath, &foundry); err != nil {
			return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
		}
		for name, url := range foundry.RpcEndpoints {
			cfg.Networks[name] = url
		}
		if profile, ok := foundry.Profile["default"]; ok && profile.OutPath != "" {
			cfg.Artifacts = profile.OutPath
		}
	}

	projectPath := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(projectPath); err == nil {
		var project config.ProjectConfig
		if _, err := toml.DecodeFile(projectPath, &project); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
		}
		if project.Artifacts != "" {
			cfg.Artifacts = project.Artifacts
		}
		cfg.Build = project.Build
		for name, url := range project.Networks {
			cfg.Networks[name] = url
		}
		for name, url := range project.Explorers {
			cfg.Explorers[name] = url
		}
	}

	// Network URLs stay raw until resolved so an unset variable only
	// breaks the network that needs it
	for name, raw := range cfg.Explorers {
		cfg.Explorers[name] = os.ExpandEnv(raw)
	}

	return cfg, nil
}
