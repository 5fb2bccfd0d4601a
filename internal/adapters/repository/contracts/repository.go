package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

const maxSuggestions = 3

// compilerVersionSuffix matches the ".0.8.20" Foundry appends when several solc versions build one file
var compilerVersionSuffix = regexp.MustCompile(`\.\d+\.\d+\.\d+$`)

// Repository discovers compiled artifacts in the project's artifacts directory
type Repository struct {
	cfg           *config.RuntimeConfig
	contracts     map[string]*models.Contract   // key: "source:contractName"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	sink          usecase.ProgressSink
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, sink usecase.ProgressSink, log *slog.Logger) *Repository {
	return &Repository{
		cfg:           cfg,
		sink:          sink,
		log:           log.With("component", "ArtifactRepository"),
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
	}
}

// Index compiles the project (unless skipped) and indexes every artifact once
func (r *Repository) Index(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.contracts = make(map[string]*models.Contract)
	r.contractNames = make(map[string][]*models.Contract)

	if !r.cfg.SkipBuild && len(r.cfg.BuildCommand) > 0 {
		if err := r.runBuild(ctx); err != nil {
			return fmt.Errorf("failed to build contracts: %w", err)
		}
	}

	if _, err := os.Stat(r.cfg.ArtifactsDir); os.IsNotExist(err) {
		return fmt.Errorf("artifacts directory %s not found (run `%s` first)",
			r.cfg.ArtifactsDir, strings.Join(r.cfg.BuildCommand, " "))
	}

	err := filepath.Walk(r.cfg.ArtifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		return r.processArtifact(path)
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.indexed = true
	r.log.Debug("indexed artifacts", "dir", r.cfg.ArtifactsDir, "contracts", len(r.contracts))
	return nil
}

// runBuild runs the configured compile command in the project root
func (r *Repository) runBuild(ctx context.Context) error {
	command := strings.Join(r.cfg.BuildCommand, " ")
	r.log.Debug("compiling contracts", "cmd", r.cfg.BuildCommand)
	r.sink.Info(fmt.Sprintf("Compiling contracts with `%s`", command))

	cmd := exec.CommandContext(ctx, r.cfg.BuildCommand[0], r.cfg.BuildCommand[1:]...)
	cmd.Dir = r.cfg.ProjectRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", command, err, string(output))
	}

	return nil
}

// processArtifact parses and indexes a single artifact file
func (r *Repository) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Not every JSON file under the artifacts dir is a contract artifact
		r.log.Debug("skipping unparsable artifact", "path", artifactPath, "error", err)
		return nil
	}

	// Interfaces and abstract contracts carry no creation code
	if !artifact.Bytecode.HasCode() {
		return nil
	}

	sourceName, contractName := artifact.Target()
	if contractName == "" {
		// Foundry without metadata: out/<File>.sol/<Name>[.<solc version>].json
		contractName = strings.TrimSuffix(filepath.Base(artifactPath), ".json")
		contractName = compilerVersionSuffix.ReplaceAllString(contractName, "")
		sourceName = filepath.Base(filepath.Dir(artifactPath))
	}

	format := models.ArtifactFormatFoundry
	if artifact.Format != "" || artifact.ContractName != "" {
		format = models.ArtifactFormatHardhat
	}

	relArtifactPath, err := filepath.Rel(r.cfg.ProjectRoot, artifactPath)
	if err != nil {
		relArtifactPath = artifactPath
	}

	contract := &models.Contract{
		Name:         contractName,
		SourceName:   sourceName,
		ArtifactPath: relArtifactPath,
		Format:       format,
		Artifact:     &artifact,
	}

	key := contract.Key()
	if _, exists := r.contracts[key]; exists {
		// Foundry writes one artifact per compiler version; keep the first
		return nil
	}
	r.contracts[key] = contract
	r.contractNames[contractName] = append(r.contractNames[contractName], contract)

	return nil
}

// GetContract retrieves a contract by name or "source:name" key
func (r *Repository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if err := r.Index(ctx); err != nil {
		return nil, err
	}

	contract, matches := r.lookup(key)
	if contract != nil {
		return contract, nil
	}

	switch len(matches) {
	case 0:
		all, err := r.ListContracts(ctx)
		if err != nil {
			return nil, err
		}
		return nil, domain.ArtifactNotFoundErr{Name: key, Suggestions: suggest(key, all)}
	case 1:
		return matches[0], nil
	default:
		keys := lo.Map(matches, func(c *models.Contract, _ int) string { return c.Key() })
		sort.Strings(keys)
		return nil, fmt.Errorf("multiple artifacts named %s, use one of:\n  - %s", key, strings.Join(keys, "\n  - "))
	}
}

func (r *Repository) lookup(key string) (*models.Contract, []*models.Contract) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if contract, exists := r.contracts[key]; exists {
		return contract, nil
	}
	return nil, r.contractNames[key]
}

// ListContracts returns every indexed contract sorted by key
func (r *Repository) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := r.Index(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := lo.Values(r.contracts)
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].Key() < contracts[j].Key()
	})
	return contracts, nil
}

// suggest returns the contract names closest to a missing one
func suggest(name string, contracts []*models.Contract) []string {
	names := lo.Uniq(lo.Map(contracts, func(c *models.Contract, _ int) string { return c.Name }))
	sort.Strings(names)

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Ensure the repository implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
