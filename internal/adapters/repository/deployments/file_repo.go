package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/ssb-deploy/internal/domain"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/models"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// DeploymentsFile is the registry file inside the data directory
const DeploymentsFile = "deployments.json"

// FileRepository stores the deployments in json files on the system
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	loaded      bool
	deployments map[string]*models.Deployment
	// byAddress maps chain ID and lowercased address to a deployment ID
	byAddress map[uint64]map[string]string
}

// NewFileRepository creates a registry rooted at the project's data directory
func NewFileRepository(cfg *config.RuntimeConfig) *FileRepository {
	return &FileRepository{
		dataDir:     cfg.DataDir,
		deployments: make(map[string]*models.Deployment),
		byAddress:   make(map[uint64]map[string]string),
	}
}

// ensureLoaded reads the registry on first access; callers hold the write lock
func (m *FileRepository) ensureLoaded() error {
	if m.loaded {
		return nil
	}

	if err := m.loadFile(DeploymentsFile, &m.deployments); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load deployments: %w", err)
	}
	if m.deployments == nil {
		m.deployments = make(map[string]*models.Deployment)
	}

	m.rebuildLookups()
	m.loaded = true
	return nil
}

// loadFile loads a JSON file from the data directory
func (m *FileRepository) loadFile(filename string, v any) error {
	data, err := os.ReadFile(filepath.Join(m.dataDir, filename))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// save writes the registry file
func (m *FileRepository) save() error {
	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", m.dataDir, err)
	}

	if err := m.saveFile(DeploymentsFile, m.deployments); err != nil {
		return fmt.Errorf("failed to save deployments: %w", err)
	}

	return nil
}

// saveFile saves data to a JSON file in the data directory
func (m *FileRepository) saveFile(filename string, v any) error {
	path := filepath.Join(m.dataDir, filename)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}

// rebuildLookups rebuilds the address index from the loaded data
func (m *FileRepository) rebuildLookups() {
	m.byAddress = make(map[uint64]map[string]string)
	for id, dep := range m.deployments {
		m.index(id, dep)
	}
}

func (m *FileRepository) index(id string, dep *models.Deployment) {
	if m.byAddress[dep.ChainID] == nil {
		m.byAddress[dep.ChainID] = make(map[string]string)
	}
	m.byAddress[dep.ChainID][strings.ToLower(dep.Address)] = id
}

// GetDeploymentByAddress retrieves a deployment by chain ID and address
func (m *FileRepository) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureLoaded(); err != nil {
		return nil, err
	}

	id, exists := m.byAddress[chainID][strings.ToLower(address)]
	if !exists {
		return nil, fmt.Errorf("deployment at address %s not found on chain %d: %w", address, chainID, domain.ErrNotFound)
	}

	clone := *m.deployments[id]
	return &clone, nil
}

// ListDeployments retrieves deployments matching the filter
func (m *FileRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureLoaded(); err != nil {
		return nil, err
	}

	matching := lo.Filter(lo.Values(m.deployments), func(dep *models.Deployment, _ int) bool {
		if filter.ChainID != 0 && dep.ChainID != filter.ChainID {
			return false
		}
		if filter.ContractName != "" && dep.ContractName != filter.ContractName {
			return false
		}
		return true
	})

	return lo.Map(matching, func(dep *models.Deployment, _ int) *models.Deployment {
		clone := *dep
		return &clone
	}), nil
}

// SaveDeployment saves or updates a deployment
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureLoaded(); err != nil {
		return err
	}

	if deployment.ID == "" {
		deployment.ID = models.NewDeploymentID(deployment.ChainID, deployment.ContractName, deployment.Address)
	}

	// A chain reset reuses addresses, so the new record replaces the old one
	if oldID, exists := m.byAddress[deployment.ChainID][strings.ToLower(deployment.Address)]; exists && oldID != deployment.ID {
		delete(m.deployments, oldID)
	}

	clone := *deployment
	m.deployments[deployment.ID] = &clone
	m.index(deployment.ID, &clone)

	return m.save()
}

// Ensure the repository implements the interface
var _ usecase.DeploymentRepository = (*FileRepository)(nil)
