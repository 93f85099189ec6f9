package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/mission-control)
}

// NewManager creates a new Manager.
func NewManager(dataDir string) *Manager {
	return &Manager{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(dataDir, globalConfDir string) *Manager {
	return &Manager{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// GetDataDirConfigInfo returns information about the data-dir config file.
func (m *Manager) GetDataDirConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(domain.DataDirConfigPath(m.dataDir))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitDataDirConfig creates the data-dir config file from the default template.
func (m *Manager) InitDataDirConfig() error {
	if err := os.MkdirAll(m.dataDir, 0o750); err != nil {
		return err
	}
	return m.initConfig(domain.DataDirConfigPath(m.dataDir))
}

// InitGlobalConfig creates the global config file from the default template.
func (m *Manager) InitGlobalConfig() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// initConfig creates a config file with default template.
func (m *Manager) initConfig(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	return os.WriteFile(path, []byte(domain.RenderConfigTemplate()), 0o600)
}
