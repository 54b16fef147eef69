package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/inputbox/pkg/paths"
)

// MockPaths implements paths.Paths under a single root directory
type MockPaths struct {
	root string
}

// NewMockPaths creates MockPaths with config in root/config and state in root/state
func NewMockPaths(root string) *MockPaths {
	return &MockPaths{root: root}
}

// ConfigDir returns root/config
func (m *MockPaths) ConfigDir() string {
	return filepath.Join(m.root, "config")
}

// StateDir returns root/state
func (m *MockPaths) StateDir() string {
	return filepath.Join(m.root, "state")
}

// ConfigFilePath returns the config file under ConfigDir
func (m *MockPaths) ConfigFilePath() string {
	return filepath.Join(m.ConfigDir(), paths.ConfigFileName)
}

// RegistryPath returns the registry file under StateDir
func (m *MockPaths) RegistryPath() string {
	return filepath.Join(m.StateDir(), paths.RegistryFileName)
}

// LogFilePath returns the log file under StateDir
func (m *MockPaths) LogFilePath() string {
	return filepath.Join(m.StateDir(), paths.LogFileName)
}

// PluginsDir returns root/config/plugins
func (m *MockPaths) PluginsDir() string {
	return filepath.Join(m.ConfigDir(), paths.PluginsDirName)
}

// PluginStatePath returns the plugin state file under StateDir
func (m *MockPaths) PluginStatePath() string {
	return filepath.Join(m.StateDir(), paths.PluginStateFileName)
}

// NormalizePath joins relative paths onto the root
func (m *MockPaths) NormalizePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(m.root, path), nil
}

var _ paths.Paths = (*MockPaths)(nil)
