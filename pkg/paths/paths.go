package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/inputbox/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for inputbox
	EnvConfigDir = "INPUTBOX_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for inputbox
	EnvStateDir = "INPUTBOX_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for inputbox-specific files
	AppDirName = "inputbox"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// RegistryFileName is the name of the link registry file
	RegistryFileName = "links.toml"

	// LogFileName is the name of the log file
	LogFileName = "inputbox.log"

	// PluginsDirName is the directory under the config dir holding plugins
	PluginsDirName = "plugins"

	// PluginStateFileName records which plugins have been seen
	PluginStateFileName = "plugins.toml"
)

// Paths provides centralized path management for inputbox
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	RegistryPath() string
	LogFilePath() string
	PluginsDir() string
	PluginStatePath() string
	NormalizePath(path string) (string, error)
}

// paths provides centralized path management for inputbox
type paths struct {
	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance, respecting environment overrides.
func New() (Paths, error) {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.xdgConfig, &p.xdgState} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ExpandHome expands a leading ~ or ~/ to the home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ConfigDir returns the XDG config directory for inputbox
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for inputbox
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// RegistryPath returns the path the link registry is persisted to
func (p *paths) RegistryPath() string {
	return filepath.Join(p.xdgState, RegistryFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// PluginsDir returns the directory plugins are discovered in
func (p *paths) PluginsDir() string {
	return filepath.Join(p.xdgConfig, PluginsDirName)
}

// PluginStatePath returns the path of the plugin bookkeeping file
func (p *paths) PluginStatePath() string {
	return filepath.Join(p.xdgState, PluginStateFileName)
}

// NormalizePath expands ~ and returns a cleaned absolute path
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// DefaultLogFilePath returns the log file location without constructing a
// Paths instance. Logging is set up before configuration is loaded.
func DefaultLogFilePath() string {
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		return filepath.Join(ExpandHome(stateDir), LogFileName)
	}
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
