package config

import (
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/paths"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// Linking holds the file-linking configuration
type Linking struct {
	// Enabled gates automatic linking of submitted file paths
	Enabled bool `koanf:"enabled" toml:"enabled"`
	// TargetDir is the whitelist directory links are created in
	TargetDir string `koanf:"target_dir" toml:"target_dir"`
	// Mode is "hard" or "symbolic"
	Mode string `koanf:"mode" toml:"mode"`
	// MaxSuffix caps the "name (N)" search
	MaxSuffix int `koanf:"max_suffix" toml:"max_suffix"`
}

// Input holds settings for the text submission flow
type Input struct {
	AutoPaste         bool `koanf:"auto_paste" toml:"auto_paste"`
	PreserveClipboard bool `koanf:"preserve_clipboard" toml:"preserve_clipboard"`
	Notify            bool `koanf:"notify" toml:"notify"`
}

// Hotkey holds the global hotkey settings consumed by the GUI front end
type Hotkey struct {
	Enabled  bool   `koanf:"enabled" toml:"enabled"`
	Sequence string `koanf:"sequence" toml:"sequence"`
}

// Logging holds logging settings
type Logging struct {
	Level string `koanf:"level" toml:"level"`
}

// Config is the main configuration structure
type Config struct {
	Linking Linking `koanf:"linking" toml:"linking"`
	Input   Input   `koanf:"input" toml:"input"`
	Hotkey  Hotkey  `koanf:"hotkey" toml:"hotkey"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Default returns the configuration from the embedded defaults only
func Default() *Config {
	cfg, err := load("", false, nil)
	if err != nil {
		// Fallback to minimal config if the embedded file is broken
		return &Config{
			Linking: Linking{Mode: string(types.LinkKindHard), MaxSuffix: 10000},
			Logging: Logging{Level: "warning"},
		}
	}
	return cfg
}

// LinkKind returns the parsed link mode
func (c *Config) LinkKind() (types.LinkKind, error) {
	kind, err := types.ParseLinkKind(c.Linking.Mode)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigValid, "invalid linking.mode")
	}
	return kind, nil
}

// ExpandedTargetDir returns linking.target_dir with ~ expanded
func (c *Config) ExpandedTargetDir() string {
	return paths.ExpandHome(c.Linking.TargetDir)
}

// Validate checks values that cannot be enforced by decoding alone
func (c *Config) Validate() error {
	if _, err := c.LinkKind(); err != nil {
		return err
	}
	if c.Linking.MaxSuffix < 1 {
		return errors.Newf(errors.ErrConfigValid, "linking.max_suffix must be positive, got %d", c.Linking.MaxSuffix)
	}
	if c.Linking.Enabled && c.Linking.TargetDir == "" {
		return errors.New(errors.ErrConfigValid, "linking.target_dir is required when linking is enabled")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid logging.level")
	}
	return nil
}
