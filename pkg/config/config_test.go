package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/testutil"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Linking.Enabled)
	assert.Equal(t, "~/Sandbox", cfg.Linking.TargetDir)
	assert.Equal(t, "hard", cfg.Linking.Mode)
	assert.Equal(t, 10000, cfg.Linking.MaxSuffix)
	assert.True(t, cfg.Input.AutoPaste)
	assert.True(t, cfg.Input.PreserveClipboard)
	assert.False(t, cfg.Input.Notify)
	assert.True(t, cfg.Hotkey.Enabled)
	assert.Equal(t, "Ctrl+Q", cfg.Hotkey.Sequence)
	assert.Equal(t, "warning", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfiguration(t *testing.T) {
	t.Run("missing_user_file_uses_defaults", func(t *testing.T) {
		cfg, err := LoadConfiguration(filepath.Join(t.TempDir(), "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, "hard", cfg.Linking.Mode)
	})

	t.Run("user_file_overrides_defaults", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configFile, []byte(`
[linking]
enabled = true
target_dir = "/tmp/wl"
mode = "symbolic"
`), 0644))

		cfg, err := LoadConfiguration(configFile)
		require.NoError(t, err)

		assert.True(t, cfg.Linking.Enabled)
		assert.Equal(t, "/tmp/wl", cfg.Linking.TargetDir)
		assert.Equal(t, "symbolic", cfg.Linking.Mode)
		// untouched keys keep their defaults
		assert.Equal(t, 10000, cfg.Linking.MaxSuffix)
		assert.Equal(t, "Ctrl+Q", cfg.Hotkey.Sequence)
	})

	t.Run("env_overrides_user_file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configFile, []byte("[linking]\nmode = \"hard\"\n"), 0644))

		t.Setenv("INPUTBOX_LINKING_MODE", "symbolic")
		t.Setenv("INPUTBOX_LINKING_TARGET_DIR", "/env/wl")
		t.Setenv("INPUTBOX_LINKING_MAX_SUFFIX", "5")
		t.Setenv("INPUTBOX_INPUT_NOTIFY", "true")

		cfg, err := LoadConfiguration(configFile)
		require.NoError(t, err)

		assert.Equal(t, "symbolic", cfg.Linking.Mode)
		assert.Equal(t, "/env/wl", cfg.Linking.TargetDir)
		assert.Equal(t, 5, cfg.Linking.MaxSuffix)
		assert.True(t, cfg.Input.Notify)
	})

	t.Run("overrides_win_over_env", func(t *testing.T) {
		t.Setenv("INPUTBOX_LINKING_MODE", "hard")

		cfg, err := LoadConfigurationWithOverrides(filepath.Join(t.TempDir(), "config.toml"), map[string]interface{}{
			"linking.mode":       "symbolic",
			"linking.enabled":    true,
			"linking.target_dir": "/flag/wl",
		})
		require.NoError(t, err)

		assert.Equal(t, "symbolic", cfg.Linking.Mode)
		assert.True(t, cfg.Linking.Enabled)
		assert.Equal(t, "/flag/wl", cfg.Linking.TargetDir)
	})

	t.Run("malformed_file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configFile, []byte("[linking\nmode ="), 0644))

		_, err := LoadConfiguration(configFile)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_mode", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configFile, []byte("[linking]\nmode = \"copy\"\n"), 0644))

		_, err := LoadConfiguration(configFile)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad mode", func(c *Config) { c.Linking.Mode = "junction" }, true},
		{"zero max suffix", func(c *Config) { c.Linking.MaxSuffix = 0 }, true},
		{"enabled without target", func(c *Config) { c.Linking.Enabled = true; c.Linking.TargetDir = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"symlink alias", func(c *Config) { c.Linking.Mode = "symlink" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinkKind(t *testing.T) {
	cfg := Default()
	kind, err := cfg.LinkKind()
	require.NoError(t, err)
	assert.Equal(t, types.LinkKindHard, kind)

	cfg.Linking.Mode = "symbolic"
	kind, err = cfg.LinkKind()
	require.NoError(t, err)
	assert.Equal(t, types.LinkKindSymbolic, kind)
}

func TestExpandedTargetDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := Default()
	assert.Equal(t, filepath.Join(home, "Sandbox"), cfg.ExpandedTargetDir())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "linking.target_dir", envKey("INPUTBOX_LINKING_TARGET_DIR"))
	assert.Equal(t, "logging.level", envKey("INPUTBOX_LOGGING_LEVEL"))
	assert.Equal(t, "debug", envKey("INPUTBOX_DEBUG"))
}

func TestGenerate(t *testing.T) {
	cfg := Default()
	cfg.Linking.TargetDir = "/tmp/wl"

	content, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "[linking]")
	assert.Contains(t, content, "/tmp/wl")

	var roundTrip Config
	require.NoError(t, toml.Unmarshal([]byte(content), &roundTrip))
	assert.Equal(t, *cfg, roundTrip)
}

func TestWriteDefaults(t *testing.T) {
	fs := testutil.NewTestFS()
	path := "/home/u/.config/inputbox/config.toml"

	written, err := WriteDefaults(fs, path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultsContent(), string(data))

	// A second call leaves the user's file alone
	require.NoError(t, fs.WriteFile(path, []byte("[linking]\n"), 0644))
	written, err = WriteDefaults(fs, path)
	require.NoError(t, err)
	assert.False(t, written)

	data, err = fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[linking]\n", string(data))
}
