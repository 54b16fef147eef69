package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as a TOML document
func Generate(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}

// WriteDefaults writes the commented defaults file to path unless a file is
// already there. It reports whether the file was written.
func WriteDefaults(fs types.FS, path string) (bool, error) {
	if _, err := fs.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, defaultConfig, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return true, nil
}
