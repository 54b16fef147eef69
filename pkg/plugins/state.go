package plugins

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// state is what survives between runs: the plugin directories seen so far
// and the in-process plugins the user switched off
type state struct {
	Known    []string `toml:"known"`
	Disabled []string `toml:"disabled"`
}

// loadState reads the state file. seen is false when no scan was ever
// recorded.
func loadState(fsys types.FS, path string) (st state, seen bool, err error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state{}, false, nil
		}
		return state{}, false, errors.Wrapf(err, errors.ErrPluginState, "failed to read plugin state %s", path)
	}
	if err := toml.Unmarshal(data, &st); err != nil {
		return state{}, false, errors.Wrapf(err, errors.ErrPluginState, "failed to parse plugin state %s", path)
	}
	return st, true, nil
}

func saveState(fsys types.FS, path string, st state) error {
	slices.Sort(st.Known)
	st.Known = slices.Compact(st.Known)
	slices.Sort(st.Disabled)
	st.Disabled = slices.Compact(st.Disabled)

	data, err := toml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, errors.ErrPluginState, "failed to encode plugin state")
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPluginState, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFileSync(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPluginState, "failed to write plugin state %s", path)
	}
	return nil
}
