package plugins

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ManifestFileName is the file that makes a directory a plugin
	ManifestFileName = "plugin.toml"

	// DisabledSuffix marks a plugin directory as switched off
	DisabledSuffix = ".disabled"

	// StopExitCode is the exit status a hook command uses to stop the
	// remaining callbacks of its position
	StopExitCode = 100

	// HookTimeout bounds a single hook command
	HookTimeout = 30 * time.Second
)

// Environment passed to hook commands
const (
	EnvHook      = "INPUTBOX_HOOK"
	EnvPluginDir = "INPUTBOX_PLUGIN_DIR"
)

type manifest struct {
	Metadata
	Hooks []hookSpec `toml:"hooks"`
}

type hookSpec struct {
	Position string   `toml:"position"`
	Priority int      `toml:"priority"`
	Command  []string `toml:"command"`
	Enabled  *bool    `toml:"enabled"`
}

// commandPlugin is a plugin directory whose hooks are external commands
type commandPlugin struct {
	meta  Metadata
	hooks []Callback
}

func (p *commandPlugin) Metadata() Metadata    { return p.meta }
func (p *commandPlugin) Callbacks() []Callback { return p.hooks }

// loadCommandPlugin reads dir/plugin.toml. The plugin name defaults to the
// directory name without DisabledSuffix.
func loadCommandPlugin(fsys types.FS, dir string) (*commandPlugin, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginLoad, "no manifest in %s", dir)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginLoad, "failed to parse %s", path)
	}
	if m.Name == "" {
		m.Name = baseName(filepath.Base(dir))
	}

	p := &commandPlugin{meta: m.Metadata}
	for i, spec := range m.Hooks {
		pos, err := ParsePosition(spec.Position)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPluginLoad, "%s: hook %d", path, i+1)
		}
		if len(spec.Command) == 0 || spec.Command[0] == "" {
			return nil, errors.Newf(errors.ErrPluginLoad, "%s: hook %d has no command", path, i+1)
		}
		p.hooks = append(p.hooks, &commandHook{
			plugin:   m.Name,
			dir:      dir,
			position: pos,
			priority: spec.Priority,
			enabled:  spec.Enabled == nil || *spec.Enabled,
			command:  spec.Command,
		})
	}
	return p, nil
}

// commandHook runs a command with the firing's data as JSON on stdin. Exit
// status 0 continues, StopExitCode stops, anything else is logged and
// treated as 0.
type commandHook struct {
	plugin   string
	dir      string
	position Position
	priority int
	enabled  bool
	command  []string
}

func (h *commandHook) Position() Position { return h.position }
func (h *commandHook) Priority() int      { return h.priority }
func (h *commandHook) Enabled() bool      { return h.enabled }

type hookEvent struct {
	Hook   Position               `json:"hook"`
	Plugin string                 `json:"plugin"`
	Data   map[string]interface{} `json:"data"`
}

func (h *commandHook) Call(ctx *Context) bool {
	logger := ctx.Logger.With().Str("plugin", h.plugin).Strs("command", h.command).Logger()

	payload, err := json.Marshal(hookEvent{Hook: ctx.Position, Plugin: h.plugin, Data: ctx.Data})
	if err != nil {
		logger.Error().Err(err).Msg("Cannot encode hook data")
		return true
	}

	runCtx, cancel := context.WithTimeout(context.Background(), HookTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, h.executable(), h.command[1:]...)
	cmd.Dir = h.dir
	cmd.Env = append(os.Environ(),
		EnvHook+"="+string(ctx.Position),
		EnvPluginDir+"="+h.dir,
	)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if stdout.Len() > 0 {
		logger.Debug().Str("output", stdout.String()).Msg("Hook stdout")
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return true
	case stderrors.As(err, &exitErr) && exitErr.ExitCode() == StopExitCode:
		logger.Debug().Msg("Hook stopped further processing")
		return false
	default:
		logger.Error().Err(err).Str("stderr", stderr.String()).Msg("Hook command failed")
		return true
	}
}

// executable resolves a relative command path against the plugin directory.
// Bare names are looked up on PATH.
func (h *commandHook) executable() string {
	name := h.command[0]
	if filepath.IsAbs(name) || !strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(h.dir, name)
}

// baseName strips DisabledSuffix from a plugin directory name
func baseName(dirName string) string {
	return strings.TrimSuffix(dirName, DisabledSuffix)
}

func isDisabledName(dirName string) bool {
	return strings.HasSuffix(dirName, DisabledSuffix)
}
