package plugins

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/rs/zerolog"
)

// Info describes a loaded plugin for listings
type Info struct {
	Metadata
	Enabled bool
	// Dir is the plugin directory, empty for in-process plugins
	Dir   string
	Hooks int
}

type entry struct {
	plugin Plugin
	// dirName is the directory name under the plugins dir, empty for
	// registered plugins
	dirName string
	enabled bool
}

func (e *entry) name() string {
	return e.plugin.Metadata().Name
}

func (e *entry) matches(name string) bool {
	return e.name() == name || (e.dirName != "" && baseName(e.dirName) == name)
}

// Manager loads plugins and fires their callbacks. A nil *Manager fires
// nothing.
type Manager struct {
	fs        types.FS
	dir       string
	statePath string
	logger    zerolog.Logger

	registered []*entry
	entries    []*entry
	callbacks  map[Position][]Callback
	state      state
}

// NewManager creates a Manager discovering plugins in dir and keeping its
// bookkeeping in statePath
func NewManager(fsys types.FS, dir, statePath string) *Manager {
	return &Manager{
		fs:        fsys,
		dir:       dir,
		statePath: statePath,
		logger:    logging.GetLogger("plugins"),
		callbacks: map[Position][]Callback{},
	}
}

// Register adds an in-process plugin. It takes part from the next Load.
func (m *Manager) Register(p Plugin) {
	m.registered = append(m.registered, &entry{plugin: p, enabled: true})
}

// Load discovers the plugin directories and rebuilds the callback table.
// Directories not seen by an earlier Load are disabled first. A missing
// plugins dir yields only the registered plugins.
func (m *Manager) Load() error {
	st, seen, err := loadState(m.fs, m.statePath)
	if err != nil {
		return err
	}
	m.state = st

	m.entries = m.entries[:0]
	for _, e := range m.registered {
		e.enabled = !slices.Contains(st.Disabled, e.name())
		m.entries = append(m.entries, e)
	}

	dirNames, err := m.scan()
	if err != nil {
		return err
	}

	known := make([]string, 0, len(dirNames))
	for _, dirName := range dirNames {
		base := baseName(dirName)

		if seen && !isDisabledName(dirName) && !slices.Contains(st.Known, base) {
			disabled := base + DisabledSuffix
			if err := m.fs.Rename(filepath.Join(m.dir, dirName), filepath.Join(m.dir, disabled)); err != nil {
				// Left unknown so the next Load retries
				m.logger.Error().Err(err).Str("plugin", base).Msg("Failed to auto-disable new plugin")
				continue
			}
			m.logger.Info().Str("plugin", base).Msg("Auto-disabled new plugin")
			dirName = disabled
		}
		known = append(known, base)

		p, err := loadCommandPlugin(m.fs, filepath.Join(m.dir, dirName))
		if err != nil {
			m.logger.Error().Err(err).Str("plugin", base).Msg("Failed to load plugin")
			continue
		}
		m.entries = append(m.entries, &entry{plugin: p, dirName: dirName, enabled: !isDisabledName(dirName)})
		m.logger.Debug().Str("plugin", p.meta.Name).Bool("enabled", !isDisabledName(dirName)).Msg("Loaded plugin")
	}

	m.state.Known = known
	if err := saveState(m.fs, m.statePath, m.state); err != nil {
		return err
	}

	m.rebuild()
	m.logger.Debug().Int("plugins", len(m.entries)).Msg("Plugins loaded")
	return nil
}

// scan lists plugin directory names, sorted
func (m *Manager) scan() ([]string, error) {
	if _, err := m.fs.Stat(m.dir); err != nil {
		m.logger.Debug().Str("dir", m.dir).Msg("No plugins directory")
		return nil, nil
	}
	dirEntries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginLoad, "cannot read plugins directory %s", m.dir)
	}

	var names []string
	for _, de := range dirEntries {
		if !de.IsDir() || strings.HasPrefix(de.Name(), "_") || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		names = append(names, de.Name())
	}
	slices.Sort(names)
	return names, nil
}

// rebuild collects the callbacks of enabled plugins, ordered by priority.
// Equal priorities keep plugin order.
func (m *Manager) rebuild() {
	m.callbacks = map[Position][]Callback{}
	for _, e := range m.entries {
		if !e.enabled {
			continue
		}
		for _, cb := range e.plugin.Callbacks() {
			if callbackEnabled(cb) {
				m.callbacks[cb.Position()] = append(m.callbacks[cb.Position()], cb)
			}
		}
	}
	for _, cbs := range m.callbacks {
		slices.SortStableFunc(cbs, func(a, b Callback) int {
			return cmp.Compare(a.Priority(), b.Priority())
		})
	}
}

func (m *Manager) newContext(pos Position, data map[string]interface{}) *Context {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Context{
		Position: pos,
		Logger:   logging.WithFields(map[string]interface{}{"component": "plugins", "hook": string(pos)}),
		Data:     data,
	}
}

// Fire runs the callbacks registered for pos until one returns false
func (m *Manager) Fire(pos Position, data map[string]interface{}) {
	if m == nil {
		return
	}
	cbs := m.callbacks[pos]
	if len(cbs) == 0 {
		return
	}

	ctx := m.newContext(pos, data)
	ctx.Logger.Debug().Int("callbacks", len(cbs)).Msg("Firing hook")
	m.run(ctx, cbs)
}

func (m *Manager) run(ctx *Context, cbs []Callback) {
	for _, cb := range cbs {
		if !callbackEnabled(cb) {
			continue
		}
		if !m.call(ctx, cb) {
			ctx.Logger.Debug().Msg("Callback stopped further processing")
			return
		}
	}
}

// call runs one callback. A panicking callback is logged and does not stop
// the others.
func (m *Manager) call(ctx *Context, cb Callback) (proceed bool) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logger.Error().Interface("panic", r).Msg("Callback failed")
			proceed = true
		}
	}()
	return cb.Call(ctx)
}

// Initialize prepares every enabled plugin that needs it
func (m *Manager) Initialize() {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if e.enabled {
			m.initialize(e)
		}
	}
}

func (m *Manager) initialize(e *entry) bool {
	initializer, ok := e.plugin.(Initializer)
	if !ok {
		return true
	}
	if err := initializer.Initialize(m.newContext(OnLaunch, nil)); err != nil {
		m.logger.Warn().Err(err).Str("plugin", e.name()).Msg("Plugin initialization failed")
		return false
	}
	return true
}

// Shutdown lets every plugin release its resources
func (m *Manager) Shutdown() {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		m.shutdown(e)
	}
}

func (m *Manager) shutdown(e *entry) {
	if s, ok := e.plugin.(Shutdowner); ok {
		s.Shutdown(m.newContext(OnExit, nil))
	}
}

// SetEnabled switches the plugin called name on or off and persists the
// choice. Enabling runs the plugin's launch callbacks and disabling runs its
// exit callbacks.
func (m *Manager) SetEnabled(name string, enabled bool) error {
	e := m.find(name)
	if e == nil {
		return errors.Newf(errors.ErrNotFound, "no plugin named %s", name)
	}
	if e.enabled == enabled {
		return nil
	}

	if e.dirName != "" {
		want := baseName(e.dirName)
		if !enabled {
			want += DisabledSuffix
		}
		if err := m.fs.Rename(filepath.Join(m.dir, e.dirName), filepath.Join(m.dir, want)); err != nil {
			return errors.Wrapf(err, errors.ErrPluginState, "cannot rename plugin %s", name)
		}
		e.dirName = want
	} else {
		if enabled {
			m.state.Disabled = slices.DeleteFunc(m.state.Disabled, func(n string) bool { return n == e.name() })
		} else {
			m.state.Disabled = append(m.state.Disabled, e.name())
		}
		if err := saveState(m.fs, m.statePath, m.state); err != nil {
			return err
		}
	}

	e.enabled = enabled
	m.rebuild()
	m.logger.Info().Str("plugin", e.name()).Bool("enabled", enabled).Msg("Plugin state changed")

	if enabled {
		if m.initialize(e) {
			m.run(m.newContext(OnLaunch, nil), pluginCallbacks(e.plugin, OnLaunch))
		}
	} else {
		m.run(m.newContext(OnExit, nil), pluginCallbacks(e.plugin, OnExit))
		m.shutdown(e)
	}
	return nil
}

func pluginCallbacks(p Plugin, pos Position) []Callback {
	var cbs []Callback
	for _, cb := range p.Callbacks() {
		if cb.Position() == pos {
			cbs = append(cbs, cb)
		}
	}
	slices.SortStableFunc(cbs, func(a, b Callback) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return cbs
}

func (m *Manager) find(name string) *entry {
	for _, e := range m.entries {
		if e.matches(name) {
			return e
		}
	}
	return nil
}

// Plugins describes the loaded plugins, in-process ones first
func (m *Manager) Plugins() []Info {
	if m == nil {
		return nil
	}
	infos := make([]Info, 0, len(m.entries))
	for _, e := range m.entries {
		info := Info{Metadata: e.plugin.Metadata(), Enabled: e.enabled, Hooks: len(e.plugin.Callbacks())}
		if e.dirName != "" {
			info.Dir = filepath.Join(m.dir, e.dirName)
		}
		infos = append(infos, info)
	}
	return infos
}
