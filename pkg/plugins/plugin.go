package plugins

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Position is a point in the application flow where callbacks fire
type Position string

const (
	// OnLaunch fires once a command starts
	OnLaunch Position = "on_launch"
	// OnExit fires when a command finishes, successfully or not
	OnExit Position = "on_exit"
	// OnSubmit fires with the cleaned text before it is linked or copied
	OnSubmit Position = "on_submit"
	// OnLink fires after a link was created and recorded
	OnLink Position = "on_link"
	// OnSubmitted fires after the submission result reached the clipboard
	OnSubmitted Position = "on_submitted"
)

// Positions lists every position in firing order of a typical submission
func Positions() []Position {
	return []Position{OnLaunch, OnSubmit, OnLink, OnSubmitted, OnExit}
}

// ParsePosition validates a position name from a manifest
func ParsePosition(name string) (Position, error) {
	for _, p := range Positions() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown hook position %q", name)
}

// Context is handed to every callback of one firing. Data is shared, so a
// callback sees what earlier ones stored in it.
type Context struct {
	Position Position
	Logger   zerolog.Logger
	Data     map[string]interface{}
}

// Callback is one unit of plugin behaviour. Call returns false to stop the
// remaining callbacks of the same position.
type Callback interface {
	Position() Position
	// Priority orders callbacks of one position, lowest first
	Priority() int
	Call(ctx *Context) bool
}

// Toggler is implemented by callbacks that can switch themselves off
type Toggler interface {
	Enabled() bool
}

// Metadata describes a plugin
type Metadata struct {
	Name        string `toml:"name" json:"name"`
	Version     string `toml:"version" json:"version"`
	Description string `toml:"description" json:"description"`
	Author      string `toml:"author" json:"author"`
}

// Plugin bundles callbacks under a name
type Plugin interface {
	Metadata() Metadata
	Callbacks() []Callback
}

// Initializer is implemented by plugins that need setup before their
// callbacks fire
type Initializer interface {
	Initialize(ctx *Context) error
}

// Shutdowner is implemented by plugins that release resources on exit
type Shutdowner interface {
	Shutdown(ctx *Context)
}

// Hook is a Callback backed by a function
type Hook struct {
	At       Position
	Order    int
	Disabled bool
	Fn       func(ctx *Context) bool
}

func (h *Hook) Position() Position     { return h.At }
func (h *Hook) Priority() int          { return h.Order }
func (h *Hook) Enabled() bool          { return !h.Disabled }
func (h *Hook) Call(ctx *Context) bool { return h.Fn(ctx) }

// Static is a Plugin with a fixed callback list
type Static struct {
	Meta  Metadata
	Hooks []Callback
}

func (s *Static) Metadata() Metadata    { return s.Meta }
func (s *Static) Callbacks() []Callback { return s.Hooks }

func callbackEnabled(cb Callback) bool {
	if t, ok := cb.(Toggler); ok {
		return t.Enabled()
	}
	return true
}
