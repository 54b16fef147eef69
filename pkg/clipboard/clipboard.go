// Package clipboard reads and writes the system clipboard as plain text.
package clipboard

import (
	"sync"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/atotto/clipboard"
)

// Clipboard is the text clipboard used by the submit and link flows
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type system struct{}

// NewSystem returns the desktop clipboard. On Linux this needs xclip, xsel or
// wl-clipboard installed.
func NewSystem() Clipboard {
	return system{}
}

// Available reports whether a clipboard backend was found
func Available() bool {
	return !clipboard.Unsupported
}

func (system) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrClipboard, "failed to read clipboard")
	}
	return text, nil
}

func (system) WriteText(text string) error {
	logger := logging.GetLogger("clipboard")

	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "failed to write clipboard")
	}
	logger.Debug().Int("length", len(text)).Msg("Clipboard written")
	return nil
}

// Memory is an in-process Clipboard, used when no desktop is available and
// in tests
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a Memory clipboard holding text
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
