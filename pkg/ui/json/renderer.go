// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/inputbox/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderLinks renders the listing as a JSON array
func (r *Renderer) RenderLinks(rows []display.LinkRow) error {
	if rows == nil {
		rows = []display.LinkRow{}
	}
	return r.encoder.Encode(rows)
}

// RenderPlugins renders the plugins as a JSON array
func (r *Renderer) RenderPlugins(rows []display.PluginRow) error {
	if rows == nil {
		rows = []display.PluginRow{}
	}
	return r.encoder.Encode(rows)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
