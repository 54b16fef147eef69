// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arthur-debert/inputbox/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderLinks writes one tab-aligned line per link
func (r *Renderer) RenderLinks(rows []display.LinkRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, "No links recorded.")
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KIND\tSTATUS\tLINK\tSOURCE\tCREATED")
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.Kind, row.Status, row.LinkPath, row.SourceLabel(), row.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

// RenderPlugins writes one tab-aligned line per plugin
func (r *Renderer) RenderPlugins(rows []display.PluginRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, "No plugins installed.")
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tVERSION\tSTATE\tHOOKS\tORIGIN")
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", row.Name, row.Version, row.State(), row.Hooks, row.Origin())
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
