// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/inputbox/pkg/ui/display"
	"github.com/arthur-debert/inputbox/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderLinks renders the listing as a table. Missing links are highlighted.
func (r *Renderer) RenderLinks(rows []display.LinkRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, styles.Render("MutedItalic", "No links recorded."))
		return err
	}

	data := pterm.TableData{{"Kind", "Status", "Link", "Source", "Created"}}
	for _, row := range rows {
		status := styles.Render("Present", row.Status)
		if row.Missing() {
			status = styles.Render("Missing", row.Status)
		}
		data = append(data, []string{
			styles.Render("LinkKind", row.Kind.String()),
			status,
			styles.Render("FilePath", row.LinkPath),
			row.SourceLabel(),
			styles.Render("Muted", row.CreatedAt.Local().Format("2006-01-02 15:04")),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderPlugins renders the plugins as a table, disabled ones muted
func (r *Renderer) RenderPlugins(rows []display.PluginRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, styles.Render("MutedItalic", "No plugins installed."))
		return err
	}

	data := pterm.TableData{{"Name", "Version", "State", "Hooks", "Description"}}
	for _, row := range rows {
		state := styles.Render("Present", row.State())
		if !row.Enabled {
			state = styles.Render("Muted", row.State())
		}
		data = append(data, []string{
			styles.Render("Bold", row.Name),
			row.Version,
			state,
			fmt.Sprint(row.Hooks),
			row.Description,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Render("Error", "Error: "+err.Error()))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
