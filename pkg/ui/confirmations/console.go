// Package confirmations provides console prompts for destructive operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/arthur-debert/inputbox/pkg/ui/styles"
)

// LastCopyMessage is how the last-reference guard is worded to users
const LastCopyMessage = "this is the last copy of this data"

// ConsoleDialog asks yes/no questions on a console
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in and writing
// prompts to out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// ConfirmLastCopy explains that deleting rec destroys the only remaining
// copy of its data and asks whether to go ahead. The default is no.
func (d *ConsoleDialog) ConfirmLastCopy(rec types.LinkRecord) (bool, error) {
	_, _ = fmt.Fprintf(d.out, "%s: %s\n", styles.Render("Warning", rec.LinkPath), LastCopyMessage)
	_, _ = fmt.Fprintf(d.out, "  %s\n", styles.Render("Muted", "original was "+rec.SourcePath))
	return d.Confirm("Delete it anyway?", false)
}

// Confirm prints question with a [y/N] or [Y/n] marker and reads one line.
// An empty answer selects def. End of input counts as an empty answer.
func (d *ConsoleDialog) Confirm(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	_, _ = fmt.Fprintf(d.out, "%s %s: ", question, marker)

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
