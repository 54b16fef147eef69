// Package input implements the text submission flow: clean the entered
// text, link it when it names a file, and place the result on the clipboard.
package input

import (
	"strings"

	"github.com/arthur-debert/inputbox/pkg/clipboard"
	"github.com/arthur-debert/inputbox/pkg/detect"
	"github.com/arthur-debert/inputbox/pkg/linking"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/plugins"
)

// CleanText drops blank lines at the start and end of text. Inner blank lines
// and indentation are kept. Line endings are normalized to \n.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// Linker is the part of linking.Service the submitter needs
type Linker interface {
	TryLink(opts linking.Options, c detect.Candidate) (*linking.LinkedFileReference, error)
}

// Hooks receives the submission events. *plugins.Manager implements it.
type Hooks interface {
	Fire(pos plugins.Position, data map[string]interface{})
}

// Result is what a submission produced
type Result struct {
	// Text is what was (or would be) placed on the clipboard
	Text string
	// Link is set when the text named a file and a link was created
	Link *linking.LinkedFileReference
	// Copied reports whether Text was written to the clipboard
	Copied bool
}

// Submitter runs the submission flow
type Submitter struct {
	clipboard clipboard.Clipboard
	linker    Linker
	opts      linking.Options
	hooks     Hooks
}

// NewSubmitter creates a Submitter. cb may be nil when nothing should be
// copied.
func NewSubmitter(cb clipboard.Clipboard, linker Linker, opts linking.Options) *Submitter {
	return &Submitter{clipboard: cb, linker: linker, opts: opts}
}

// WithHooks makes s fire on_submit, on_link and on_submitted through h
func (s *Submitter) WithHooks(h Hooks) *Submitter {
	s.hooks = h
	return s
}

func (s *Submitter) fire(pos plugins.Position, data map[string]interface{}) {
	if s.hooks != nil {
		s.hooks.Fire(pos, data)
	}
}

// Submit cleans text and, when linking is enabled and the text names a file,
// replaces it with the path of the new link. Text that is empty after
// cleaning is ignored.
func (s *Submitter) Submit(text string) (Result, error) {
	logger := logging.GetLogger("input")

	cleaned := CleanText(text)
	if strings.TrimSpace(cleaned) == "" {
		logger.Debug().Msg("Nothing to submit")
		return Result{}, nil
	}
	logger.Debug().Int("length", len(cleaned)).Msg("Processing text input")
	s.fire(plugins.OnSubmit, map[string]interface{}{"text": cleaned})

	result := Result{Text: cleaned}
	var linkErr error
	if s.linker != nil && s.opts.Enabled {
		ref, err := s.linker.TryLink(s.opts, detect.FromText(cleaned))
		switch {
		case err != nil:
			// The typed text is still copied; the link failure is reported after
			logger.Warn().Err(err).Msg("Linking failed, copying text as entered")
			linkErr = err
		case ref != nil:
			result.Link = ref
			result.Text = ref.LinkPath
			s.fire(plugins.OnLink, LinkEventData(ref))
		}
	}

	if s.clipboard != nil {
		if err := s.clipboard.WriteText(result.Text); err != nil {
			return result, err
		}
		result.Copied = true
	}
	s.fire(plugins.OnSubmitted, map[string]interface{}{
		"text":   result.Text,
		"copied": result.Copied,
		"linked": result.Link != nil,
	})
	return result, linkErr
}

// LinkEventData is the on_link payload for ref
func LinkEventData(ref *linking.LinkedFileReference) map[string]interface{} {
	return map[string]interface{}{
		"source": ref.SourcePath,
		"link":   ref.LinkPath,
		"kind":   string(ref.Kind),
	}
}
