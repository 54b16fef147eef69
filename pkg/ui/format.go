package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command output is rendered
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText depending on the output
	FormatAuto Format = iota
	// FormatTerminal is styled output with colors and tables
	FormatTerminal
	// FormatText is plain, escape-free output for pipes and files
	FormatText
	// FormatJSON is machine-readable output
	FormatJSON
)

// formatNames holds the canonical name first, then accepted aliases
var formatNames = map[Format][]string{
	FormatAuto:     {"auto"},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatJSON:     {"json"},
}

// FormatNames lists the canonical --format values, for flag completion
func FormatNames() []string {
	return []string{"auto", "term", "text", "json"}
}

func (f Format) String() string {
	if names, ok := formatNames[f]; ok {
		return names[0]
	}
	return "unknown"
}

// ParseFormat parses a --format value. Matching is case-insensitive and the
// empty string means auto.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatAuto, nil
	}
	for f, names := range formatNames {
		for _, name := range names {
			if name == s {
				return f, nil
			}
		}
	}
	return FormatAuto, fmt.Errorf("unknown format: %s", s)
}

// IsInteractive reports whether f is a terminal a user can answer prompts on
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectFormat resolves FormatAuto for output. NO_COLOR wins over
// CLICOLOR_FORCE, which wins over terminal detection.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return FormatTerminal
	}
	if !IsInteractive(output) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
