package detect

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/paths"
	"github.com/arthur-debert/inputbox/pkg/types"
)

const fileScheme = "file"

// Candidate is the content offered for detection. URIs holds the entries of a
// text/uri-list payload when the clipboard provided one.
type Candidate struct {
	Text string
	URIs []string
}

// FromText builds a Candidate from plain text.
func FromText(text string) Candidate {
	return Candidate{Text: text}
}

// ParseURIList splits a text/uri-list payload into its entries. Blank lines
// and lines starting with # are dropped.
func ParseURIList(payload string) []string {
	var uris []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		uris = append(uris, line)
	}
	return uris
}

// Detect returns the canonical absolute path of the file c refers to. The
// returned path has symbolic links resolved and names a regular file that
// could be opened for reading at the time of the call.
func Detect(fsys types.FS, c Candidate) (string, bool) {
	logger := logging.GetLogger("detect")

	text, ok := candidateText(c)
	if !ok {
		return "", false
	}

	path, ok := CleanReference(text)
	if !ok {
		logger.Trace().Msg("Text is not a path reference")
		return "", false
	}

	resolved, err := resolve(fsys, path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Path does not resolve")
		return "", false
	}

	info, err := fsys.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		logger.Debug().Str("path", resolved).Msg("Not a regular file")
		return "", false
	}

	f, err := fsys.Open(resolved)
	if err != nil {
		logger.Debug().Err(err).Str("path", resolved).Msg("File is not readable")
		return "", false
	}
	_ = f.Close()

	logger.Debug().Str("path", resolved).Msg("Detected file reference")
	return resolved, true
}

// DetectText is Detect for a plain string.
func DetectText(fsys types.FS, text string) (string, bool) {
	return Detect(fsys, FromText(text))
}

func candidateText(c Candidate) (string, bool) {
	var uris []string
	for _, u := range c.URIs {
		u = strings.TrimSpace(u)
		if u == "" || strings.HasPrefix(u, "#") {
			continue
		}
		uris = append(uris, u)
	}

	switch len(uris) {
	case 0:
		return c.Text, true
	case 1:
		return uris[0], true
	default:
		return "", false
	}
}

// CleanReference normalizes text into a filesystem path without touching the
// filesystem. Surrounding whitespace and one pair of matching quotes are
// stripped, local file:// URIs are decoded and a leading ~ is expanded.
func CleanReference(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || unicode.IsControl(r) {
			return "", false
		}
	}

	text = stripQuotes(text)
	if text == "" {
		return "", false
	}

	if hasFileScheme(text) {
		path, ok := fromFileURI(text)
		if !ok {
			return "", false
		}
		text = path
	}

	return paths.ExpandHome(text), true
}

// stripQuotes removes one matching pair of surrounding quotes. Whitespace
// inside the quotes is part of the path.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func hasFileScheme(s string) bool {
	return len(s) > len(fileScheme) && strings.EqualFold(s[:len(fileScheme)+1], fileScheme+":")
}

func fromFileURI(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, fileScheme) {
		return "", false
	}
	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	return u.Path, true
}

func resolve(fsys types.FS, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return fsys.EvalSymlinks(abs)
}
