package types

import (
	"fmt"
	"strings"
	"time"
)

// LinkKind is the kind of filesystem link the linking subsystem creates.
type LinkKind string

const (
	// LinkKindHard is a second directory entry for the same file data.
	LinkKindHard LinkKind = "hard"

	// LinkKindSymbolic is a directory entry storing the path of the source.
	LinkKindSymbolic LinkKind = "symbolic"
)

// ParseLinkKind parses a configuration or flag value into a LinkKind.
// "symlink" and "soft" are accepted as aliases for symbolic links.
func ParseLinkKind(s string) (LinkKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard", "hardlink":
		return LinkKindHard, nil
	case "symbolic", "symlink", "soft":
		return LinkKindSymbolic, nil
	default:
		return "", fmt.Errorf("unknown link kind %q (want hard or symbolic)", s)
	}
}

// String returns the literal tag the kind is persisted as
func (k LinkKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds
func (k LinkKind) Valid() bool {
	return k == LinkKindHard || k == LinkKindSymbolic
}

// LinkRecord is the registry entry for one link created by inputbox.
// Records are immutable once created.
type LinkRecord struct {
	// SourcePath is the absolute path of the original file at creation time
	SourcePath string `toml:"source" json:"source"`

	// LinkPath is the absolute path of the link inside the target directory
	LinkPath string `toml:"link" json:"link"`

	// Kind is the link kind that was created
	Kind LinkKind `toml:"kind" json:"kind"`

	// CreatedAt is when the link was created
	CreatedAt time.Time `toml:"created_at" json:"createdAt"`
}
