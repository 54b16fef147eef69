// Package display holds the presentation models shared by the renderers.
package display

import (
	"time"

	"github.com/arthur-debert/inputbox/pkg/types"
)

// Status values shown for a link
const (
	StatusPresent = "present"
	StatusMissing = "missing"
)

// LinkRow is one entry of the link listing
type LinkRow struct {
	Kind       types.LinkKind `json:"kind"`
	Status     string         `json:"status"`
	LinkPath   string         `json:"link"`
	SourcePath string         `json:"source"`
	Target     string         `json:"target,omitempty"` // current target of a symbolic link
	CreatedAt  time.Time      `json:"createdAt"`
}

// NewLinkRow builds a row for rec. present reports whether the link entry
// still exists on disk.
func NewLinkRow(rec types.LinkRecord, present bool) LinkRow {
	status := StatusMissing
	if present {
		status = StatusPresent
	}
	return LinkRow{
		Kind:       rec.Kind,
		Status:     status,
		LinkPath:   rec.LinkPath,
		SourcePath: rec.SourcePath,
		CreatedAt:  rec.CreatedAt,
	}
}

// SourceLabel is the source path, followed by the symbolic link's current
// target when that has drifted from the recorded source
func (r LinkRow) SourceLabel() string {
	if r.Target == "" || r.Target == r.SourcePath {
		return r.SourcePath
	}
	return r.SourcePath + " -> " + r.Target
}

// Missing reports whether the link entry is gone
func (r LinkRow) Missing() bool {
	return r.Status == StatusMissing
}

// PluginRow is one entry of the plugin listing
type PluginRow struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
	Dir         string `json:"dir,omitempty"` // empty for builtin plugins
	Hooks       int    `json:"hooks"`
}

// State is "enabled" or "disabled"
func (r PluginRow) State() string {
	if r.Enabled {
		return "enabled"
	}
	return "disabled"
}

// Origin is the plugin directory, or "builtin"
func (r PluginRow) Origin() string {
	if r.Dir == "" {
		return "builtin"
	}
	return r.Dir
}
