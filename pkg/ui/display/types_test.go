package display

import (
	"testing"
	"time"

	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewLinkRow(t *testing.T) {
	created := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	rec := types.LinkRecord{SourcePath: "/home/u/a.txt", LinkPath: "/tmp/wl/a.txt", Kind: types.LinkKindHard, CreatedAt: created}

	row := NewLinkRow(rec, true)
	assert.Equal(t, LinkRow{Kind: types.LinkKindHard, Status: StatusPresent, LinkPath: "/tmp/wl/a.txt", SourcePath: "/home/u/a.txt", CreatedAt: created}, row)
	assert.False(t, row.Missing())

	assert.True(t, NewLinkRow(rec, false).Missing())
}

func TestLinkRowSourceLabel(t *testing.T) {
	row := LinkRow{SourcePath: "/home/u/a.txt"}
	assert.Equal(t, "/home/u/a.txt", row.SourceLabel())

	row.Target = "/home/u/a.txt"
	assert.Equal(t, "/home/u/a.txt", row.SourceLabel())

	row.Target = "/home/u/moved.txt"
	assert.Equal(t, "/home/u/a.txt -> /home/u/moved.txt", row.SourceLabel())
}
