package ui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/arthur-debert/inputbox/pkg/ui"
	"github.com/arthur-debert/inputbox/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []display.LinkRow {
	created := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	return []display.LinkRow{
		display.NewLinkRow(types.LinkRecord{SourcePath: "/home/u/report.pdf", LinkPath: "/tmp/wl/report.pdf", Kind: types.LinkKindHard, CreatedAt: created}, true),
		display.NewLinkRow(types.LinkRecord{SourcePath: "/home/u/notes.md", LinkPath: "/tmp/wl/notes.md", Kind: types.LinkKindSymbolic, CreatedAt: created}, false),
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(99), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRenderer_Links(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderLinks(sampleRows()))
	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "hard")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "/tmp/wl/notes.md")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "2026-10-18T10:00:00Z")
}

func TestTextRenderer_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, r.RenderLinks(nil))
	assert.Equal(t, "No links recorded.\n", buf.String())
}

func TestJSONRenderer_Links(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderLinks(sampleRows()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "hard", decoded[0]["kind"])
	assert.Equal(t, "present", decoded[0]["status"])
	assert.Equal(t, "/tmp/wl/notes.md", decoded[1]["link"])
	assert.Equal(t, "missing", decoded[1]["status"])
}

func TestJSONRenderer_EmptyIsArray(t *testing.T) {
	buf := &bytes.Buffer{}
	r, _ := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, r.RenderLinks(nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestTerminalRenderer_Links(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderLinks(sampleRows()))
	out := buf.String()
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "missing")
}

func samplePlugins() []display.PluginRow {
	return []display.PluginRow{
		{Name: "audit", Version: "1.0.0", Enabled: true, Dir: "/home/u/.config/inputbox/plugins/audit", Hooks: 2},
		{Name: "tagger", Description: "Tags links", Hooks: 1},
	}
}

func TestRenderPlugins(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, _ := ui.NewRenderer(ui.FormatText, buf)
		require.NoError(t, r.RenderPlugins(samplePlugins()))
		out := buf.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "enabled")
		assert.Contains(t, out, "disabled")
		assert.Contains(t, out, "builtin")
		assert.Contains(t, out, "/home/u/.config/inputbox/plugins/audit")
	})

	t.Run("text_empty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, _ := ui.NewRenderer(ui.FormatText, buf)
		require.NoError(t, r.RenderPlugins(nil))
		assert.Equal(t, "No plugins installed.\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, _ := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, r.RenderPlugins(samplePlugins()))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, true, decoded[0]["enabled"])
		assert.Equal(t, float64(2), decoded[0]["hooks"])
		assert.NotContains(t, decoded[1], "dir")
	})

	t.Run("terminal", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, _ := ui.NewRenderer(ui.FormatTerminal, buf)
		require.NoError(t, r.RenderPlugins(samplePlugins()))
		assert.Contains(t, buf.String(), "audit")
		assert.Contains(t, buf.String(), "Tags links")
	})
}

func TestRenderErrorAndMessage(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			r, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			require.NoError(t, r.RenderError(errors.New("boom")))
			require.NoError(t, r.RenderMessage("done"))
			assert.Contains(t, buf.String(), "boom")
			assert.Contains(t, buf.String(), "done")
		})
	}
}
