package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/inputbox/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Bold", "Italic", "Muted", "MutedItalic",
		"FilePath", "LinkKind", "Present", "Missing", "TableHeader", "Indent",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.Equal(t, styles.StyleRegistry["Error"], styles.GetStyle("Error"))
	assert.Equal(t, lipgloss.NewStyle(), styles.GetStyle("NonExistentStyle"))
	assert.Equal(t, lipgloss.NewStyle(), styles.GetStyle(""))
}

func TestStyleProperties(t *testing.T) {
	assert.True(t, styles.GetStyle("Header").GetBold())
	assert.True(t, styles.GetStyle("Missing").GetItalic())
	assert.True(t, styles.GetStyle("TableHeader").GetUnderline())
	assert.NotEqual(t, lipgloss.NewStyle(), styles.GetStyle("Success"))
}

func TestRender(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "FilePath", "Missing", "Unknown"} {
		assert.Contains(t, styles.Render(name, "content"), "content", name)
	}
}

func TestMergeStyles(t *testing.T) {
	merged := styles.MergeStyles("Bold", "NonExistent", "Italic")
	assert.True(t, merged.GetBold())
	assert.True(t, merged.GetItalic())
	assert.Equal(t, lipgloss.NewStyle(), styles.MergeStyles())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		data, err := os.ReadFile("styles.yaml")
		require.NoError(t, err)
		require.NoError(t, styles.LoadStylesFromData(data))
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		content := "colors:\n  red:\n    light: \"#f00\"\n    dark: \"#f00\"\nstyles:\n  Alert:\n    bold: true\n    foreground: red\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		require.NoError(t, styles.LoadStyles(path))
		assert.True(t, styles.GetStyle("Alert").GetBold())
		_, exists := styles.StyleRegistry["Header"]
		assert.False(t, exists)
	})

	t.Run("missing file", func(t *testing.T) {
		err := styles.LoadStyles("/non/existent/path/styles.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read styles file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := styles.LoadStylesFromData([]byte("colors: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse styles data")
	})
}
