package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	var cb Clipboard = NewMemory("before")

	text, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "before", text)

	require.NoError(t, cb.WriteText("after"))
	text, err = cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "after", text)
}
