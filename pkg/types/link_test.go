package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkKind(t *testing.T) {
	tests := []struct {
		input   string
		want    LinkKind
		wantErr bool
	}{
		{"hard", LinkKindHard, false},
		{"HARD", LinkKindHard, false},
		{" hardlink ", LinkKindHard, false},
		{"symbolic", LinkKindSymbolic, false},
		{"symlink", LinkKindSymbolic, false},
		{"soft", LinkKindSymbolic, false},
		{"copy", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLinkKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestLinkKind_Valid(t *testing.T) {
	assert.True(t, LinkKindHard.Valid())
	assert.True(t, LinkKindSymbolic.Valid())
	assert.False(t, LinkKind("junction").Valid())
	assert.Equal(t, "symbolic", LinkKindSymbolic.String())
}
