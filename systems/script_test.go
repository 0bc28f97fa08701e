package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptAt(t *testing.T) {
	s := NewScript(
		Step{Frames: 2, Keys: NewKeySet(KeyUp)},
		Step{Frames: 0, Keys: NewKeySet(KeyDown)},
		Step{Frames: 1, Keys: NewKeySet(KeyLeft)},
	)
	require.Equal(t, 3, s.Len())

	tests := []struct {
		frame int
		want  KeySet
	}{
		{-1, 0},
		{0, NewKeySet(KeyUp)},
		{1, NewKeySet(KeyUp)},
		{2, NewKeySet(KeyLeft)},
		{3, 0},
		{100, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.At(tt.frame), "frame %d", tt.frame)
	}
}

func TestParseStep(t *testing.T) {
	st, err := ParseStep(5, []string{"left", "UP"})
	require.NoError(t, err)
	assert.Equal(t, 5, st.Frames)
	assert.Equal(t, "left+up", st.Keys.String())

	_, err = ParseStep(-1, nil)
	assert.Error(t, err)

	_, err = ParseStep(1, []string{"jump"})
	assert.Error(t, err)
}
