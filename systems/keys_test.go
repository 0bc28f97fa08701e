package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyLeft, KeyUp)
	assert.True(t, s.Pressed(KeyLeft))
	assert.True(t, s.Pressed(KeyUp))
	assert.False(t, s.Pressed(KeyRight))
	assert.False(t, s.Pressed(KeyDown))
	assert.Equal(t, "left+up", s.String())
	assert.Equal(t, "none", KeySet(0).String())
}

func TestParseKeySet(t *testing.T) {
	s, err := ParseKeySet([]string{"Up", " right "})
	require.NoError(t, err)
	assert.Equal(t, NewKeySet(KeyUp, KeyRight), s)

	_, err = ParseKeySet([]string{"space"})
	assert.Error(t, err)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "down", KeyDown.String())
	assert.Equal(t, "key(9)", Key(9).String())
}
