package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorBareHex(t *testing.T) {
	c, ok := ParseColor("FF00aa")
	require.True(t, ok)
	assert.Equal(t, "#ff00aa", c)
}

func TestParseColorHashPrefixed(t *testing.T) {
	c, ok := ParseColor("#336699")
	require.True(t, ok)
	assert.Equal(t, "#336699", c)
}

func TestParseColorRejectsWrongLength(t *testing.T) {
	_, ok := ParseColor("fff")
	assert.False(t, ok)
}

func TestParseColorRejectsNonHex(t *testing.T) {
	_, ok := ParseColor("zzzzzz")
	assert.False(t, ok)
}
