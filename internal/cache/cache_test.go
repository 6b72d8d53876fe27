package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissOnEmptyCache(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, hit, err := c.Get("deadbeef")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	entry := Entry{
		TableWidths: map[int]int{0: 3, 1: 2},
		Data:        map[string][]byte{"image1.png": {0x89, 'P', 'N', 'G'}},
	}
	require.NoError(t, c.Put("abc123", entry))

	got, hit, err := c.Get("abc123")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, entry.TableWidths, got.TableWidths)
	assert.Equal(t, entry.Data, got.Data)
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put("hash", Entry{TableWidths: map[int]int{0: 1}}))
	require.NoError(t, c.Put("hash", Entry{TableWidths: map[int]int{0: 99}}))

	got, hit, err := c.Get("hash")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, map[int]int{0: 99}, got.TableWidths)
}
