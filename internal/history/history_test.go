package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSuccessAndFailure(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	startedAt := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	require.NoError(t, h.Record("/docs/a.abw", startedAt, nil))
	require.NoError(t, h.Record("/docs/b.abw", startedAt, errors.New("boom")))

	recent, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// newest first
	assert.Equal(t, "/docs/b.abw", recent[0].Path)
	assert.False(t, recent[0].OK)
	assert.Equal(t, "boom", recent[0].Error)

	assert.Equal(t, "/docs/a.abw", recent[1].Path)
	assert.True(t, recent[1].OK)
	assert.Empty(t, recent[1].Error)
	assert.True(t, recent[1].StartedAt.Equal(startedAt))
}

func TestRecentRespectsLimit(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	startedAt := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Record("/docs/x.abw", startedAt, nil))
	}

	recent, err := h.Recent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestForPathFiltersByPath(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	startedAt := time.Now().UTC()
	require.NoError(t, h.Record("/docs/a.abw", startedAt, nil))
	require.NoError(t, h.Record("/docs/b.abw", startedAt, nil))
	require.NoError(t, h.Record("/docs/a.abw", startedAt, errors.New("retry")))

	attempts, err := h.ForPath("/docs/a.abw")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, "/docs/a.abw", a.Path)
	}
}
