package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	logger, h := NewTestLogger()

	logger.With("component", "runner").Info("solved", "day", 4)
	logger.Warn("slow")

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "runner", entries[0]["component"])
	assert.Equal(t, int64(4), entries[0]["day"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.NotContains(t, entries[1], "component")

	assert.Len(t, h.Find("slow"), 1)
	assert.Empty(t, h.Find("missing"))

	h.Clear()
	assert.Empty(t, h.Entries())
}
