package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeOptions(t *testing.T) {
	tests := []struct {
		increment int
		count     int
		first     string
		second    string
		last      string
	}{
		{15, 96, "00:00", "00:15", "23:45"},
		{30, 48, "00:00", "00:30", "23:30"},
		{60, 24, "00:00", "01:00", "23:00"},
	}

	for _, tt := range tests {
		options := GenerateTimeOptions(tt.increment)
		require.Len(t, options, tt.count, "increment %d", tt.increment)
		assert.Equal(t, tt.first, options[0])
		assert.Equal(t, tt.second, options[1])
		assert.Equal(t, tt.last, options[len(options)-1])
	}
}

func TestGenerateTimeOptionsInvalidIncrement(t *testing.T) {
	assert.Empty(t, GenerateTimeOptions(0))
	assert.Empty(t, GenerateTimeOptions(-15))
}

func TestEndTimeOptionsDropsOnlyGlobalFirst(t *testing.T) {
	options := EndTimeOptions(30)
	require.Len(t, options, 47)

	// отбрасывается только "00:00"; все остальные варианты на месте,
	// включая те, что раньше любого возможного начала
	assert.Equal(t, "00:30", options[0])
	assert.Contains(t, options, "01:00")
	assert.Equal(t, "23:30", options[len(options)-1])
}
