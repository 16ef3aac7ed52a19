package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	loc, err := GetLocation(UTC)
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	again, err := GetLocation(UTC)
	require.NoError(t, err)
	assert.Same(t, loc, again, "second lookup is served from the cache")

	_, err = GetLocation("Not/AZone")
	assert.Error(t, err)
}

func TestFormatBookedAt(t *testing.T) {
	// 08:35 UTC is 14:05 IST
	ts := time.Date(2026, 11, 2, 8, 35, 0, 0, time.UTC)
	assert.Equal(t, "02 Nov 2026, 14:05 IST", FormatBookedAt(ts))
}
