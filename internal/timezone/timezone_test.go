package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Mars/Olympus"))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-05", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-03-05T10:30:00Z", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseDate("05/03/2024", time.UTC)
	assert.Error(t, err)
}
