package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnlyAcceptsISO(t *testing.T) {
	parsed, ok := ParseDateOnly("2024-06-03")
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 3, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestParseDateOnlyAcceptsLegacyForms(t *testing.T) {
	for _, input := range []string{"03-06-2024", "03/06/2024", " 03/06/2024 "} {
		parsed, ok := ParseDateOnly(input)
		require.True(t, ok, input)
		assert.Equal(t, "2024-06-03", FormatDate(parsed), input)
	}
}

func TestParseDateOnlyRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-13-40", "32/06/2024", "2024/06/03"} {
		_, ok := ParseDateOnly(input)
		assert.False(t, ok, input)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	for _, input := range []string{"2024-06-03", "2024-12-31", "2023-01-01"} {
		parsed, ok := ParseDateOnly(input)
		require.True(t, ok)
		assert.Equal(t, input, FormatDate(parsed))
	}
}

func TestFormatDateZeroPads(t *testing.T) {
	parsed, ok := ParseDateOnly("05/01/2024")
	require.True(t, ok)
	assert.Equal(t, "2024-01-05", FormatDate(parsed))
}

func TestDayMatches(t *testing.T) {
	assert.True(t, DayMatches("Mon", time.Monday))
	assert.True(t, DayMatches("monday", time.Monday))
	assert.True(t, DayMatches("MONDAY", time.Monday))
	assert.False(t, DayMatches("Mon", time.Tuesday))
	assert.False(t, DayMatches("saturday", time.Sunday))
}

func TestDayMatchesPermissiveDefault(t *testing.T) {
	// Missing or unknown labels never filter anything out.
	assert.True(t, DayMatches("", time.Friday))
	assert.True(t, DayMatches("  ", time.Friday))
	assert.True(t, DayMatches("everyday", time.Friday))
	assert.True(t, DayMatches("xyz", time.Monday))
}
