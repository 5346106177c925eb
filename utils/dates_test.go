package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatesSortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	dates, err := ParseDates([]string{"2026-10-02", "2026-09-14", "2026-10-02"})
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2026-09-14", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2026-10-02", dates[1].Format("2006-01-02"))
}

func TestParseDatesRejectsMalformedEntries(t *testing.T) {
	t.Parallel()

	tests := []string{"14-09-2026", "2026/09/14", "not-a-date", ""}
	for _, bad := range tests {
		_, err := ParseDates([]string{"2026-09-14", bad})
		assert.Error(t, err, bad)
	}
}

func TestParseDatesEmptyInput(t *testing.T) {
	t.Parallel()

	dates, err := ParseDates(nil)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestIsPastDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	assert.True(t, IsPastDay(now.AddDate(0, 0, -1), now))
	assert.False(t, IsPastDay(now, now), "same calendar day is not past")
	assert.False(t, IsPastDay(now.AddDate(0, 0, 1), now))

	// Earlier clock time on the same day does not count as past.
	morning := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	assert.False(t, IsPastDay(morning, now))
}

func TestFormatLongDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday, September 14, 2026", FormatLongDate(d))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}
