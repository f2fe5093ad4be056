package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday resolves to preceding Monday",
			input:    date(2024, time.March, 13),
			expected: date(2024, time.March, 11),
		},
		{
			name:     "Monday resolves to itself",
			input:    date(2024, time.March, 11),
			expected: date(2024, time.March, 11),
		},
		{
			name:     "Sunday resolves to the Monday six days back",
			input:    date(2024, time.March, 17),
			expected: date(2024, time.March, 11),
		},
		{
			name:     "Week spanning a month boundary",
			input:    date(2024, time.April, 2),
			expected: date(2024, time.April, 1),
		},
		{
			name:     "Week spanning a year boundary",
			input:    date(2025, time.January, 3),
			expected: date(2024, time.December, 30),
		},
		{
			name:     "Time of day is discarded",
			input:    time.Date(2024, time.March, 13, 23, 59, 59, 0, time.UTC),
			expected: date(2024, time.March, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOf(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, time.Monday, got.Weekday())
			// Idempotence
			assert.Equal(t, got, MondayOf(got))
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		n        int
		expected time.Time
	}{
		{"forward within month", date(2024, time.March, 11), 3, date(2024, time.March, 14)},
		{"crosses month boundary", date(2024, time.March, 30), 3, date(2024, time.April, 2)},
		{"crosses year boundary", date(2024, time.December, 30), 5, date(2025, time.January, 4)},
		{"leap day", date(2024, time.February, 28), 1, date(2024, time.February, 29)},
		{"negative offset", date(2024, time.March, 1), -1, date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddDays(tt.input, tt.n))
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "2024-03-11", CanonicalKey(date(2024, time.March, 11)))
	assert.Equal(t, "2024-01-02", CanonicalKey(date(2024, time.January, 2)))

	// Lexicographic order must equal chronological order.
	earlier := CanonicalKey(date(2024, time.September, 30))
	later := CanonicalKey(date(2024, time.October, 1))
	assert.Less(t, earlier, later)
}

func TestParseKey(t *testing.T) {
	got, err := ParseKey("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 11), got)

	for _, bad := range []string{"", "11-03-2024", "2024-13-01", "2024-02-30", "not-a-date"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, "expected parse failure for %q", bad)
	}
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantLen   int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			// March 2024 starts on a Friday and ends on a Sunday.
			name:      "March 2024",
			year:      2024,
			month:     time.March,
			wantLen:   35,
			wantFirst: date(2024, time.February, 26),
			wantLast:  date(2024, time.March, 31),
		},
		{
			// April 2024 starts exactly on a Monday.
			name:      "April 2024 starts on Monday",
			year:      2024,
			month:     time.April,
			wantLen:   35,
			wantFirst: date(2024, time.April, 1),
			wantLast:  date(2024, time.May, 5),
		},
		{
			// December 2024 spills into January 2025.
			name:      "December 2024 crosses year",
			year:      2024,
			month:     time.December,
			wantLen:   42,
			wantFirst: date(2024, time.November, 25),
			wantLast:  date(2025, time.January, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.year, tt.month)
			require.Len(t, grid, tt.wantLen)
			assert.Zero(t, len(grid)%DaysPerWeek)
			assert.Equal(t, tt.wantFirst, grid[0].Date)
			assert.Equal(t, tt.wantLast, grid[len(grid)-1].Date)
			assert.Equal(t, time.Monday, grid[0].Date.Weekday())

			for i, cell := range grid {
				assert.Equal(t, AddDays(grid[0].Date, i), cell.Date, "grid must be contiguous")
				assert.Equal(t, cell.Date.Month() == tt.month, cell.InCurrentMonth)
			}
		})
	}
}
