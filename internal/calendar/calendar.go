// Package calendar provides the pure date arithmetic the planning engine is
// built on. Weeks are always Monday-first (index 0 = Monday, 6 = Sunday)
// regardless of locale, and every date is normalized to midnight UTC so the
// canonical YYYY-MM-DD key sorts lexicographically in chronological order.
package calendar

import (
	"fmt"
	"time"
)

// DaysPerWeek is the fixed length of every week plan.
const DaysPerWeek = 7

// keyLayout is the canonical date key format used for persistence and map keys.
const keyLayout = "2006-01-02"

// DayLabels holds the Monday-first weekday labels attached to day assignments.
var DayLabels = [DaysPerWeek]string{
	"Poniedziałek",
	"Wtorek",
	"Środa",
	"Czwartek",
	"Piątek",
	"Sobota",
	"Niedziela",
}

// Midnight truncates t to midnight UTC of the same calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday of the week containing t, at midnight UTC.
// Idempotent: MondayOf(MondayOf(t)) == MondayOf(t).
func MondayOf(t time.Time) time.Time {
	d := Midnight(t)
	// time.Weekday is Sunday-based; shift so Monday maps to offset 0.
	offset := (int(d.Weekday()) + 6) % DaysPerWeek
	return d.AddDate(0, 0, -offset)
}

// AddDays offsets t by n calendar days, crossing month and year boundaries.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// CanonicalKey formats t as the locale-independent YYYY-MM-DD key.
func CanonicalKey(t time.Time) string {
	return Midnight(t).Format(keyLayout)
}

// ParseKey parses a canonical YYYY-MM-DD key back into a midnight-UTC date.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(keyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// GridCell is one cell of a month grid. Cells padded in from adjacent months
// carry InCurrentMonth=false and are never assignable.
type GridCell struct {
	Date           time.Time
	InCurrentMonth bool
}

// MonthGrid builds the 7-column grid for the given month: it starts on the
// Monday of the week containing the 1st, ends on the Sunday of the week
// containing the last day, so the length is always a multiple of 7.
func MonthGrid(year int, month time.Month) []GridCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := MondayOf(first)
	end := AddDays(MondayOf(last), DaysPerWeek-1)

	var cells []GridCell
	for d := start; !d.After(end); d = AddDays(d, 1) {
		cells = append(cells, GridCell{
			Date:           d,
			InCurrentMonth: d.Month() == month,
		})
	}
	return cells
}
