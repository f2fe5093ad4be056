package domain

// Slot addresses a single assignable day, either as an index into a named
// week or as an absolute date. Drag and drop hands the coordinator two slots;
// both forms normalize to the same (plan, index) pair before comparison.
type Slot struct {
	// WeekStart + DayIndex address a day positionally. An empty WeekStart
	// means "the currently loaded week".
	WeekStart string `json:"week_start,omitempty"`
	DayIndex  int    `json:"day_index"`

	// Date addresses a day absolutely; when set it takes precedence over
	// the positional form.
	Date string `json:"date,omitempty"`
}

// SlotAtIndex addresses a day of the currently loaded week by index.
func SlotAtIndex(index int) Slot {
	return Slot{DayIndex: index}
}

// SlotAtWeekIndex addresses a day of a specific week by index.
func SlotAtWeekIndex(weekStart string, index int) Slot {
	return Slot{WeekStart: weekStart, DayIndex: index}
}

// SlotAtDate addresses a day by absolute date.
func SlotAtDate(date string) Slot {
	return Slot{Date: date, DayIndex: -1}
}

// ByDate reports whether the slot uses the absolute-date addressing form.
func (s Slot) ByDate() bool {
	return s.Date != ""
}
