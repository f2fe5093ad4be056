package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/wmateusz/mealweek/internal/calendar"
)

// DayAssignment is one day's slot within a week plan. Date and DayOfWeek are
// fixed at plan creation (Date is always WeekStart + index days); only
// RecipeID is ever mutated afterwards.
type DayAssignment struct {
	Date      string  `json:"date"`
	DayOfWeek string  `json:"day_of_week"`
	RecipeID  *string `json:"recipe_id"`
}

// WeekPlan is the persisted record of recipe assignments for the seven days
// starting on a given Monday. WeekStart is the natural key and is unique per
// store; ID is assigned once at creation and never changes.
type WeekPlan struct {
	ID        string                               `json:"id"`
	WeekStart string                               `json:"week_start"`
	Days      [calendar.DaysPerWeek]DayAssignment `json:"days"`
}

// NewWeekPlan creates an empty plan for the week containing monday,
// establishing the date/index pairing for all seven days.
func NewWeekPlan(monday time.Time) *WeekPlan {
	start := calendar.MondayOf(monday)
	plan := &WeekPlan{
		ID:        uuid.NewString(),
		WeekStart: calendar.CanonicalKey(start),
	}
	for i := range plan.Days {
		plan.Days[i] = DayAssignment{
			Date:      calendar.CanonicalKey(calendar.AddDays(start, i)),
			DayOfWeek: calendar.DayLabels[i],
		}
	}
	return plan
}

// Clone returns a deep copy of the plan. Days is an array so the copy is
// value-complete except for the RecipeID pointers, which are re-allocated.
func (p *WeekPlan) Clone() *WeekPlan {
	c := *p
	for i, day := range p.Days {
		if day.RecipeID != nil {
			id := *day.RecipeID
			c.Days[i].RecipeID = &id
		}
	}
	return &c
}

// IndexOfDate returns the day index for a canonical date key, or -1 when the
// date falls outside this plan's week.
func (p *WeekPlan) IndexOfDate(dateKey string) int {
	for i, day := range p.Days {
		if day.Date == dateKey {
			return i
		}
	}
	return -1
}
