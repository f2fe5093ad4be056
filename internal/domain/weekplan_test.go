package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmateusz/mealweek/internal/calendar"
)

func TestNewWeekPlan(t *testing.T) {
	monday := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	plan := NewWeekPlan(monday)

	require.NotEmpty(t, plan.ID)
	assert.Equal(t, "2024-03-11", plan.WeekStart)

	start, err := calendar.ParseKey(plan.WeekStart)
	require.NoError(t, err)
	for i, day := range plan.Days {
		assert.Equal(t, calendar.CanonicalKey(calendar.AddDays(start, i)), day.Date)
		assert.Equal(t, calendar.DayLabels[i], day.DayOfWeek)
		assert.Nil(t, day.RecipeID)
	}
}

func TestNewWeekPlan_NormalizesToMonday(t *testing.T) {
	// A mid-week date still produces the plan for that week's Monday.
	thursday := time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC)
	plan := NewWeekPlan(thursday)
	assert.Equal(t, "2024-03-11", plan.WeekStart)
	assert.Equal(t, "2024-03-17", plan.Days[6].Date)
}

func TestWeekPlanClone(t *testing.T) {
	plan := NewWeekPlan(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))
	recipeID := "recipe-1"
	plan.Days[2].RecipeID = &recipeID

	clone := plan.Clone()
	require.Equal(t, plan, clone)

	// Mutating the clone must not leak into the original.
	*clone.Days[2].RecipeID = "recipe-2"
	clone.Days[4].RecipeID = &recipeID
	assert.Equal(t, "recipe-1", *plan.Days[2].RecipeID)
	assert.Nil(t, plan.Days[4].RecipeID)
}

func TestIndexOfDate(t *testing.T) {
	plan := NewWeekPlan(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, plan.IndexOfDate("2024-03-11"))
	assert.Equal(t, 6, plan.IndexOfDate("2024-03-17"))
	assert.Equal(t, -1, plan.IndexOfDate("2024-03-18"))
	assert.Equal(t, -1, plan.IndexOfDate(""))
}

func TestParseUnit(t *testing.T) {
	for _, u := range AllUnits {
		got, err := ParseUnit(string(u))
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	_, err := ParseUnit("garść")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestIngredientValidate(t *testing.T) {
	tests := []struct {
		name    string
		ing     Ingredient
		wantErr error
	}{
		{"valid", Ingredient{Name: "mąka", Quantity: 500, Unit: UnitGram}, nil},
		{"zero quantity allowed", Ingredient{Name: "sól", Quantity: 0, Unit: UnitTeaspoon}, nil},
		{"empty name", Ingredient{Name: "  ", Quantity: 1, Unit: UnitGram}, ErrInvalidInput},
		{"negative quantity", Ingredient{Name: "cukier", Quantity: -1, Unit: UnitGram}, ErrInvalidInput},
		{"unknown unit", Ingredient{Name: "cukier", Quantity: 1, Unit: "garść"}, ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ing.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
