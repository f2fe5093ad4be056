package repository

import (
	"context"

	"github.com/wmateusz/mealweek/internal/domain"
)

// WeekPlan handles week-plan persistence. Plans are addressable by their
// immutable ID and by the unique canonical week-start key; the store holds no
// business logic beyond that dual addressing.
type WeekPlan interface {
	// GetByWeekStart retrieves the plan whose week starts on the given
	// canonical YYYY-MM-DD key. Returns domain.ErrPlanNotFound when absent.
	GetByWeekStart(ctx context.Context, weekStart string) (*domain.WeekPlan, error)

	// Upsert inserts or replaces a plan by ID. The caller guarantees
	// week-start uniqueness; the store only enforces it as a secondary
	// unique index.
	Upsert(ctx context.Context, plan *domain.WeekPlan) error

	// GetRange retrieves every plan whose week start falls within
	// [fromWeekStart, toWeekStart], ordered by week start.
	GetRange(ctx context.Context, fromWeekStart, toWeekStart string) ([]domain.WeekPlan, error)

	// GetAll retrieves every stored plan ordered by week start.
	GetAll(ctx context.Context) ([]domain.WeekPlan, error)

	// Delete removes a plan by ID. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
