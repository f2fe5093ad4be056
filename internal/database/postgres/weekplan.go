package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wmateusz/mealweek/internal/calendar"
	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/repository"
)

type weekPlanRepository struct {
	db *pgxpool.Pool
}

// NewWeekPlanRepository creates a new PostgreSQL week-plan repository
func NewWeekPlanRepository(db *pgxpool.Pool) repository.WeekPlan {
	return &weekPlanRepository{db: db}
}

// GetByWeekStart retrieves the plan for the given canonical week-start key
func (r *weekPlanRepository) GetByWeekStart(ctx context.Context, weekStart string) (*domain.WeekPlan, error) {
	query := `
		SELECT plan_id, to_char(week_start, 'YYYY-MM-DD'), days
		FROM week_plans
		WHERE week_start = $1
	`

	var (
		planID   uuid.UUID
		start    string
		daysJSON []byte
	)
	err := r.db.QueryRow(ctx, query, weekStart).Scan(&planID, &start, &daysJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: week %s", domain.ErrPlanNotFound, weekStart)
		}
		return nil, fmt.Errorf("%w: get week plan %s: %v", domain.ErrStorage, weekStart, err)
	}

	return scanPlan(planID, start, daysJSON)
}

// Upsert inserts or replaces the plan for its week. week_start is the
// canonical key; a plan rebuilt with a fresh id still lands on the same row.
func (r *weekPlanRepository) Upsert(ctx context.Context, plan *domain.WeekPlan) error {
	daysJSON, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal plan days: %w", err)
	}

	query := `
		INSERT INTO week_plans (plan_id, week_start, days)
		VALUES ($1, $2, $3)
		ON CONFLICT (week_start) DO UPDATE
		SET days = EXCLUDED.days, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, plan.ID, plan.WeekStart, daysJSON); err != nil {
		return fmt.Errorf("%w: upsert week plan %s: %v", domain.ErrStorage, plan.WeekStart, err)
	}
	return nil
}

// GetRange retrieves plans whose week start falls within [from, to]
func (r *weekPlanRepository) GetRange(ctx context.Context, fromWeekStart, toWeekStart string) ([]domain.WeekPlan, error) {
	query := `
		SELECT plan_id, to_char(week_start, 'YYYY-MM-DD'), days
		FROM week_plans
		WHERE week_start BETWEEN $1 AND $2
		ORDER BY week_start
	`

	rows, err := r.db.Query(ctx, query, fromWeekStart, toWeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: query week plans: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	return collectPlans(rows)
}

// GetAll retrieves every stored plan ordered by week start
func (r *weekPlanRepository) GetAll(ctx context.Context) ([]domain.WeekPlan, error) {
	query := `
		SELECT plan_id, to_char(week_start, 'YYYY-MM-DD'), days
		FROM week_plans
		ORDER BY week_start
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query week plans: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	return collectPlans(rows)
}

// Delete removes a plan by ID
func (r *weekPlanRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM week_plans WHERE plan_id = $1`, id); err != nil {
		return fmt.Errorf("%w: delete week plan %s: %v", domain.ErrStorage, id, err)
	}
	return nil
}

func collectPlans(rows pgx.Rows) ([]domain.WeekPlan, error) {
	var plans []domain.WeekPlan
	for rows.Next() {
		var (
			planID   uuid.UUID
			start    string
			daysJSON []byte
		)
		if err := rows.Scan(&planID, &start, &daysJSON); err != nil {
			return nil, fmt.Errorf("%w: scan week plan: %v", domain.ErrStorage, err)
		}
		plan, err := scanPlan(planID, start, daysJSON)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate week plans: %v", domain.ErrStorage, err)
	}
	return plans, nil
}

func scanPlan(planID uuid.UUID, weekStart string, daysJSON []byte) (*domain.WeekPlan, error) {
	var days [calendar.DaysPerWeek]domain.DayAssignment
	if err := json.Unmarshal(daysJSON, &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan days for week %s: %w", weekStart, err)
	}
	return &domain.WeekPlan{
		ID:        planID.String(),
		WeekStart: weekStart,
		Days:      days,
	}, nil
}
