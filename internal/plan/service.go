// Package plan implements the coordinator for calendar-to-recipe assignments.
// It is the single authoritative entry point for both the week view and the
// month view: per-week plans are the persisted source of truth, and the month
// projection is a derived cache rebuilt on demand, never patched in place.
package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wmateusz/mealweek/internal/calendar"
	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/logger"
	"github.com/wmateusz/mealweek/internal/metrics"
	"github.com/wmateusz/mealweek/internal/repository"
)

// Service defines the meal-plan coordination business logic.
//
// The service assumes a single logical actor: operations must be invoked
// sequentially and run to completion (including their persistence write)
// before the next one starts. There is no internal locking.
type Service interface {
	// LoadWeek fetches the plan for the week containing monday, creating
	// and persisting an empty plan if none exists. The returned plan
	// becomes the current week.
	LoadWeek(ctx context.Context, monday time.Time) (*domain.WeekPlan, error)

	// CurrentWeek returns a copy of the currently loaded plan, or nil when
	// no week has been loaded yet.
	CurrentWeek() *domain.WeekPlan

	// AssignToDayIndices sets the recipe on each named day of the current
	// week and persists the plan in one write.
	AssignToDayIndices(ctx context.Context, recipeID string, indices []int) error

	// ClearDay removes the assignment from one day of the current week.
	ClearDay(ctx context.Context, index int) error

	// AssignToDate sets the recipe on an absolute date, loading or creating
	// the owning week as needed. The current week reflects the change
	// immediately when the date falls inside it.
	AssignToDate(ctx context.Context, recipeID, date string) error

	// RemoveFromDate clears an absolute date. A date with no plan or no
	// assignment is a no-op, not an error.
	RemoveFromDate(ctx context.Context, date string) error

	// CopyWeek copies every assignment from the source week into the
	// destination week, index-aligned. Returns domain.ErrPlanNotFound when
	// the source week has no plan.
	CopyWeek(ctx context.Context, sourceMonday, destMonday time.Time) error

	// MoveAssignment applies drag-and-drop semantics between two slots:
	// the dragged recipe lands in dest and whatever occupied dest lands in
	// source. An empty dest makes it a plain move. Moving a slot onto
	// itself is a no-op.
	MoveAssignment(ctx context.Context, source, dest domain.Slot) error

	// BuildMonthProjection derives the date-to-recipe mapping for every
	// date visible in the month's grid, overlaying the current in-memory
	// week over the stored plans.
	BuildMonthProjection(ctx context.Context, year int, month time.Month) (map[string]string, error)
}

type service struct {
	repo    repository.WeekPlan
	current *domain.WeekPlan
}

// NewService creates a new plan coordinator backed by the given store.
func NewService(repo repository.WeekPlan) Service {
	return &service{repo: repo}
}

// LoadWeek fetches or creates the plan for the week containing monday
func (s *service) LoadWeek(ctx context.Context, monday time.Time) (*domain.WeekPlan, error) {
	log := logger.FromContext(ctx)

	start := calendar.MondayOf(monday)
	key := calendar.CanonicalKey(start)

	plan, err := s.repo.GetByWeekStart(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrPlanNotFound) {
			return nil, fmt.Errorf("failed to load week %s: %w", key, err)
		}
		plan = domain.NewWeekPlan(start)
		if err := s.repo.Upsert(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to create week %s: %w", key, err)
		}
		metrics.WeekPlansCreated.Inc()
		log.Info("Created empty week plan", "weekStart", key, "planID", plan.ID)
	}

	s.current = plan
	return plan.Clone(), nil
}

// CurrentWeek returns a copy of the currently loaded plan
func (s *service) CurrentWeek() *domain.WeekPlan {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// AssignToDayIndices sets the recipe on the named days of the current week
func (s *service) AssignToDayIndices(ctx context.Context, recipeID string, indices []int) error {
	if err := s.requireCurrent(); err != nil {
		return err
	}
	for _, idx := range indices {
		if err := validateDayIndex(idx); err != nil {
			return err
		}
	}

	for _, idx := range indices {
		id := recipeID
		s.current.Days[idx].RecipeID = &id
	}

	// The in-memory plan keeps the attempted state on failure so the
	// caller can retry the write.
	if err := s.repo.Upsert(ctx, s.current); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", s.current.WeekStart, err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationAssign).Inc()
	logger.FromContext(ctx).Info("Assigned recipe to days",
		"recipeID", recipeID, "weekStart", s.current.WeekStart, "days", len(indices))
	return nil
}

// ClearDay removes the assignment from one day of the current week
func (s *service) ClearDay(ctx context.Context, index int) error {
	if err := s.requireCurrent(); err != nil {
		return err
	}
	if err := validateDayIndex(index); err != nil {
		return err
	}

	s.current.Days[index].RecipeID = nil
	if err := s.repo.Upsert(ctx, s.current); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", s.current.WeekStart, err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationClear).Inc()
	return nil
}

// AssignToDate sets the recipe on an absolute date
func (s *service) AssignToDate(ctx context.Context, recipeID, date string) error {
	plan, idx, err := s.resolveDate(ctx, date)
	if err != nil {
		return err
	}

	id := recipeID
	plan.Days[idx].RecipeID = &id
	if err := s.repo.Upsert(ctx, plan); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", plan.WeekStart, err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationAssign).Inc()
	logger.FromContext(ctx).Info("Assigned recipe to date", "recipeID", recipeID, "date", date)
	return nil
}

// RemoveFromDate clears an absolute date
func (s *service) RemoveFromDate(ctx context.Context, date string) error {
	dateKey, weekKey, err := resolveDateKeys(date)
	if err != nil {
		return err
	}

	var plan *domain.WeekPlan
	if s.current != nil && s.current.WeekStart == weekKey {
		plan = s.current
	} else {
		plan, err = s.repo.GetByWeekStart(ctx, weekKey)
		if err != nil {
			if errors.Is(err, domain.ErrPlanNotFound) {
				return nil // nothing planned that week
			}
			return fmt.Errorf("failed to load week %s: %w", weekKey, err)
		}
	}

	idx := plan.IndexOfDate(dateKey)
	if idx < 0 || plan.Days[idx].RecipeID == nil {
		return nil
	}

	plan.Days[idx].RecipeID = nil
	if err := s.repo.Upsert(ctx, plan); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", plan.WeekStart, err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationClear).Inc()
	return nil
}

// CopyWeek copies assignments from the source week into the destination week
func (s *service) CopyWeek(ctx context.Context, sourceMonday, destMonday time.Time) error {
	srcKey := calendar.CanonicalKey(calendar.MondayOf(sourceMonday))
	src, err := s.repo.GetByWeekStart(ctx, srcKey)
	if err != nil {
		return fmt.Errorf("source week %s: %w", srcKey, err)
	}

	dest, err := s.planForWeek(ctx, calendar.CanonicalKey(calendar.MondayOf(destMonday)))
	if err != nil {
		return err
	}

	// Index-aligned: Monday of the source maps to Monday of the
	// destination regardless of actual dates.
	for i := range dest.Days {
		dest.Days[i].RecipeID = nil
		if src.Days[i].RecipeID != nil {
			id := *src.Days[i].RecipeID
			dest.Days[i].RecipeID = &id
		}
	}

	if err := s.repo.Upsert(ctx, dest); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", dest.WeekStart, err)
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationCopy).Inc()
	logger.FromContext(ctx).Info("Copied week", "from", srcKey, "to", dest.WeekStart)
	return nil
}

// MoveAssignment swaps the contents of two slots
func (s *service) MoveAssignment(ctx context.Context, source, dest domain.Slot) error {
	srcKey, srcIdx, err := s.normalizeSlot(source)
	if err != nil {
		return err
	}
	destKey, destIdx, err := s.normalizeSlot(dest)
	if err != nil {
		return err
	}

	if srcKey == destKey && srcIdx == destIdx {
		return nil
	}

	srcPlan, err := s.planForWeek(ctx, srcKey)
	if err != nil {
		return err
	}
	destPlan := srcPlan
	if destKey != srcKey {
		destPlan, err = s.planForWeek(ctx, destKey)
		if err != nil {
			return err
		}
	}

	dragged := copyID(srcPlan.Days[srcIdx].RecipeID)
	displaced := copyID(destPlan.Days[destIdx].RecipeID)
	destPlan.Days[destIdx].RecipeID = dragged
	srcPlan.Days[srcIdx].RecipeID = displaced

	if err := s.repo.Upsert(ctx, srcPlan); err != nil {
		return fmt.Errorf("failed to persist week %s: %w", srcPlan.WeekStart, err)
	}
	if destPlan != srcPlan {
		if err := s.repo.Upsert(ctx, destPlan); err != nil {
			return fmt.Errorf("%w: week %s written, week %s failed: %w",
				domain.ErrPartialMove, srcPlan.WeekStart, destPlan.WeekStart, err)
		}
	}

	metrics.PlanMutations.WithLabelValues(metrics.MutationMove).Inc()
	logger.FromContext(ctx).Info("Moved assignment",
		"from", fmt.Sprintf("%s[%d]", srcKey, srcIdx),
		"to", fmt.Sprintf("%s[%d]", destKey, destIdx))
	return nil
}

// BuildMonthProjection derives the date-to-recipe mapping for a month grid
func (s *service) BuildMonthProjection(ctx context.Context, year int, month time.Month) (map[string]string, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", domain.ErrInvalidReference, month)
	}

	grid := calendar.MonthGrid(year, month)
	visible := make(map[string]bool, len(grid))
	for _, cell := range grid {
		visible[calendar.CanonicalKey(cell.Date)] = true
	}

	// Every contributing plan starts on one of the grid's Mondays.
	from := calendar.CanonicalKey(grid[0].Date)
	to := calendar.CanonicalKey(calendar.MondayOf(grid[len(grid)-1].Date))
	plans, err := s.repo.GetRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans for %d-%02d: %w", year, month, err)
	}

	projection := make(map[string]string)
	for _, p := range plans {
		for _, day := range p.Days {
			if day.RecipeID != nil && visible[day.Date] {
				projection[day.Date] = *day.RecipeID
			}
		}
	}

	// The current in-memory plan may be ahead of its persisted snapshot:
	// its entries win, and an explicit nil removes what the store
	// contributed for that date.
	if s.current != nil {
		for _, day := range s.current.Days {
			if !visible[day.Date] {
				continue
			}
			if day.RecipeID == nil {
				delete(projection, day.Date)
			} else {
				projection[day.Date] = *day.RecipeID
			}
		}
	}

	metrics.MonthProjectionsBuilt.Inc()
	return projection, nil
}

// planForWeek resolves a week-start key to its plan: the current plan when it
// matches, the stored plan when one exists, or a fresh empty plan otherwise.
func (s *service) planForWeek(ctx context.Context, weekStart string) (*domain.WeekPlan, error) {
	if s.current != nil && s.current.WeekStart == weekStart {
		return s.current, nil
	}
	plan, err := s.repo.GetByWeekStart(ctx, weekStart)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrPlanNotFound) {
		return nil, fmt.Errorf("failed to load week %s: %w", weekStart, err)
	}
	monday, err := calendar.ParseKey(weekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidReference, err)
	}
	return domain.NewWeekPlan(monday), nil
}

// resolveDate resolves an absolute date to its owning plan and day index.
func (s *service) resolveDate(ctx context.Context, date string) (*domain.WeekPlan, int, error) {
	dateKey, weekKey, err := resolveDateKeys(date)
	if err != nil {
		return nil, 0, err
	}
	plan, err := s.planForWeek(ctx, weekKey)
	if err != nil {
		return nil, 0, err
	}
	idx := plan.IndexOfDate(dateKey)
	if idx < 0 {
		return nil, 0, fmt.Errorf("%w: date %s not in week %s", domain.ErrInvalidReference, dateKey, weekKey)
	}
	return plan, idx, nil
}

// normalizeSlot reduces either slot addressing form to (weekStart, index).
func (s *service) normalizeSlot(slot domain.Slot) (string, int, error) {
	if slot.ByDate() {
		d, err := calendar.ParseKey(slot.Date)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %s", domain.ErrInvalidReference, err)
		}
		monday := calendar.MondayOf(d)
		idx := int(d.Sub(monday).Hours() / 24)
		return calendar.CanonicalKey(monday), idx, nil
	}

	if err := validateDayIndex(slot.DayIndex); err != nil {
		return "", 0, err
	}
	if slot.WeekStart != "" {
		monday, err := calendar.ParseKey(slot.WeekStart)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %s", domain.ErrInvalidReference, err)
		}
		return calendar.CanonicalKey(calendar.MondayOf(monday)), slot.DayIndex, nil
	}
	if err := s.requireCurrent(); err != nil {
		return "", 0, err
	}
	return s.current.WeekStart, slot.DayIndex, nil
}

func (s *service) requireCurrent() error {
	if s.current == nil {
		return fmt.Errorf("%w: no week loaded", domain.ErrInvalidReference)
	}
	return nil
}

// resolveDateKeys parses a date string into its canonical key and the
// canonical key of its week's Monday. Rejected before any store access.
func resolveDateKeys(date string) (dateKey, weekKey string, err error) {
	d, err := calendar.ParseKey(date)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidReference, err)
	}
	return calendar.CanonicalKey(d), calendar.CanonicalKey(calendar.MondayOf(d)), nil
}

func validateDayIndex(idx int) error {
	if idx < 0 || idx >= calendar.DaysPerWeek {
		return fmt.Errorf("%w: %s: %d", domain.ErrInvalidReference, domain.ErrMsgInvalidDayIndex, idx)
	}
	return nil
}

func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
