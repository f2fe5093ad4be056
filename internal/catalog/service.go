// Package catalog owns recipe records. The planning engine only reads from
// it; authoring (save/delete) lives behind the same service so cache
// invalidation has a single owner.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/logger"
	"github.com/wmateusz/mealweek/internal/repository"
)

// Service defines the recipe catalog business logic
type Service interface {
	// GetByID resolves a recipe reference. A missing id returns (nil, nil),
	// never an error: planned recipes may be deleted independently of
	// plans, and consumers treat the nil as a dangling reference.
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)

	// List returns every recipe ordered by name.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Save validates and persists a recipe, assigning an ID on first save.
	Save(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)

	// Delete removes a recipe. Plans referencing it are left untouched;
	// their references simply dangle.
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  repository.Recipe
	cache *recipeCache
}

// NewService creates a new catalog service
func NewService(repo repository.Recipe) Service {
	return &service{
		repo:  repo,
		cache: newRecipeCache(defaultCacheSize, defaultCacheTTL),
	}
}

// GetByID resolves a recipe reference, returning (nil, nil) for a missing id
func (s *service) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if recipe, found := s.cache.Get(id); found {
		return recipe, nil
	}

	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe %s: %w", id, err)
	}

	s.cache.Set(id, recipe)
	return recipe, nil
}

// List returns every recipe ordered by name
func (s *service) List(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Save validates and persists a recipe
func (s *service) Save(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	for i := range recipe.Ingredients {
		if recipe.Ingredients[i].ID == "" {
			recipe.Ingredients[i].ID = uuid.NewString()
		}
	}

	if err := s.repo.Upsert(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe %s: %w", recipe.ID, err)
	}

	s.cache.Invalidate(recipe.ID)
	logger.FromContext(ctx).Info("Saved recipe", "recipeID", recipe.ID, "name", recipe.Name)
	return recipe, nil
}

// Delete removes a recipe
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}

	s.cache.Invalidate(id)
	logger.FromContext(ctx).Info("Deleted recipe", "recipeID", id)
	return nil
}
