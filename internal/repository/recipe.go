package repository

import (
	"context"

	"github.com/wmateusz/mealweek/internal/domain"
)

// Recipe handles recipe persistence for the catalog.
type Recipe interface {
	// GetByID retrieves a recipe. Returns domain.ErrRecipeNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)

	// GetAll retrieves every recipe ordered by name.
	GetAll(ctx context.Context) ([]domain.Recipe, error)

	// Upsert inserts or replaces a recipe by ID.
	Upsert(ctx context.Context, recipe *domain.Recipe) error

	// Delete removes a recipe by ID. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
