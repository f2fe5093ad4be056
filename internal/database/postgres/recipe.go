package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/repository"
)

type recipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new PostgreSQL recipe repository
func NewRecipeRepository(db *pgxpool.Pool) repository.Recipe {
	return &recipeRepository{db: db}
}

const recipeColumns = `recipe_id, recipe_name, category, prep_time_minutes, image_url, tags, is_favorite, ingredients`

// GetByID retrieves a recipe by ID
func (r *recipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	recipeUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: recipe id %q", domain.ErrRecipeNotFound, id)
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE recipe_id = $1`

	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, recipeUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
		}
		return nil, fmt.Errorf("%w: get recipe %s: %v", domain.ErrStorage, id, err)
	}
	return recipe, nil
}

// GetAll retrieves every recipe ordered by name
func (r *recipeRepository) GetAll(ctx context.Context) ([]domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY recipe_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query recipes: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan recipe: %v", domain.ErrStorage, err)
		}
		recipes = append(recipes, *recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate recipes: %v", domain.ErrStorage, err)
	}
	return recipes, nil
}

// Upsert inserts or replaces a recipe by ID
func (r *recipeRepository) Upsert(ctx context.Context, recipe *domain.Recipe) error {
	tagsJSON, err := json.Marshal(recipe.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe tags: %w", err)
	}
	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe ingredients: %w", err)
	}

	query := `
		INSERT INTO recipes (recipe_id, recipe_name, category, prep_time_minutes, image_url, tags, is_favorite, ingredients)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (recipe_id) DO UPDATE
		SET recipe_name = EXCLUDED.recipe_name,
		    category = EXCLUDED.category,
		    prep_time_minutes = EXCLUDED.prep_time_minutes,
		    image_url = EXCLUDED.image_url,
		    tags = EXCLUDED.tags,
		    is_favorite = EXCLUDED.is_favorite,
		    ingredients = EXCLUDED.ingredients,
		    updated_at = NOW()
	`

	_, err = r.db.Exec(ctx, query,
		recipe.ID, recipe.Name, recipe.Category, recipe.PrepTimeMinutes,
		recipe.ImageURL, tagsJSON, recipe.IsFavorite, ingredientsJSON)
	if err != nil {
		return fmt.Errorf("%w: upsert recipe %s: %v", domain.ErrStorage, recipe.ID, err)
	}
	return nil
}

// Delete removes a recipe by ID
func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, id); err != nil {
		return fmt.Errorf("%w: delete recipe %s: %v", domain.ErrStorage, id, err)
	}
	return nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		recipeID        uuid.UUID
		recipe          domain.Recipe
		tagsJSON        []byte
		ingredientsJSON []byte
	)
	err := row.Scan(&recipeID, &recipe.Name, &recipe.Category, &recipe.PrepTimeMinutes,
		&recipe.ImageURL, &tagsJSON, &recipe.IsFavorite, &ingredientsJSON)
	if err != nil {
		return nil, err
	}

	recipe.ID = recipeID.String()
	if err := json.Unmarshal(tagsJSON, &recipe.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe tags: %w", err)
	}
	if err := json.Unmarshal(ingredientsJSON, &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe ingredients: %w", err)
	}
	return &recipe, nil
}
