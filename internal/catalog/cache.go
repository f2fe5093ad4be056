package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/wmateusz/mealweek/internal/domain"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// recipeCache is an in-memory LRU for recipe lookups with time-based
// expiration. Only positive hits are cached: a dangling reference must stay
// resolvable the moment the recipe is re-created.
type recipeCache struct {
	lru *expirable.LRU[string, *domain.Recipe]
}

func newRecipeCache(size int, ttl time.Duration) *recipeCache {
	return &recipeCache{
		lru: expirable.NewLRU[string, *domain.Recipe](size, nil, ttl),
	}
}

// Get retrieves a recipe from the cache.
func (c *recipeCache) Get(id string) (*domain.Recipe, bool) {
	return c.lru.Get(id)
}

// Set stores a recipe in the cache.
func (c *recipeCache) Set(id string, recipe *domain.Recipe) {
	c.lru.Add(id, recipe)
}

// Invalidate removes a recipe from the cache after a save or delete.
func (c *recipeCache) Invalidate(id string) {
	c.lru.Remove(id)
}
