// Package shopping derives a consolidated shopping list from a week plan.
// The derivation is pure: no persisted state, and identical inputs always
// produce structurally identical output.
package shopping

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wmateusz/mealweek/internal/calendar"
	"github.com/wmateusz/mealweek/internal/domain"
)

// Resolve maps a recipe id to its recipe, or nil for a dangling reference.
// Dangling references are skipped silently: a recipe deleted after being
// planned leaves the plan's slot inert, not broken.
type Resolve func(recipeID string) *domain.Recipe

// Aggregate merges the ingredients of every recipe assigned in the plan into
// one deduplicated, quantity-summed list. Ingredients merge on the
// (lowercased name, unit) key; quantities are plain sums with no unit
// conversion. The result is sorted by ingredient name using Polish collation.
func Aggregate(plan *domain.WeekPlan, resolve Resolve) []domain.ShoppingItem {
	if plan == nil {
		return nil
	}

	entries := make(map[domain.ShoppingKey]*domain.ShoppingItem)
	var order []domain.ShoppingKey

	for i := 0; i < calendar.DaysPerWeek; i++ {
		day := plan.Days[i]
		if day.RecipeID == nil {
			continue
		}
		recipe := resolve(*day.RecipeID)
		if recipe == nil {
			continue
		}

		for _, ing := range recipe.Ingredients {
			key := domain.KeyFor(ing)
			entry, seen := entries[key]
			if !seen {
				// First occurrence seeds the display casing.
				entry = &domain.ShoppingItem{
					IngredientName: ing.Name,
					Unit:           ing.Unit,
				}
				entries[key] = entry
				order = append(order, key)
			}

			entry.TotalQuantity += ing.Quantity
			if !containsName(entry.SourceRecipes, recipe.Name) {
				entry.SourceRecipes = append(entry.SourceRecipes, recipe.Name)
			}
			// First non-empty URL wins across the whole aggregation.
			if entry.ProductURL == "" && ing.ProductURL != "" {
				entry.ProductURL = ing.ProductURL
			}
		}
	}

	items := make([]domain.ShoppingItem, 0, len(order))
	for _, key := range order {
		items = append(items, *entries[key])
	}

	collator := collate.New(language.Polish)
	sort.SliceStable(items, func(a, b int) bool {
		if c := collator.CompareString(items[a].IngredientName, items[b].IngredientName); c != 0 {
			return c < 0
		}
		// Same name in different units: order by unit for determinism.
		return strings.Compare(string(items[a].Unit), string(items[b].Unit)) < 0
	})

	return items
}

// containsName reports whether name is already a source (case-sensitive).
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
