package domain

import "strings"

// ShoppingKey identifies one shopping-list line: ingredients merge only when
// the lowercased name and the unit both match. No unit conversion happens.
type ShoppingKey struct {
	Name string
	Unit Unit
}

// KeyFor builds the aggregation key for an ingredient.
func KeyFor(ing Ingredient) ShoppingKey {
	return ShoppingKey{Name: strings.ToLower(ing.Name), Unit: ing.Unit}
}

// ShoppingItem is one aggregated line of a derived shopping list.
// IngredientName keeps the casing of the first occurrence; SourceRecipes
// lists contributing recipe names deduplicated in insertion order;
// ProductURL is the first non-empty URL seen across the whole aggregation.
type ShoppingItem struct {
	IngredientName string   `json:"ingredient_name"`
	TotalQuantity  float64  `json:"total_quantity"`
	Unit           Unit     `json:"unit"`
	SourceRecipes  []string `json:"source_recipes"`
	ProductURL     string   `json:"product_url,omitempty"`
}
