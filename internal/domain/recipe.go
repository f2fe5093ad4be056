package domain

import (
	"fmt"
	"strings"
)

// Unit is one of the fixed measurement units an ingredient can be expressed in.
// Quantities are never converted between units; two ingredients merge on a
// shopping list only when both name and unit match.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitMillilit Unit = "ml"
	UnitLiter    Unit = "l"
	UnitPiece    Unit = "szt"
	UnitSpoon    Unit = "łyżka"
	UnitTeaspoon Unit = "łyżeczka"
	UnitGlass    Unit = "szklanka"
	UnitPackage  Unit = "opakowanie"
)

// AllUnits lists every valid unit in display order.
var AllUnits = []Unit{
	UnitGram,
	UnitKilogram,
	UnitMillilit,
	UnitLiter,
	UnitPiece,
	UnitSpoon,
	UnitTeaspoon,
	UnitGlass,
	UnitPackage,
}

// ParseUnit validates a raw unit string against the fixed unit set.
func ParseUnit(s string) (Unit, error) {
	for _, u := range AllUnits {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       Unit    `json:"unit"`
	ProductURL string  `json:"product_url,omitempty"`
}

// Validate checks the structural invariants of an ingredient.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: ingredient name is empty", ErrInvalidInput)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: ingredient %q has negative quantity", ErrInvalidInput, i.Name)
	}
	if _, err := ParseUnit(string(i.Unit)); err != nil {
		return fmt.Errorf("ingredient %q: %w", i.Name, err)
	}
	return nil
}

// Recipe is a catalog entry. The planning engine only ever reads recipes;
// authoring lives behind the catalog service.
type Recipe struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Ingredients     []Ingredient `json:"ingredients"`
	PrepTimeMinutes int          `json:"prep_time_minutes"`
	ImageURL        string       `json:"image_url,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	IsFavorite      bool         `json:"is_favorite"`
}

// Validate checks the structural invariants of a recipe.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe name is empty", ErrInvalidInput)
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}
