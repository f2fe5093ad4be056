package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wmateusz/mealweek/internal/catalog"
	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/logger"
)

// IngredientPayload is the wire form of one recipe ingredient
type IngredientPayload struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name" validate:"required,max=200"`
	Quantity   float64 `json:"quantity" validate:"min=0"`
	Unit       string  `json:"unit" validate:"required,unit"`
	ProductURL string  `json:"product_url,omitempty" validate:"omitempty,url"`
}

// SaveRecipeRequest creates or updates a catalog recipe
type SaveRecipeRequest struct {
	ID              string              `json:"id,omitempty"`
	Name            string              `json:"name" validate:"required,max=200"`
	Category        string              `json:"category" validate:"max=50"`
	Ingredients     []IngredientPayload `json:"ingredients" validate:"dive"`
	PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"min=0"`
	ImageURL        string              `json:"image_url,omitempty" validate:"omitempty,url"`
	Tags            []string            `json:"tags,omitempty"`
	IsFavorite      bool                `json:"is_favorite"`
}

// RecipeHandler handles recipe catalog HTTP requests
type RecipeHandler struct {
	catalogSvc catalog.Service
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(catalogSvc catalog.Service) *RecipeHandler {
	return &RecipeHandler{catalogSvc: catalogSvc}
}

// List returns every recipe in the catalog
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.catalogSvc.List(r.Context())
	if err != nil {
		h.fail(w, r, "List recipes", err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	respondJSON(w, http.StatusOK, recipes)
}

// Get returns a single recipe by id
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, err := h.catalogSvc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Get recipe", err)
		return
	}
	if recipe == nil {
		respondError(w, http.StatusNotFound, ErrMsgRecipeNotFound)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// Save creates or updates a recipe
func (h *RecipeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save recipe"); err != nil {
		return
	}

	recipe := req.toDomain()
	saved, err := h.catalogSvc.Save(r.Context(), recipe)
	if err != nil {
		h.fail(w, r, "Save recipe", err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	respondJSON(w, status, saved)
}

// Delete removes a recipe from the catalog. Plans keep their references;
// they become dangling and the aggregator skips them.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogSvc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "Delete recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe deleted"})
}

func (req SaveRecipeRequest) toDomain() *domain.Recipe {
	recipe := &domain.Recipe{
		ID:              req.ID,
		Name:            req.Name,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
		ImageURL:        req.ImageURL,
		Tags:            req.Tags,
		IsFavorite:      req.IsFavorite,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			ID:         ing.ID,
			Name:       ing.Name,
			Quantity:   ing.Quantity,
			Unit:       domain.Unit(ing.Unit),
			ProductURL: ing.ProductURL,
		})
	}
	return recipe
}

func (h *RecipeHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger.FromContext(r.Context()).Error(action+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
