package handler

import (
	"net/http"

	"github.com/wmateusz/mealweek/internal/category"
)

// CategoryHandler serves recipe category metadata
type CategoryHandler struct {
	registry category.Registry
}

// NewCategoryHandler creates a new category handler holding the given
// registry value. Updated registries are new handlers, never shared mutation.
func NewCategoryHandler(registry category.Registry) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

// List returns the category set in display order
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.registry.Categories())
}
