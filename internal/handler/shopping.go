package handler

import (
	"net/http"

	"github.com/wmateusz/mealweek/internal/calendar"
	"github.com/wmateusz/mealweek/internal/catalog"
	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/logger"
	"github.com/wmateusz/mealweek/internal/metrics"
	"github.com/wmateusz/mealweek/internal/plan"
	"github.com/wmateusz/mealweek/internal/shopping"
)

// ShoppingHandler handles shopping-list derivation requests
type ShoppingHandler struct {
	planSvc    plan.Service
	catalogSvc catalog.Service
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(planSvc plan.Service, catalogSvc catalog.Service) *ShoppingHandler {
	return &ShoppingHandler{planSvc: planSvc, catalogSvc: catalogSvc}
}

// ShoppingList derives the aggregated shopping list for a week. An explicit
// week_start query parameter navigates to that week first, mirroring the week
// view; otherwise the currently loaded week is used.
func (h *ShoppingHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	weekPlan := h.planSvc.CurrentWeek()
	if weekStart := r.URL.Query().Get("week_start"); weekStart != "" {
		monday, err := calendar.ParseKey(weekStart)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidReference)
			return
		}
		weekPlan, err = h.planSvc.LoadWeek(r.Context(), monday)
		if err != nil {
			log.Error("Shopping list week load failed", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}
	}
	if weekPlan == nil {
		respondError(w, http.StatusNotFound, ErrMsgWeekNotFoundError)
		return
	}

	// Resolve the week's recipes up front so aggregation itself stays
	// pure. A nil recipe is a dangling reference and is skipped; a
	// storage failure is not.
	resolved := make(map[string]*domain.Recipe)
	for _, day := range weekPlan.Days {
		if day.RecipeID == nil {
			continue
		}
		recipe, err := h.catalogSvc.GetByID(r.Context(), *day.RecipeID)
		if err != nil {
			log.Error("Shopping list recipe lookup failed", "error", err, "recipeID", *day.RecipeID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}
		resolved[*day.RecipeID] = recipe
	}

	items := shopping.Aggregate(weekPlan, func(id string) *domain.Recipe {
		return resolved[id]
	})

	metrics.ShoppingListsBuilt.Inc()
	log.Info("Shopping list built", "weekStart", weekPlan.WeekStart, "items", len(items))
	respondJSON(w, http.StatusOK, items)
}
