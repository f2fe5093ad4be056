package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wmateusz/mealweek/internal/calendar"
	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/logger"
	"github.com/wmateusz/mealweek/internal/plan"
)

// LoadWeekRequest selects the week to load into the week view
type LoadWeekRequest struct {
	WeekStart string `json:"week_start" validate:"required,datekey"`
}

// AssignRequest assigns a recipe to one or more days of the current week
type AssignRequest struct {
	RecipeID   string `json:"recipe_id" validate:"required"`
	DayIndices []int  `json:"day_indices" validate:"required,min=1,dive,min=0,max=6"`
}

// AssignDateRequest assigns a recipe to an absolute calendar date
type AssignDateRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
	Date     string `json:"date" validate:"required,datekey"`
}

// ClearDayRequest clears one day of the current week
type ClearDayRequest struct {
	DayIndex int `json:"day_index" validate:"min=0,max=6"`
}

// RemoveDateRequest clears an absolute calendar date
type RemoveDateRequest struct {
	Date string `json:"date" validate:"required,datekey"`
}

// CopyWeekRequest copies assignments between two weeks
type CopyWeekRequest struct {
	SourceWeekStart string `json:"source_week_start" validate:"required,datekey"`
	DestWeekStart   string `json:"dest_week_start" validate:"required,datekey"`
}

// SlotPayload is the wire form of a drag-and-drop slot
type SlotPayload struct {
	WeekStart string `json:"week_start,omitempty" validate:"omitempty,datekey"`
	DayIndex  *int   `json:"day_index,omitempty" validate:"omitempty,min=0,max=6"`
	Date      string `json:"date,omitempty" validate:"omitempty,datekey"`
}

// MoveRequest moves (swaps) an assignment between two slots
type MoveRequest struct {
	Source SlotPayload `json:"source"`
	Dest   SlotPayload `json:"dest"`
}

// PlanHandler handles plan-related HTTP requests
type PlanHandler struct {
	planSvc plan.Service
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planSvc plan.Service) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// LoadWeek handles the week-view navigation endpoint
func (h *PlanHandler) LoadWeek(w http.ResponseWriter, r *http.Request) {
	var req LoadWeekRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Load week"); err != nil {
		return
	}

	monday, err := calendar.ParseKey(req.WeekStart)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidReference)
		return
	}

	weekPlan, err := h.planSvc.LoadWeek(r.Context(), monday)
	if err != nil {
		h.fail(w, r, "Load week", err)
		return
	}
	respondJSON(w, http.StatusOK, weekPlan)
}

// CurrentWeek returns the currently loaded week plan
func (h *PlanHandler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	weekPlan := h.planSvc.CurrentWeek()
	if weekPlan == nil {
		respondError(w, http.StatusNotFound, ErrMsgWeekNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, weekPlan)
}

// Assign handles assigning a recipe to day indices of the current week
func (h *PlanHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assign recipe"); err != nil {
		return
	}

	if err := h.planSvc.AssignToDayIndices(r.Context(), req.RecipeID, req.DayIndices); err != nil {
		h.fail(w, r, "Assign recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe assigned"})
}

// AssignDate handles assigning a recipe to an absolute date
func (h *PlanHandler) AssignDate(w http.ResponseWriter, r *http.Request) {
	var req AssignDateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assign recipe to date"); err != nil {
		return
	}

	if err := h.planSvc.AssignToDate(r.Context(), req.RecipeID, req.Date); err != nil {
		h.fail(w, r, "Assign recipe to date", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe assigned"})
}

// ClearDay handles clearing one day of the current week
func (h *PlanHandler) ClearDay(w http.ResponseWriter, r *http.Request) {
	var req ClearDayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Clear day"); err != nil {
		return
	}

	if err := h.planSvc.ClearDay(r.Context(), req.DayIndex); err != nil {
		h.fail(w, r, "Clear day", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Day cleared"})
}

// RemoveDate handles clearing an absolute date
func (h *PlanHandler) RemoveDate(w http.ResponseWriter, r *http.Request) {
	var req RemoveDateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove from date"); err != nil {
		return
	}

	if err := h.planSvc.RemoveFromDate(r.Context(), req.Date); err != nil {
		h.fail(w, r, "Remove from date", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Assignment removed"})
}

// CopyWeek handles copying all assignments from one week into another
func (h *PlanHandler) CopyWeek(w http.ResponseWriter, r *http.Request) {
	var req CopyWeekRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Copy week"); err != nil {
		return
	}

	source, err := calendar.ParseKey(req.SourceWeekStart)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidReference)
		return
	}
	dest, err := calendar.ParseKey(req.DestWeekStart)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidReference)
		return
	}

	if err := h.planSvc.CopyWeek(r.Context(), source, dest); err != nil {
		h.fail(w, r, "Copy week", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Week copied"})
}

// Move handles drag-and-drop between two slots
func (h *PlanHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move assignment"); err != nil {
		return
	}

	source, ok := req.Source.toSlot(w)
	if !ok {
		return
	}
	dest, ok := req.Dest.toSlot(w)
	if !ok {
		return
	}

	if err := h.planSvc.MoveAssignment(r.Context(), source, dest); err != nil {
		h.fail(w, r, "Move assignment", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Assignment moved"})
}

// MonthProjection returns the date-to-recipe mapping for a month grid
func (h *PlanHandler) MonthProjection(w http.ResponseWriter, r *http.Request) {
	yearStr, ok := GetQueryParam(r, w, "year")
	if !ok {
		return
	}
	monthStr, ok := GetQueryParam(r, w, "month")
	if !ok {
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year parameter")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		respondError(w, http.StatusBadRequest, "Invalid month parameter")
		return
	}

	projection, err := h.planSvc.BuildMonthProjection(r.Context(), year, time.Month(month))
	if err != nil {
		h.fail(w, r, "Month projection", err)
		return
	}
	respondJSON(w, http.StatusOK, projection)
}

// toSlot converts the wire payload to a domain slot, writing a 400 when the
// payload addresses nothing.
func (p SlotPayload) toSlot(w http.ResponseWriter) (domain.Slot, bool) {
	if p.Date != "" {
		return domain.SlotAtDate(p.Date), true
	}
	if p.DayIndex == nil {
		respondError(w, http.StatusBadRequest, "Slot needs either a date or a day_index")
		return domain.Slot{}, false
	}
	if p.WeekStart != "" {
		return domain.SlotAtWeekIndex(p.WeekStart, *p.DayIndex), true
	}
	return domain.SlotAtIndex(*p.DayIndex), true
}

func (h *PlanHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger.FromContext(r.Context()).Error(action+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
