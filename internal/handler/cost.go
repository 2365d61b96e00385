package handler

import (
	"net/http"

	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/logger"
)

// CostHandler handles cost optimization HTTP requests
type CostHandler struct {
	costSvc cost.Service
}

// NewCostHandler creates a new cost handler
func NewCostHandler(costSvc cost.Service) *CostHandler {
	return &CostHandler{costSvc: costSvc}
}

// Recommend handles the cost recommendation endpoint
// @Summary Rank approved recipes by unit cost
// @Description Returns all feasible approved recipes for the strength grade, cheapest first, with per-material cost breakdowns
// @Tags cost
// @Produce json
// @Param strength_grade query string true "Concrete strength grade, e.g. C30"
// @Param volume query number true "Requested volume in cubic meters"
// @Success 200 {object} cost.Result
// @Failure 400 {object} ErrorResponse "Invalid volume or missing parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/cost/recommendations [get]
func (h *CostHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	strengthGrade, ok := GetQueryParam(r, w, "strength_grade")
	if !ok {
		return
	}
	volume, ok := GetDecimalQueryParam(r, w, "volume")
	if !ok {
		return
	}

	result, err := h.costSvc.Recommend(r.Context(), strengthGrade, volume)
	if err != nil {
		log.Error("Recommendation failed", "error", err, "strength_grade", strengthGrade)
		respondServiceError(w, r, "Recommend", err)
		return
	}

	log.Info("Recommendation served",
		"strength_grade", strengthGrade,
		"recommendations", len(result.Recommendations),
		"exclusions", len(result.Exclusions))

	respondJSON(w, http.StatusOK, result)
}

// PriceRecipe handles single-recipe costing
// @Summary Cost one recipe at current prices
// @Description Prices a single recipe at the given volume with a per-material breakdown
// @Tags cost
// @Produce json
// @Param id path int true "Recipe ID"
// @Param volume query number true "Volume in cubic meters"
// @Success 200 {object} domain.CostRecommendation
// @Failure 400 {object} ErrorResponse "Invalid volume or incomplete pricing"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /api/v1/mix/recipes/{id}/cost [get]
func (h *CostHandler) PriceRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}
	volume, ok := GetDecimalQueryParam(r, w, "volume")
	if !ok {
		return
	}

	rec, err := h.costSvc.PriceRecipe(r.Context(), id, volume)
	if err != nil {
		respondServiceError(w, r, "PriceRecipe", err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}
