package handler

import (
	"net/http"

	"github.com/concretemix/smartmix/internal/material"
	"github.com/concretemix/smartmix/internal/repository"
)

// MaterialHandler handles material and price HTTP requests
type MaterialHandler struct {
	materialSvc material.Service
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(materialSvc material.Service) *MaterialHandler {
	return &MaterialHandler{materialSvc: materialSvc}
}

// List handles paged material listing
// @Summary List materials
// @Tags materials
// @Produce json
// @Param code query string false "Exact material code"
// @Param q query string false "Description substring"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} PagedResponse
// @Router /api/v1/materials [get]
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := GetPageParams(r)
	filter := repository.MaterialFilter{
		Code:  r.URL.Query().Get("code"),
		Query: r.URL.Query().Get("q"),
		Page:  page,
		Size:  size,
	}

	materials, total, err := h.materialSvc.ListMaterials(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "ListMaterials", err)
		return
	}

	respondJSON(w, http.StatusOK, PagedResponse{
		Items: materials,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// Get handles material detail lookup
// @Summary Get a material by id
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} domain.Material
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/materials/{id} [get]
func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	m, err := h.materialSvc.GetMaterial(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "GetMaterial", err)
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// CurrentPrice handles current price lookup
// @Summary Get the current price for a material
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} domain.MaterialPrice
// @Failure 404 {object} ErrorResponse "Material or current price not found"
// @Router /api/v1/materials/{id}/price [get]
func (h *MaterialHandler) CurrentPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	price, err := h.materialSvc.GetCurrentPrice(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "GetCurrentPrice", err)
		return
	}

	respondJSON(w, http.StatusOK, price)
}

// PriceHistory handles price history listing
// @Summary List all price rows for a material, newest first
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {array} domain.MaterialPrice
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/materials/{id}/prices [get]
func (h *MaterialHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	prices, err := h.materialSvc.ListPriceHistory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "ListPriceHistory", err)
		return
	}

	respondJSON(w, http.StatusOK, prices)
}
