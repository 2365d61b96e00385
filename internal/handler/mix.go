package handler

import (
	"errors"
	"net/http"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/mix"
	"github.com/concretemix/smartmix/internal/repository"
)

// RecipeItemRequest is one material line of a recipe create/update request.
type RecipeItemRequest struct {
	MaterialID  int64  `json:"material_id" validate:"required,gt=0"`
	DosagePerM3 string `json:"dosage_per_m3" validate:"required"`
	Remarks     string `json:"remarks" validate:"max=200"`
}

// CreateRecipeRequest represents the request to create a recipe
type CreateRecipeRequest struct {
	RecipeCode            string              `json:"recipe_code" validate:"required,max=50"`
	StrengthGrade         string              `json:"strength_grade" validate:"required,max=20"`
	Slump                 string              `json:"slump" validate:"max=50"`
	TechnicalRequirements string              `json:"technical_requirements"`
	Remarks               string              `json:"remarks"`
	Items                 []RecipeItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateRecipeRequest represents the request to edit a pending recipe
type UpdateRecipeRequest struct {
	Slump                 string              `json:"slump" validate:"max=50"`
	TechnicalRequirements string              `json:"technical_requirements"`
	Remarks               string              `json:"remarks"`
	Items                 []RecipeItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CopyRecipeRequest represents the request to copy a recipe
type CopyRecipeRequest struct {
	NewRecipeCode string `json:"new_recipe_code" validate:"max=50"`
}

// MixHandler handles mix recipe HTTP requests
type MixHandler struct {
	mixSvc mix.Service
}

// NewMixHandler creates a new mix recipe handler
func NewMixHandler(mixSvc mix.Service) *MixHandler {
	return &MixHandler{mixSvc: mixSvc}
}

// List handles paged recipe listing
// @Summary List mix recipes
// @Tags recipes
// @Produce json
// @Param strength_grade query string false "Strength grade filter"
// @Param status query string false "Status filter"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} PagedResponse
// @Router /api/v1/mix/recipes [get]
func (h *MixHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := GetPageParams(r)
	filter := repository.RecipeFilter{
		StrengthGrade: r.URL.Query().Get("strength_grade"),
		Status:        domain.RecipeStatus(r.URL.Query().Get("status")),
		Page:          page,
		Size:          size,
	}

	recipes, total, err := h.mixSvc.ListRecipes(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "ListRecipes", err)
		return
	}

	respondJSON(w, http.StatusOK, PagedResponse{
		Items: recipes,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// Get handles recipe detail lookup
// @Summary Get a recipe with its items
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.MixRecipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mix/recipes/{id} [get]
func (h *MixHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	recipe, err := h.mixSvc.GetRecipe(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "GetRecipe", err)
		return
	}

	respondJSON(w, http.StatusOK, recipe)
}

// Create handles recipe creation
// @Summary Create a recipe in pending state
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe definition"
// @Success 201 {object} domain.MixRecipe
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate code"
// @Router /api/v1/mix/recipes [post]
func (h *MixHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
		return
	}

	created, err := h.mixSvc.CreateRecipe(r.Context(), mix.CreateRecipeInput{
		RecipeCode:            req.RecipeCode,
		StrengthGrade:         req.StrengthGrade,
		Slump:                 req.Slump,
		TechnicalRequirements: req.TechnicalRequirements,
		Remarks:               req.Remarks,
		Items:                 toItemInputs(req.Items),
	})
	if err != nil {
		respondMixError(w, r, "CreateRecipe", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// Update handles recipe editing
// @Summary Edit a pending recipe, replacing its items
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body UpdateRecipeRequest true "Updated fields and items"
// @Success 200 {object} domain.MixRecipe
// @Failure 400 {object} ErrorResponse "Recipe is not pending"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mix/recipes/{id} [put]
func (h *MixHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
		return
	}

	updated, err := h.mixSvc.UpdateRecipe(r.Context(), id, mix.UpdateRecipeInput{
		Slump:                 req.Slump,
		TechnicalRequirements: req.TechnicalRequirements,
		Remarks:               req.Remarks,
		Items:                 toItemInputs(req.Items),
	})
	if err != nil {
		respondMixError(w, r, "UpdateRecipe", err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// Approve handles recipe approval
// @Summary Approve a pending recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Recipe is not pending"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mix/recipes/{id}/approve [post]
func (h *MixHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	if err := h.mixSvc.ApproveRecipe(r.Context(), id); err != nil {
		respondServiceError(w, r, "ApproveRecipe", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe approved"})
}

// Disable handles recipe deactivation
// @Summary Disable a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mix/recipes/{id}/disable [post]
func (h *MixHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	if err := h.mixSvc.DisableRecipe(r.Context(), id); err != nil {
		respondServiceError(w, r, "DisableRecipe", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe disabled"})
}

// Copy handles recipe duplication
// @Summary Copy a recipe under a new code
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Source recipe ID"
// @Param request body CopyRecipeRequest false "Optional new recipe code"
// @Success 201 {object} domain.MixRecipe
// @Failure 400 {object} ErrorResponse "Duplicate code"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mix/recipes/{id}/copy [post]
func (h *MixHandler) Copy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	// The body is optional; an empty one means a generated code.
	var req CopyRecipeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Copy recipe"); err != nil {
			return
		}
	}

	created, err := h.mixSvc.CopyRecipe(r.Context(), id, req.NewRecipeCode)
	if err != nil {
		respondServiceError(w, r, "CopyRecipe", err)
		return
	}

	log.Info("Recipe copied", "source_id", id, "recipe_code", created.RecipeCode)
	respondJSON(w, http.StatusCreated, created)
}

func toItemInputs(items []RecipeItemRequest) []mix.ItemInput {
	out := make([]mix.ItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, mix.ItemInput{
			MaterialID:  item.MaterialID,
			DosagePerM3: item.DosagePerM3,
			Remarks:     item.Remarks,
		})
	}
	return out
}

// respondMixError extends the shared mapping with recipe input errors that
// only this handler can produce.
func respondMixError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	switch {
	case errors.Is(err, mix.ErrEmptyItems), errors.Is(err, mix.ErrInvalidDosage):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondServiceError(w, r, opName, err)
	}
}
