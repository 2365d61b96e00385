package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/repository"
	"github.com/concretemix/smartmix/internal/task"
)

// CreateTaskRequest represents a manually entered production task
type CreateTaskRequest struct {
	TaskNo              string `json:"task_no" validate:"required,max=50"`
	ProjectName         string `json:"project_name" validate:"required,max=200"`
	StrengthGrade       string `json:"strength_grade" validate:"required,max=20"`
	SlumpRequirement    string `json:"slump_requirement" validate:"max=50"`
	Volume              string `json:"volume" validate:"required"`
	SpecialRequirements string `json:"special_requirements"`
}

// SelectMixRequest represents the request to assign a recipe to a task
type SelectMixRequest struct {
	MixRecipeID int64 `json:"mix_recipe_id" validate:"required,gt=0"`
}

// TaskHandler handles production task HTTP requests
type TaskHandler struct {
	taskSvc task.Service
}

// NewTaskHandler creates a new production task handler
func NewTaskHandler(taskSvc task.Service) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// List handles paged task listing
// @Summary List production tasks
// @Tags tasks
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} PagedResponse
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := GetPageParams(r)
	filter := repository.TaskFilter{
		Status: domain.TaskStatus(r.URL.Query().Get("status")),
		Page:   page,
		Size:   size,
	}

	tasks, total, err := h.taskSvc.ListTasks(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "ListTasks", err)
		return
	}

	respondJSON(w, http.StatusOK, PagedResponse{
		Items: tasks,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// Get handles task detail lookup
// @Summary Get a production task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} domain.ProductionTask
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	t, err := h.taskSvc.GetTask(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "GetTask", err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// Create handles manual task entry
// @Summary Create a production task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task definition"
// @Success 201 {object} domain.ProductionTask
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate task number"
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create task"); err != nil {
		return
	}

	volume, err := decimal.NewFromString(req.Volume)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDecimal, "volume"))
		return
	}

	created, err := h.taskSvc.CreateTask(r.Context(), task.CreateTaskInput{
		TaskNo:              req.TaskNo,
		ProjectName:         req.ProjectName,
		StrengthGrade:       req.StrengthGrade,
		SlumpRequirement:    req.SlumpRequirement,
		Volume:              volume,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		respondServiceError(w, r, "CreateTask", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// SelectMix handles recipe assignment
// @Summary Assign an approved recipe to a task and snapshot its cost
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body SelectMixRequest true "Recipe to assign"
// @Success 200 {object} domain.ProductionTask
// @Failure 400 {object} ErrorResponse "Task not assignable or recipe not approved"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/select-mix [post]
func (h *TaskHandler) SelectMix(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	var req SelectMixRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select mix"); err != nil {
		return
	}

	updated, err := h.taskSvc.SelectMix(r.Context(), id, req.MixRecipeID)
	if err != nil {
		respondServiceError(w, r, "SelectMix", err)
		return
	}

	log.Info("Mix selected for task", "task_id", id, "mix_recipe_id", req.MixRecipeID)
	respondJSON(w, http.StatusOK, updated)
}

// Start handles the PLANNED to IN_PROGRESS transition
// @Summary Start a planned task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} domain.ProductionTask
// @Failure 400 {object} ErrorResponse "Invalid status transition"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/start [post]
func (h *TaskHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "StartTask", h.taskSvc.StartTask)
}

// Complete handles the IN_PROGRESS to COMPLETED transition
// @Summary Complete a running task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} domain.ProductionTask
// @Failure 400 {object} ErrorResponse "Invalid status transition"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/complete [post]
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "CompleteTask", h.taskSvc.CompleteTask)
}

// Cancel handles task cancellation
// @Summary Cancel a task that has not completed
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} domain.ProductionTask
// @Failure 400 {object} ErrorResponse "Invalid status transition"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/cancel [post]
func (h *TaskHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "CancelTask", h.taskSvc.CancelTask)
}

type transitionFunc func(ctx context.Context, id int64) (*domain.ProductionTask, error)

func (h *TaskHandler) transition(w http.ResponseWriter, r *http.Request, opName string, fn transitionFunc) {
	id, ok := GetIDParam(r, w)
	if !ok {
		return
	}

	updated, err := fn(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
