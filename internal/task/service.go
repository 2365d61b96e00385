package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/repository"
)

// Pagination bounds for task listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// CreateTaskInput carries the fields for a manually entered task.
type CreateTaskInput struct {
	TaskNo              string
	ProjectName         string
	StrengthGrade       string
	SlumpRequirement    string
	Volume              decimal.Decimal
	SpecialRequirements string
}

// Service defines the interface for production task operations
type Service interface {
	GetTask(ctx context.Context, id int64) (*domain.ProductionTask, error)
	ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.ProductionTask, int64, error)

	// CreateTask records a manually entered task with status NEW.
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.ProductionTask, error)

	// SelectMix assigns an approved recipe to the task, snapshots its
	// theoretical unit and total cost at current prices, and moves the task
	// to PLANNED. Best-effort costing: when the recipe's pricing is
	// incomplete the selection still succeeds with nil cost fields.
	SelectMix(ctx context.Context, taskID, mixRecipeID int64) (*domain.ProductionTask, error)

	// StartTask moves a PLANNED task to IN_PROGRESS.
	StartTask(ctx context.Context, id int64) (*domain.ProductionTask, error)

	// CompleteTask moves an IN_PROGRESS task to COMPLETED.
	CompleteTask(ctx context.Context, id int64) (*domain.ProductionTask, error)

	// CancelTask cancels a task that has not completed.
	CancelTask(ctx context.Context, id int64) (*domain.ProductionTask, error)
}

type service struct {
	repo    repository.Task
	mixRepo repository.Mix
	costSvc cost.Service
}

// NewService creates a new production task service
func NewService(repo repository.Task, mixRepo repository.Mix, costSvc cost.Service) Service {
	return &service{repo: repo, mixRepo: mixRepo, costSvc: costSvc}
}

func (s *service) GetTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

func (s *service) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.ProductionTask, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, filter.Status)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = DefaultPageSize
	}
	if filter.Size > MaxPageSize {
		filter.Size = MaxPageSize
	}

	tasks, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

func (s *service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.ProductionTask, error) {
	if input.Volume.Sign() <= 0 {
		return nil, domain.ErrInvalidVolume
	}

	exists, err := s.repo.ExistsByTaskNo(ctx, input.TaskNo)
	if err != nil {
		return nil, fmt.Errorf("failed to check task number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateTaskNo, input.TaskNo)
	}

	t := domain.ProductionTask{
		TaskNo:              input.TaskNo,
		ProjectName:         input.ProjectName,
		StrengthGrade:       input.StrengthGrade,
		SlumpRequirement:    input.SlumpRequirement,
		Volume:              input.Volume,
		SpecialRequirements: input.SpecialRequirements,
		SourceSystem:        domain.TaskSourceManual,
		Status:              domain.TaskStatusNew,
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.FromContext(ctx).Info("Production task created",
		"task_no", created.TaskNo, "strength_grade", created.StrengthGrade)
	return created, nil
}

func (s *service) SelectMix(ctx context.Context, taskID, mixRecipeID int64) (*domain.ProductionTask, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TaskStatusNew && t.Status != domain.TaskStatusPlanned {
		return nil, fmt.Errorf("%w: cannot select mix in status %s", domain.ErrInvalidStatus, t.Status)
	}

	recipe, err := s.mixRepo.GetByID(ctx, mixRecipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	if recipe.Status != domain.RecipeStatusApproved {
		return nil, domain.ErrRecipeNotApproved
	}

	t.SelectedMixRecipeID = &recipe.ID
	t.TheoreticalUnitCost = nil
	t.TheoreticalTotalCost = nil

	rec, err := s.costSvc.PriceRecipe(ctx, recipe.ID, t.Volume)
	switch {
	case err == nil:
		t.TheoreticalUnitCost = &rec.UnitCost
		t.TheoreticalTotalCost = &rec.TotalCost
	case isPricingGap(err):
		// Selection proceeds without a cost snapshot.
		logger.FromContext(ctx).Warn("Selected recipe has no complete pricing",
			"task_no", t.TaskNo, "recipe_code", recipe.RecipeCode)
	default:
		return nil, fmt.Errorf("failed to price recipe: %w", err)
	}

	t.Status = domain.TaskStatusPlanned

	updated, err := s.repo.Update(ctx, *t)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	logger.FromContext(ctx).Info("Mix selected for task",
		"task_no", updated.TaskNo, "recipe_code", recipe.RecipeCode)
	return updated, nil
}

func (s *service) StartTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	return s.transition(ctx, id, domain.TaskStatusInProgress, domain.TaskStatusPlanned)
}

func (s *service) CompleteTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	return s.transition(ctx, id, domain.TaskStatusCompleted, domain.TaskStatusInProgress)
}

func (s *service) CancelTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	return s.transition(ctx, id, domain.TaskStatusCancelled,
		domain.TaskStatusNew, domain.TaskStatusPlanned, domain.TaskStatusInProgress)
}

func (s *service) transition(ctx context.Context, id int64, to domain.TaskStatus, from ...domain.TaskStatus) (*domain.ProductionTask, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if t.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot move %s task to %s", domain.ErrInvalidStatus, t.Status, to)
	}

	t.Status = to
	updated, err := s.repo.Update(ctx, *t)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	logger.FromContext(ctx).Info("Task status changed",
		"task_no", updated.TaskNo, "status", updated.Status)
	return updated, nil
}

// isPricingGap reports whether err means the recipe cannot be costed right
// now rather than a system failure.
func isPricingGap(err error) bool {
	return errors.Is(err, domain.ErrPriceIncomplete) || errors.Is(err, domain.ErrPriceUnresolved)
}
