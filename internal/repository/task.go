package repository

import (
	"context"

	"github.com/concretemix/smartmix/internal/domain"
)

// TaskFilter narrows production task list queries.
type TaskFilter struct {
	Status domain.TaskStatus
	Page   int
	Size   int
}

// Task defines the interface for production task persistence
type Task interface {
	GetByID(ctx context.Context, id int64) (*domain.ProductionTask, error)
	GetByTaskNo(ctx context.Context, taskNo string) (*domain.ProductionTask, error)
	ExistsByTaskNo(ctx context.Context, taskNo string) (bool, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.ProductionTask, int64, error)
	Create(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error)
	Update(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error)
}
