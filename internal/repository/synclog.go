package repository

import (
	"context"

	"github.com/concretemix/smartmix/internal/domain"
)

// SyncLog defines the interface for ERP sync audit records
type SyncLog interface {
	Create(ctx context.Context, l domain.SyncLog) (*domain.SyncLog, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SyncLog, error)
}
