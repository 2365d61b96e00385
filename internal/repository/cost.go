package repository

import (
	"context"

	"github.com/concretemix/smartmix/internal/domain"
)

// CostReader is the read surface the cost engine needs: candidate recipes for
// a grade and the current price per material. Both are pure lookups.
type CostReader interface {
	FindApprovedRecipesByGrade(ctx context.Context, strengthGrade string) ([]domain.MixRecipe, error)
	GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error)
}

// Cost defines the interface for cost engine reads. BeginSnapshot pins all
// reads of one recommendation to a single consistent snapshot so a price
// update mid-computation cannot be partially observed.
type Cost interface {
	CostReader
	BeginSnapshot(ctx context.Context) (CostSnapshot, error)
}

// CostSnapshot is a read-only transactional view. Close releases it.
type CostSnapshot interface {
	CostReader
	Close(ctx context.Context) error
}
