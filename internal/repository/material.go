package repository

import (
	"context"

	"github.com/concretemix/smartmix/internal/domain"
)

// MaterialFilter narrows material list queries.
type MaterialFilter struct {
	Code  string // exact material code match
	Query string // substring match on description
	Page  int
	Size  int
}

// Material defines the interface for material and price persistence
type Material interface {
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
	GetByCodeAndPlant(ctx context.Context, materialCode, plantCode string) (*domain.Material, error)
	Upsert(ctx context.Context, m domain.Material) (*domain.Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]domain.Material, int64, error)

	// GetCurrentPrice returns the single is_current price row for a material,
	// or nil when none exists.
	GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error)
	ListPrices(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error)

	// ReplaceCurrentPrice atomically clears the previous current flag and
	// inserts p with is_current=true, in one transaction. Readers never
	// observe a material with zero or two current prices.
	ReplaceCurrentPrice(ctx context.Context, p domain.MaterialPrice) (*domain.MaterialPrice, error)
}
