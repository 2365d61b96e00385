package cost

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/domain"
)

// priceLookup is the single read the resolver needs.
type priceLookup interface {
	GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error)
}

// resolveUnitPrice returns the current per-kilogram price for a material.
// It returns domain.ErrPriceUnresolved when the material has no current price
// row, or when the row carries no per-kg normalization. Pure lookup, no side
// effects.
func resolveUnitPrice(ctx context.Context, prices priceLookup, materialID int64) (decimal.Decimal, error) {
	price, err := prices.GetCurrentPrice(ctx, materialID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get current price: %w", err)
	}
	if price == nil || price.PricePerKg == nil {
		return decimal.Zero, domain.ErrPriceUnresolved
	}
	return *price.PricePerKg, nil
}
