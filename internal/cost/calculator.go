package cost

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/domain"
)

// computeCost prices one recipe at the given volume. Line items are priced in
// stored order; the first unresolved price makes the whole recipe infeasible
// (domain.ErrPriceIncomplete) without accumulating partial costs. A recipe
// with no items is feasible at zero cost.
//
// decimal.Round rounds half away from zero, which is half-up for the
// non-negative dosages and prices flowing through here.
func computeCost(ctx context.Context, prices priceLookup, recipe domain.MixRecipe, volume decimal.Decimal) (*domain.CostRecommendation, error) {
	rec := &domain.CostRecommendation{
		MixRecipeID:     recipe.ID,
		MixRecipeCode:   recipe.RecipeCode,
		StrengthGrade:   recipe.StrengthGrade,
		Slump:           recipe.Slump,
		MaterialDetails: make([]domain.MaterialCostDetail, 0, len(recipe.Items)),
	}

	unitCost := decimal.Zero
	for _, item := range recipe.Items {
		unitPrice, err := resolveUnitPrice(ctx, prices, item.MaterialID)
		if err != nil {
			if errors.Is(err, domain.ErrPriceUnresolved) {
				return nil, fmt.Errorf("%w: material %s", domain.ErrPriceIncomplete, item.MaterialCode)
			}
			return nil, fmt.Errorf("failed to resolve price for material %s: %w", item.MaterialCode, err)
		}

		costPerM3 := item.DosagePerM3.Mul(unitPrice).Round(moneyScale)

		rec.MaterialDetails = append(rec.MaterialDetails, domain.MaterialCostDetail{
			MaterialCode: item.MaterialCode,
			MaterialName: item.MaterialName,
			DosagePerM3:  item.DosagePerM3,
			UnitPrice:    unitPrice,
			CostPerM3:    costPerM3,
		})
		unitCost = unitCost.Add(costPerM3)
	}

	rec.UnitCost = unitCost.Round(moneyScale)
	rec.TotalCost = rec.UnitCost.Mul(volume).Round(moneyScale)
	return rec, nil
}
