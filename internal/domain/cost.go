package domain

import "github.com/shopspring/decimal"

// MaterialCostDetail is one priced line of a cost recommendation.
type MaterialCostDetail struct {
	MaterialCode string          `json:"material_code"`
	MaterialName string          `json:"material_name"`
	DosagePerM3  decimal.Decimal `json:"dosage_per_m3"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPerM3    decimal.Decimal `json:"cost_per_m3"`
}

// CostRecommendation is the priced result for one recipe. It is derived on
// every request and never persisted.
type CostRecommendation struct {
	MixRecipeID     int64                `json:"mix_recipe_id"`
	MixRecipeCode   string               `json:"mix_recipe_code"`
	StrengthGrade   string               `json:"strength_grade"`
	Slump           string               `json:"slump,omitempty"`
	UnitCost        decimal.Decimal      `json:"unit_cost"`
	TotalCost       decimal.Decimal      `json:"total_cost"`
	Best            bool                 `json:"best"`
	PriceIncomplete bool                 `json:"price_incomplete"`
	MaterialDetails []MaterialCostDetail `json:"material_details"`
}

// Reasons a candidate recipe was left out of a recommendation.
const (
	ExclusionPriceIncomplete = "price_incomplete"
	ExclusionComputeError    = "compute_error"
)

// RecipeExclusion records why a candidate recipe produced no recommendation.
// Exclusions never fail the batch; they are surfaced for logs and metrics.
type RecipeExclusion struct {
	MixRecipeID   int64  `json:"mix_recipe_id"`
	MixRecipeCode string `json:"mix_recipe_code"`
	Reason        string `json:"reason"`
	Detail        string `json:"detail,omitempty"`
}
