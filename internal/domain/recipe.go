package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeStatus is the lifecycle state of a mix recipe
type RecipeStatus string

const (
	RecipeStatusPending  RecipeStatus = "PENDING_APPROVAL"
	RecipeStatusApproved RecipeStatus = "APPROVED"
	RecipeStatusDisabled RecipeStatus = "DISABLED"
)

// Valid reports whether s is a known recipe status.
func (s RecipeStatus) Valid() bool {
	switch s {
	case RecipeStatusPending, RecipeStatusApproved, RecipeStatusDisabled:
		return true
	}
	return false
}

// MixRecipe is a concrete mix design. Only APPROVED recipes are eligible for
// costing. Items are exclusively owned by the recipe and replaced wholesale
// on edit.
type MixRecipe struct {
	ID                    int64           `json:"id"`
	RecipeCode            string          `json:"recipe_code"`
	StrengthGrade         string          `json:"strength_grade"`
	Slump                 string          `json:"slump,omitempty"`
	TechnicalRequirements string          `json:"technical_requirements,omitempty"`
	Remarks               string          `json:"remarks,omitempty"`
	Status                RecipeStatus    `json:"status"`
	Items                 []MixRecipeItem `json:"items,omitempty"`
	CreatedAt             time.Time       `json:"created_at,omitempty"`
	UpdatedAt             time.Time       `json:"updated_at,omitempty"`
}

// MixRecipeItem is one material line of a recipe. The material fields are
// denormalized on read so callers never chase material references.
type MixRecipeItem struct {
	ID           int64           `json:"id"`
	MaterialID   int64           `json:"material_id"`
	MaterialCode string          `json:"material_code,omitempty"`
	MaterialName string          `json:"material_name,omitempty"`
	MaterialUnit string          `json:"material_unit,omitempty"`
	DosagePerM3  decimal.Decimal `json:"dosage_per_m3"`
	Remarks      string          `json:"remarks,omitempty"`
}
