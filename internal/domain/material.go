package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price units accepted from the ERP feed
const (
	PriceUnitYuanPerTon = "YuanPerTon"
	PriceUnitYuanPerKg  = "YuanPerKg"
)

// DefaultPlantCode is used when the ERP omits the plant scope
const DefaultPlantCode = "DEFAULT"

// Material is ERP-owned reference data, keyed by (material_code, plant_code).
// It is never mutated outside the ERP sync path.
type Material struct {
	ID           int64     `json:"id"`
	MaterialCode string    `json:"material_code"`
	Description  string    `json:"description"`
	Spec         string    `json:"spec,omitempty"`
	BaseUnit     string    `json:"base_unit"`
	PlantCode    string    `json:"plant_code"`
	SourceSystem string    `json:"source_system"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// MaterialPrice is one price row for a material. At most one row per material
// carries is_current=true; ingestion replaces the current row atomically.
type MaterialPrice struct {
	ID            int64            `json:"id"`
	MaterialID    int64            `json:"material_id"`
	Price         decimal.Decimal  `json:"price"`
	PriceUnit     string           `json:"price_unit"`
	Currency      string           `json:"currency"`
	EffectiveFrom time.Time        `json:"effective_from"`
	IsCurrent     bool             `json:"is_current"`
	PricePerKg    *decimal.Decimal `json:"price_per_kg,omitempty"` // nil when normalization is unavailable
	SourceSystem  string           `json:"source_system"`
	CreatedAt     time.Time        `json:"created_at,omitempty"`
}
