package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus is the lifecycle state of a production task
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusPlanned    TaskStatus = "PLANNED"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNew, TaskStatusPlanned, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskSource identifies where a production task originated
type TaskSource string

const (
	TaskSourceSAP    TaskSource = "SAP"
	TaskSourceManual TaskSource = "MANUAL"
)

// ProductionTask is a demand for a volume of concrete at a strength grade.
// Theoretical costs are snapshots taken when a recipe is selected; the cost
// engine itself never writes them.
type ProductionTask struct {
	ID                   int64            `json:"id"`
	TaskNo               string           `json:"task_no"`
	ProjectName          string           `json:"project_name"`
	StrengthGrade        string           `json:"strength_grade"`
	SlumpRequirement     string           `json:"slump_requirement,omitempty"`
	Volume               decimal.Decimal  `json:"volume"`
	SpecialRequirements  string           `json:"special_requirements,omitempty"`
	SourceSystem         TaskSource       `json:"source_system"`
	SapSalesOrderNo      string           `json:"sap_sales_order_no,omitempty"`
	SapProductionOrderNo string           `json:"sap_production_order_no,omitempty"`
	Status               TaskStatus       `json:"status"`
	SelectedMixRecipeID  *int64           `json:"selected_mix_recipe_id,omitempty"`
	TheoreticalUnitCost  *decimal.Decimal `json:"theoretical_unit_cost,omitempty"`
	TheoreticalTotalCost *decimal.Decimal `json:"theoretical_total_cost,omitempty"`
	CreatedAt            time.Time        `json:"created_at,omitempty"`
	UpdatedAt            time.Time        `json:"updated_at,omitempty"`
}
