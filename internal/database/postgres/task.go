package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// TaskRepo implements repository.Task over pgx.
type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

const taskColumns = `id, task_no, project_name, strength_grade, COALESCE(slump_requirement,''), volume, COALESCE(special_requirements,''), source_system, COALESCE(sap_sales_order_no,''), COALESCE(sap_production_order_no,''), status, selected_mix_recipe_id, theoretical_unit_cost, theoretical_total_cost, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.ProductionTask, error) {
	var t domain.ProductionTask
	var selectedRecipe *int64
	var unitCost, totalCost decimal.NullDecimal
	err := row.Scan(
		&t.ID,
		&t.TaskNo,
		&t.ProjectName,
		&t.StrengthGrade,
		&t.SlumpRequirement,
		&t.Volume,
		&t.SpecialRequirements,
		&t.SourceSystem,
		&t.SapSalesOrderNo,
		&t.SapProductionOrderNo,
		&t.Status,
		&selectedRecipe,
		&unitCost,
		&totalCost,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	t.SelectedMixRecipeID = selectedRecipe
	if unitCost.Valid {
		t.TheoreticalUnitCost = &unitCost.Decimal
	}
	if totalCost.Valid {
		t.TheoreticalTotalCost = &totalCost.Decimal
	}
	return &t, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM production_tasks
		WHERE id = $1
	`, id)
	return scanTask(row)
}

func (r *TaskRepo) GetByTaskNo(ctx context.Context, taskNo string) (*domain.ProductionTask, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM production_tasks
		WHERE task_no = $1
	`, taskNo)
	return scanTask(row)
}

func (r *TaskRepo) ExistsByTaskNo(ctx context.Context, taskNo string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM production_tasks WHERE task_no = $1)`,
		taskNo).Scan(&exists)
	return exists, err
}

func (r *TaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.ProductionTask, int64, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM production_tasks"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	q := "SELECT " + taskColumns + " FROM production_tasks" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.ProductionTask{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *TaskRepo) Create(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO production_tasks (task_no, project_name, strength_grade, slump_requirement, volume, special_requirements, source_system, sap_sales_order_no, sap_production_order_no, status)
		VALUES ($1, $2, $3, NULLIF($4,''), $5, NULLIF($6,''), $7, NULLIF($8,''), NULLIF($9,''), $10)
		RETURNING `+taskColumns+`
	`, t.TaskNo, t.ProjectName, t.StrengthGrade, t.SlumpRequirement, t.Volume, t.SpecialRequirements,
		string(t.SourceSystem), t.SapSalesOrderNo, t.SapProductionOrderNo, string(t.Status))
	return scanTask(row)
}

func (r *TaskRepo) Update(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error) {
	var unitCost, totalCost decimal.NullDecimal
	if t.TheoreticalUnitCost != nil {
		unitCost = decimal.NewNullDecimal(*t.TheoreticalUnitCost)
	}
	if t.TheoreticalTotalCost != nil {
		totalCost = decimal.NewNullDecimal(*t.TheoreticalTotalCost)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE production_tasks SET
			project_name = $2,
			strength_grade = $3,
			slump_requirement = NULLIF($4,''),
			volume = $5,
			special_requirements = NULLIF($6,''),
			source_system = $7,
			sap_sales_order_no = NULLIF($8,''),
			sap_production_order_no = NULLIF($9,''),
			status = $10,
			selected_mix_recipe_id = $11,
			theoretical_unit_cost = $12,
			theoretical_total_cost = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+taskColumns+`
	`, t.ID, t.ProjectName, t.StrengthGrade, t.SlumpRequirement, t.Volume, t.SpecialRequirements,
		string(t.SourceSystem), t.SapSalesOrderNo, t.SapProductionOrderNo, string(t.Status),
		t.SelectedMixRecipeID, unitCost, totalCost)

	updated, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrTaskNotFound
	}
	return updated, nil
}
