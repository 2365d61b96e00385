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

// MaterialRepo implements repository.Material over pgx.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

func NewMaterialRepo(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

const materialColumns = `id, material_code, description, COALESCE(spec,''), base_unit, plant_code, source_system, created_at, updated_at`

func scanMaterial(row pgx.Row) (*domain.Material, error) {
	var m domain.Material
	err := row.Scan(
		&m.ID,
		&m.MaterialCode,
		&m.Description,
		&m.Spec,
		&m.BaseUnit,
		&m.PlantCode,
		&m.SourceSystem,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE id = $1
	`, id)
	return scanMaterial(row)
}

func (r *MaterialRepo) GetByCodeAndPlant(ctx context.Context, materialCode, plantCode string) (*domain.Material, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE material_code = $1 AND plant_code = $2
	`, materialCode, plantCode)
	return scanMaterial(row)
}

func (r *MaterialRepo) Upsert(ctx context.Context, m domain.Material) (*domain.Material, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO materials (material_code, description, spec, base_unit, plant_code, source_system)
		VALUES ($1, $2, NULLIF($3,''), $4, $5, $6)
		ON CONFLICT (material_code, plant_code) DO UPDATE SET
			description = EXCLUDED.description,
			spec = EXCLUDED.spec,
			base_unit = EXCLUDED.base_unit,
			source_system = EXCLUDED.source_system,
			updated_at = NOW()
		RETURNING `+materialColumns+`
	`, m.MaterialCode, m.Description, m.Spec, m.BaseUnit, m.PlantCode, m.SourceSystem)
	return scanMaterial(row)
}

func (r *MaterialRepo) List(ctx context.Context, filter repository.MaterialFilter) ([]domain.Material, int64, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Code != "" {
		args = append(args, filter.Code)
		where += fmt.Sprintf(" AND material_code = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND description ILIKE $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM materials"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	q := "SELECT " + materialColumns + " FROM materials" + where +
		fmt.Sprintf(" ORDER BY material_code, plant_code LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}

const priceColumns = `id, material_id, price, price_unit, currency, effective_from, is_current, price_per_kg, source_system, created_at`

func scanPrice(row pgx.Row) (*domain.MaterialPrice, error) {
	var p domain.MaterialPrice
	var perKg decimal.NullDecimal
	err := row.Scan(
		&p.ID,
		&p.MaterialID,
		&p.Price,
		&p.PriceUnit,
		&p.Currency,
		&p.EffectiveFrom,
		&p.IsCurrent,
		&perKg,
		&p.SourceSystem,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if perKg.Valid {
		p.PricePerKg = &perKg.Decimal
	}
	return &p, nil
}

func (r *MaterialRepo) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	return getCurrentPrice(ctx, r.pool, materialID)
}

func (r *MaterialRepo) ListPrices(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+priceColumns+`
		FROM material_prices
		WHERE material_id = $1
		ORDER BY effective_from DESC, id DESC
	`, materialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaterialPrice{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// ReplaceCurrentPrice clears the previous current flag and inserts the new
// row in one transaction. The partial unique index on (material_id) WHERE
// is_current makes a concurrent double-insert impossible.
func (r *MaterialRepo) ReplaceCurrentPrice(ctx context.Context, p domain.MaterialPrice) (*domain.MaterialPrice, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		UPDATE material_prices SET is_current = FALSE
		WHERE material_id = $1 AND is_current
	`, p.MaterialID); err != nil {
		return nil, err
	}

	var perKg decimal.NullDecimal
	if p.PricePerKg != nil {
		perKg = decimal.NewNullDecimal(*p.PricePerKg)
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO material_prices (material_id, price, price_unit, currency, effective_from, is_current, price_per_kg, source_system)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)
		RETURNING `+priceColumns+`
	`, p.MaterialID, p.Price, p.PriceUnit, p.Currency, p.EffectiveFrom, perKg, p.SourceSystem)

	inserted, err := scanPrice(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inserted, nil
}
