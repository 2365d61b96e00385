package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// MixRepo implements repository.Mix over pgx.
type MixRepo struct {
	pool *pgxpool.Pool
}

func NewMixRepo(pool *pgxpool.Pool) *MixRepo {
	return &MixRepo{pool: pool}
}

const recipeColumns = `id, recipe_code, strength_grade, COALESCE(slump,''), COALESCE(technical_requirements,''), COALESCE(remarks,''), status, created_at, updated_at`

func scanRecipe(row pgx.Row) (*domain.MixRecipe, error) {
	var r domain.MixRecipe
	err := row.Scan(
		&r.ID,
		&r.RecipeCode,
		&r.StrengthGrade,
		&r.Slump,
		&r.TechnicalRequirements,
		&r.Remarks,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (r *MixRepo) GetByID(ctx context.Context, id int64) (*domain.MixRecipe, error) {
	return getRecipeWithItems(ctx, r.pool, id)
}

func getRecipeWithItems(ctx context.Context, q querier, id int64) (*domain.MixRecipe, error) {
	row := q.QueryRow(ctx, `
		SELECT `+recipeColumns+`
		FROM mix_recipes
		WHERE id = $1
	`, id)
	recipe, err := scanRecipe(row)
	if err != nil || recipe == nil {
		return recipe, err
	}

	items, err := loadItems(ctx, q, []int64{recipe.ID})
	if err != nil {
		return nil, err
	}
	recipe.Items = items[recipe.ID]
	return recipe, nil
}

// loadItems fetches the item lines for a set of recipes in stored order,
// with material fields resolved.
func loadItems(ctx context.Context, q querier, recipeIDs []int64) (map[int64][]domain.MixRecipeItem, error) {
	rows, err := q.Query(ctx, `
		SELECT i.mix_recipe_id, i.id, i.material_id, m.material_code, m.description, m.base_unit, i.dosage_per_m3, COALESCE(i.remarks,'')
		FROM mix_recipe_items i
		JOIN materials m ON m.id = i.material_id
		WHERE i.mix_recipe_id = ANY($1)
		ORDER BY i.mix_recipe_id, i.position, i.id
	`, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]domain.MixRecipeItem, len(recipeIDs))
	for rows.Next() {
		var recipeID int64
		var item domain.MixRecipeItem
		if err := rows.Scan(
			&recipeID,
			&item.ID,
			&item.MaterialID,
			&item.MaterialCode,
			&item.MaterialName,
			&item.MaterialUnit,
			&item.DosagePerM3,
			&item.Remarks,
		); err != nil {
			return nil, err
		}
		out[recipeID] = append(out[recipeID], item)
	}
	return out, rows.Err()
}

func (r *MixRepo) ExistsByCode(ctx context.Context, recipeCode string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM mix_recipes WHERE recipe_code = $1)`,
		recipeCode).Scan(&exists)
	return exists, err
}

func (r *MixRepo) List(ctx context.Context, filter repository.RecipeFilter) ([]domain.MixRecipe, int64, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.StrengthGrade != "" {
		args = append(args, filter.StrengthGrade)
		where += fmt.Sprintf(" AND strength_grade = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM mix_recipes"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	q := "SELECT " + recipeColumns + " FROM mix_recipes" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.MixRecipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MixRepo) Create(ctx context.Context, recipe domain.MixRecipe) (*domain.MixRecipe, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO mix_recipes (recipe_code, strength_grade, slump, technical_requirements, remarks, status)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), $6)
		RETURNING id
	`, recipe.RecipeCode, recipe.StrengthGrade, recipe.Slump, recipe.TechnicalRequirements, recipe.Remarks, string(recipe.Status)).Scan(&id)
	if err != nil {
		return nil, err
	}

	if err := insertItems(ctx, tx, id, recipe.Items); err != nil {
		return nil, err
	}

	created, err := getRecipeWithItems(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// Update rewrites the mutable recipe fields and replaces the item list
// wholesale in one transaction.
func (r *MixRepo) Update(ctx context.Context, recipe domain.MixRecipe) (*domain.MixRecipe, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE mix_recipes SET
			slump = NULLIF($2,''),
			technical_requirements = NULLIF($3,''),
			remarks = NULLIF($4,''),
			updated_at = NOW()
		WHERE id = $1
	`, recipe.ID, recipe.Slump, recipe.TechnicalRequirements, recipe.Remarks)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM mix_recipe_items WHERE mix_recipe_id = $1`, recipe.ID); err != nil {
		return nil, err
	}
	if err := insertItems(ctx, tx, recipe.ID, recipe.Items); err != nil {
		return nil, err
	}

	updated, err := getRecipeWithItems(ctx, tx, recipe.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, recipeID int64, items []domain.MixRecipeItem) error {
	for pos, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO mix_recipe_items (mix_recipe_id, material_id, dosage_per_m3, position, remarks)
			VALUES ($1, $2, $3, $4, NULLIF($5,''))
		`, recipeID, item.MaterialID, item.DosagePerM3, pos, item.Remarks)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *MixRepo) UpdateStatus(ctx context.Context, id int64, status domain.RecipeStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE mix_recipes SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}
