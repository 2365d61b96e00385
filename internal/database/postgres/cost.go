package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// CostRepo implements repository.Cost over pgx. Snapshot reads run inside a
// REPEATABLE READ read-only transaction so one recommendation never sees a
// price replacement half-applied.
type CostRepo struct {
	pool *pgxpool.Pool
}

func NewCostRepo(pool *pgxpool.Pool) *CostRepo {
	return &CostRepo{pool: pool}
}

func (r *CostRepo) FindApprovedRecipesByGrade(ctx context.Context, strengthGrade string) ([]domain.MixRecipe, error) {
	return findApprovedRecipesByGrade(ctx, r.pool, strengthGrade)
}

func (r *CostRepo) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	return getCurrentPrice(ctx, r.pool, materialID)
}

func (r *CostRepo) BeginSnapshot(ctx context.Context) (repository.CostSnapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	return &costSnapshot{tx: tx}, nil
}

type costSnapshot struct {
	tx pgx.Tx
}

func (s *costSnapshot) FindApprovedRecipesByGrade(ctx context.Context, strengthGrade string) ([]domain.MixRecipe, error) {
	return findApprovedRecipesByGrade(ctx, s.tx, strengthGrade)
}

func (s *costSnapshot) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	return getCurrentPrice(ctx, s.tx, materialID)
}

func (s *costSnapshot) Close(ctx context.Context) error {
	return s.tx.Rollback(ctx)
}

// findApprovedRecipesByGrade returns costing candidates in a deterministic
// order (oldest first) with their items in stored order.
func findApprovedRecipesByGrade(ctx context.Context, q querier, strengthGrade string) ([]domain.MixRecipe, error) {
	rows, err := q.Query(ctx, `
		SELECT `+recipeColumns+`
		FROM mix_recipes
		WHERE strength_grade = $1 AND status = $2
		ORDER BY id
	`, strengthGrade, string(domain.RecipeStatusApproved))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []domain.MixRecipe{}
	ids := []int64{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
		ids = append(ids, recipe.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(ids) == 0 {
		return recipes, nil
	}

	items, err := loadItems(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Items = items[recipes[i].ID]
	}
	return recipes, nil
}
