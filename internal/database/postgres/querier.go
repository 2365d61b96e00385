package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/concretemix/smartmix/internal/domain"
)

// querier is the query surface shared by pgxpool.Pool and pgx.Tx, so read
// helpers work both on the pool and inside a snapshot transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getCurrentPrice(ctx context.Context, q querier, materialID int64) (*domain.MaterialPrice, error) {
	row := q.QueryRow(ctx, `
		SELECT `+priceColumns+`
		FROM material_prices
		WHERE material_id = $1 AND is_current
	`, materialID)
	return scanPrice(row)
}
