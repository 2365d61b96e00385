package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concretemix/smartmix/internal/domain"
)

// SyncLogRepo implements repository.SyncLog over pgx.
type SyncLogRepo struct {
	pool *pgxpool.Pool
}

func NewSyncLogRepo(pool *pgxpool.Pool) *SyncLogRepo {
	return &SyncLogRepo{pool: pool}
}

const syncLogColumns = `id, direction, data_type, COALESCE(payload,''), status, COALESCE(error_message,''), COALESCE(source_ip,''), created_at`

func scanSyncLog(row pgx.Row) (*domain.SyncLog, error) {
	var l domain.SyncLog
	err := row.Scan(
		&l.ID,
		&l.Direction,
		&l.DataType,
		&l.Payload,
		&l.Status,
		&l.ErrorMessage,
		&l.SourceIP,
		&l.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SyncLogRepo) Create(ctx context.Context, l domain.SyncLog) (*domain.SyncLog, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sync_logs (direction, data_type, payload, status, error_message, source_ip)
		VALUES ($1, $2, NULLIF($3,''), $4, NULLIF($5,''), NULLIF($6,''))
		RETURNING `+syncLogColumns+`
	`, string(l.Direction), string(l.DataType), l.Payload, string(l.Status), l.ErrorMessage, l.SourceIP)
	return scanSyncLog(row)
}

func (r *SyncLogRepo) ListRecent(ctx context.Context, limit int) ([]domain.SyncLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+syncLogColumns+`
		FROM sync_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SyncLog{}
	for rows.Next() {
		l, err := scanSyncLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}
