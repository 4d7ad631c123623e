package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ratingsRepo struct{ pool *pgxpool.Pool }

// Upsert is a single atomic statement, so two concurrent submissions from
// the same user can never produce duplicate rows. xmax = 0 only for rows
// this statement inserted, which tells apart insert from overwrite.
func (r *ratingsRepo) Upsert(ctx context.Context, storeID, userID string, value int) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ratings(id, store_id, user_id, rating)
		 VALUES($1,$2,$3,$4)
		 ON CONFLICT (store_id, user_id) DO UPDATE
		 SET rating = EXCLUDED.rating, updated_at = now()
		 RETURNING (xmax = 0)`,
		uuid.NewString(), storeID, userID, value,
	).Scan(&created)
	return created, err
}

func (r *ratingsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n)
	return n, err
}
