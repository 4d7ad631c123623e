package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type storesRepo struct{ pool *pgxpool.Pool }

func (r *storesRepo) Create(ctx context.Context, s models.Store) (models.Store, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO stores(id, name, email, address, owner_id)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, name, email, address, owner_id, created_at`,
		s.ID, s.Name, s.Email, s.Address, s.OwnerID,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt)
	return s, err
}

func (r *storesRepo) List(ctx context.Context, f repo.StoreFilter, ratingUserID string) ([]models.StoreListing, error) {
	withUser := ratingUserID != ""

	q := `SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
	             COALESCE(AVG(r.rating), 0)::float8 AS average_rating,
	             COUNT(r.id) AS total_ratings,
	             COALESCE(u.name, '') AS owner_name`
	if withUser {
		q += `, ur.rating AS user_rating`
	}
	q += `
	        FROM stores s
	        LEFT JOIN ratings r ON r.store_id = s.id
	        LEFT JOIN users u ON u.id = s.owner_id`
	if withUser {
		q += `
	        LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $2`
	}
	q += `
	       WHERE ($1 = '' OR s.name ILIKE '%'||$1||'%' OR s.email ILIKE '%'||$1||'%'
	              OR s.address ILIKE '%'||$1||'%' OR u.name ILIKE '%'||$1||'%')
	       GROUP BY s.id, u.name`
	if withUser {
		q += `, ur.rating`
	}
	q += `
	       ORDER BY ` + orderClause(storeSortColumns, f.Sort, f.Order, "name")

	args := []any{f.Search}
	if withUser {
		args = append(args, ratingUserID)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StoreListing
	for rows.Next() {
		var l models.StoreListing
		dest := []any{&l.ID, &l.Name, &l.Email, &l.Address, &l.OwnerID, &l.CreatedAt,
			&l.AverageRating, &l.TotalRatings, &l.OwnerName}
		if withUser {
			dest = append(dest, &l.UserRating)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *storesRepo) GetByOwner(ctx context.Context, ownerID string) (models.OwnedStore, error) {
	var s models.OwnedStore
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		        COALESCE(AVG(r.rating), 0)::float8
		   FROM stores s
		   LEFT JOIN ratings r ON r.store_id = s.id
		  WHERE s.owner_id = $1
		  GROUP BY s.id
		  LIMIT 1`,
		ownerID,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.AverageRating)
	return s, err
}

func (r *storesRepo) RatingsFor(ctx context.Context, storeID string) ([]models.StoreRatingEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.name, u.email, r.rating, r.created_at
		   FROM ratings r
		   JOIN users u ON u.id = r.user_id
		  WHERE r.store_id = $1
		  ORDER BY r.created_at DESC`,
		storeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StoreRatingEntry
	for rows.Next() {
		var e models.StoreRatingEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Email, &e.Rating, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *storesRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM stores WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

func (r *storesRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n)
	return n, err
}
