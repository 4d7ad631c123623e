package repository

import (
	"context"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
)

// UserFilter narrows and orders the admin user listing. Sort/Order are
// normalized against an allow-list before reaching SQL.
type UserFilter struct {
	Search string
	Role   string
	Sort   string
	Order  string
}

// StoreFilter narrows and orders store listings.
type StoreFilter struct {
	Search string
	Sort   string
	Order  string
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f UserFilter) ([]models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

type Stores interface {
	Create(ctx context.Context, s models.Store) (models.Store, error)
	// List joins rating aggregates and the owner's name. When ratingUserID
	// is non-empty each row also carries that user's own rating.
	List(ctx context.Context, f StoreFilter, ratingUserID string) ([]models.StoreListing, error)
	GetByOwner(ctx context.Context, ownerID string) (models.OwnedStore, error)
	RatingsFor(ctx context.Context, storeID string) ([]models.StoreRatingEntry, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type Ratings interface {
	// Upsert writes the caller's rating for a store atomically; created
	// reports whether a new row was inserted rather than overwritten.
	Upsert(ctx context.Context, storeID, userID string, value int) (created bool, err error)
	Count(ctx context.Context) (int64, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
