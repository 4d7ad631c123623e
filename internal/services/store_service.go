package services

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/sanskrutigadekar/rating-platform/internal/api/validate"
	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type StoreService struct {
	stores repo.Stores
	users  repo.Users
	audit  *Auditor
}

func NewStoreService(stores repo.Stores, users repo.Users, audit *Auditor) *StoreService {
	return &StoreService{stores: stores, users: users, audit: audit}
}

// List returns stores with rating aggregates. Callers with role "user"
// additionally see their own prior rating per store.
func (s *StoreService) List(ctx context.Context, f repo.StoreFilter, caller *auth.Claims) ([]models.StoreListing, error) {
	ratingUserID := ""
	if caller != nil && caller.Role == models.RoleUser {
		ratingUserID = caller.UserID
	}
	listings, err := s.stores.List(ctx, f, ratingUserID)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		listings[i].AverageRating = round1(listings[i].AverageRating)
	}
	return listings, nil
}

func (s *StoreService) Create(ctx context.Context, name, email, address, ownerID string) (models.Store, error) {
	if name == "" || email == "" || address == "" || ownerID == "" {
		return models.Store{}, validate.ErrFieldsRequired
	}
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Store{}, ErrOwnerInvalid
		}
		return models.Store{}, err
	}
	if owner.Role != models.RoleStoreOwner {
		return models.Store{}, ErrOwnerInvalid
	}
	st, err := s.stores.Create(ctx, models.Store{Name: name, Email: email, Address: address, OwnerID: ownerID})
	if err != nil {
		return models.Store{}, err
	}
	s.audit.Record("store", st.ID, "created", map[string]any{"owner_id": ownerID})
	return st, nil
}

// OwnerDashboard returns the caller's store and all its ratings, newest
// first. A store owner without a store gets ErrNoStore (404).
func (s *StoreService) OwnerDashboard(ctx context.Context, ownerID string) (models.OwnerDashboard, error) {
	st, err := s.stores.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.OwnerDashboard{}, ErrNoStore
		}
		return models.OwnerDashboard{}, err
	}
	st.AverageRating = round1(st.AverageRating)

	ratings, err := s.stores.RatingsFor(ctx, st.ID)
	if err != nil {
		return models.OwnerDashboard{}, err
	}
	return models.OwnerDashboard{Store: st, Ratings: ratings}, nil
}

// Averages are presented to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
