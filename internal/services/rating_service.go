package services

import (
	"context"

	"github.com/sanskrutigadekar/rating-platform/internal/metrics"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type RatingService struct {
	ratings repo.Ratings
	stores  repo.Stores
	audit   *Auditor
}

func NewRatingService(ratings repo.Ratings, stores repo.Stores, audit *Auditor) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, audit: audit}
}

// Submit upserts the caller's rating for a store. Exactly one rating per
// (store, user) pair ever exists; a resubmission overwrites the value.
// created reports insert (201) vs overwrite (200).
func (s *RatingService) Submit(ctx context.Context, storeID, userID string, value int) (created bool, err error) {
	if value < 1 || value > 5 {
		return false, ErrRatingRange
	}
	if storeID == "" {
		return false, ErrStoreRequired
	}
	exists, err := s.stores.Exists(ctx, storeID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrStoreNotFound
	}

	created, err = s.ratings.Upsert(ctx, storeID, userID, value)
	if err != nil {
		return false, err
	}
	action := "updated"
	if created {
		action = "created"
	}
	metrics.RatingsTotal.WithLabelValues(action).Inc()
	s.audit.Record("rating", storeID, action, map[string]any{"user_id": userID, "rating": value})
	return created, nil
}
