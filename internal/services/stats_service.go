package services

import (
	"context"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type StatsService struct {
	users   repo.Users
	stores  repo.Stores
	ratings repo.Ratings
}

func NewStatsService(users repo.Users, stores repo.Stores, ratings repo.Ratings) *StatsService {
	return &StatsService{users: users, stores: stores, ratings: ratings}
}

func (s *StatsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var st models.DashboardStats
	var err error
	if st.Users, err = s.users.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if st.Stores, err = s.stores.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if st.Ratings, err = s.ratings.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	return st, nil
}
