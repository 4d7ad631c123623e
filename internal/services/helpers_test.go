package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	"github.com/sanskrutigadekar/rating-platform/internal/repository/memory"
	"github.com/sanskrutigadekar/rating-platform/internal/worker"
)

type env struct {
	repos   *memory.Repos
	wp      *worker.Pool
	users   *UserService
	stores  *StoreService
	ratings *RatingService
	stats   *StatsService
	tm      *auth.TokenManager
}

func newEnv(t *testing.T) *env {
	t.Helper()
	repos := memory.New()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)

	tm := auth.NewTokenManager("test-secret", "rating-platform", 24*time.Hour)
	auditor := NewAuditor(repos.AuditLogs, wp)

	return &env{
		repos:   repos,
		wp:      wp,
		users:   NewUserService(repos.Users, repos.Stores, tm, auditor),
		stores:  NewStoreService(repos.Stores, repos.Users, auditor),
		ratings: NewRatingService(repos.Ratings, repos.Stores, auditor),
		stats:   NewStatsService(repos.Users, repos.Stores, repos.Ratings),
		tm:      tm,
	}
}

func name20(prefix string) string {
	return (prefix + strings.Repeat("x", 20))[:20]
}

func (e *env) mustRegister(t *testing.T, name, email, role string) models.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), name, email, "Abc!defg", "1 Test Lane", role)
	require.NoError(t, err)
	return u
}

func (e *env) mustCreateStore(t *testing.T, name, email, ownerID string) models.Store {
	t.Helper()
	s, err := e.stores.Create(context.Background(), name, email, "9 Market Square", ownerID)
	require.NoError(t, err)
	return s
}
