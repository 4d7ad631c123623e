package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanskrutigadekar/rating-platform/client"
	"github.com/sanskrutigadekar/rating-platform/internal/api"
	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/config"
	"github.com/sanskrutigadekar/rating-platform/internal/repository/memory"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
	"github.com/sanskrutigadekar/rating-platform/internal/worker"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repos := memory.New()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)

	tm := auth.NewTokenManager("test-secret", "rating-platform", 24*time.Hour)
	auditor := services.NewAuditor(repos.AuditLogs, wp)
	userSvc := services.NewUserService(repos.Users, repos.Stores, tm, auditor)
	storeSvc := services.NewStoreService(repos.Stores, repos.Users, auditor)
	ratingSvc := services.NewRatingService(repos.Ratings, repos.Stores, auditor)
	statsSvc := services.NewStatsService(repos.Users, repos.Stores, repos.Ratings)

	srv := httptest.NewServer(api.NewRouter(api.RouterDeps{
		Cfg:       config.Config{Env: "test", CORSOrigin: "http://localhost:3000", RateRPS: 1000},
		TM:        tm,
		UserSvc:   userSvc,
		StoreSvc:  storeSvc,
		RatingSvc: ratingSvc,
		StatsSvc:  statsSvc,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := client.New(srv.URL)
	require.NoError(t, admin.Register(ctx, client.RegisterInput{
		Name: "Administrator Longname Example", Email: "admin@example.com",
		Password: "Abc!defg", Address: "1 Admin Way", Role: "admin",
	}))
	_, err := admin.Login(ctx, "admin@example.com", "Abc!defg")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.Token)

	require.NoError(t, admin.AdminCreateUser(ctx, client.RegisterInput{
		Name: "Ownerette von Longname Jr", Email: "owner@example.com",
		Password: "Abc!defg", Address: "2 Owner Road", Role: "store_owner",
	}))
	owners, err := admin.AdminUsers(ctx, client.ListOptions{}, "store_owner")
	require.NoError(t, err)
	require.Len(t, owners, 1)

	require.NoError(t, admin.AdminCreateStore(ctx, client.CreateStoreInput{
		Name: "Corner Shop", Email: "shop@example.com", Address: "3 Market Street",
		OwnerID: owners[0].ID,
	}))

	// a plain user rates the store through their own session
	user := client.New(srv.URL)
	require.NoError(t, user.Register(ctx, client.RegisterInput{
		Name: "Wilhelmina Featherstonehaugh", Email: "user@example.com",
		Password: "Abc!defg", Address: "4 User Close",
	}))
	_, err = user.Login(ctx, "user@example.com", "Abc!defg")
	require.NoError(t, err)

	stores, err := user.Stores(ctx, client.ListOptions{})
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.NoError(t, user.SubmitRating(ctx, stores[0].ID, 5))

	stores, err = user.Stores(ctx, client.ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 5, *stores[0].UserRating)
	assert.Equal(t, 5.0, stores[0].AverageRating)

	stats, err := admin.AdminStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Users)
	assert.EqualValues(t, 1, stats.Stores)
	assert.EqualValues(t, 1, stats.Ratings)
}

func TestSessionErrorsAreTyped(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	s := client.New(srv.URL)
	err := s.Register(ctx, client.RegisterInput{
		Name: "short", Email: "x@example.com", Password: "Abc!defg", Address: "addr",
	})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Name must be 20-60 characters", apiErr.Message)

	// tokenless sessions get the distinct missing-token status
	_, err = s.AdminStats(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestTwoSessionsAreIndependent(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	a := client.New(srv.URL)
	require.NoError(t, a.Register(ctx, client.RegisterInput{
		Name: "Wilhelmina Featherstonehaugh", Email: "a@example.com",
		Password: "Abc!defg", Address: "addr",
	}))
	_, err := a.Login(ctx, "a@example.com", "Abc!defg")
	require.NoError(t, err)

	b := client.New(srv.URL)
	assert.Empty(t, b.Token, "logging in one session must not leak into another")
}
