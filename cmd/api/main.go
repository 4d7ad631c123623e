package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanskrutigadekar/rating-platform/internal/api"
	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/config"
	"github.com/sanskrutigadekar/rating-platform/internal/db"
	"github.com/sanskrutigadekar/rating-platform/internal/logger"
	"github.com/sanskrutigadekar/rating-platform/internal/metrics"
	"github.com/sanskrutigadekar/rating-platform/internal/repository/postgres"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
	"github.com/sanskrutigadekar/rating-platform/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, 24*time.Hour)
	auditor := services.NewAuditor(repos.AuditLogs, wp)

	userSvc := services.NewUserService(repos.Users, repos.Stores, tm, auditor)
	storeSvc := services.NewStoreService(repos.Stores, repos.Users, auditor)
	ratingSvc := services.NewRatingService(repos.Ratings, repos.Stores, auditor)
	statsSvc := services.NewStatsService(repos.Users, repos.Stores, repos.Ratings)

	r := api.NewRouter(api.RouterDeps{
		Cfg:       cfg,
		TM:        tm,
		UserSvc:   userSvc,
		StoreSvc:  storeSvc,
		RatingSvc: ratingSvc,
		StatsSvc:  statsSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "cors_origin", cfg.CORSOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
