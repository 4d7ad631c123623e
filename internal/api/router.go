package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sanskrutigadekar/rating-platform/internal/api/handlers"
	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/config"
	"github.com/sanskrutigadekar/rating-platform/internal/metrics"
	"github.com/sanskrutigadekar/rating-platform/internal/middleware"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
)

type RouterDeps struct {
	Cfg       config.Config
	TM        *auth.TokenManager
	UserSvc   *services.UserService
	StoreSvc  *services.StoreService
	RatingSvc *services.RatingService
	StatsSvc  *services.StatsService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.HTTPMetrics)

	authHandler := handlers.NewAuthHandler(d.UserSvc)
	userHandler := handlers.NewUserHandler(d.UserSvc)
	storeHandler := handlers.NewStoreHandler(d.StoreSvc)
	ratingHandler := handlers.NewRatingHandler(d.RatingSvc)
	adminHandler := handlers.NewAdminHandler(d.UserSvc, d.StoreSvc, d.StatsSvc)

	authMW := middleware.NewAuthMiddleware(d.TM)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// any authenticated role
		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)
			r.Get("/stores", storeHandler.List)
			r.Post("/ratings", ratingHandler.Submit)
			r.Put("/users/password", userHandler.ChangePassword)
		})

		// store owners only
		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth, middleware.RequireRole(models.RoleStoreOwner, "Store owner access required"))
			r.Get("/store-owner/dashboard", storeHandler.OwnerDashboard)
		})

		// admins only
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW.Auth, middleware.RequireRole(models.RoleAdmin, "Admin access required"))
			r.Get("/dashboard/stats", adminHandler.DashboardStats)
			r.Get("/users", adminHandler.ListUsers)
			r.Post("/users", adminHandler.CreateUser)
			r.Get("/stores", adminHandler.ListStores)
			r.Post("/stores", adminHandler.CreateStore)
		})
	})

	return r
}
