package handlers

import (
	"net/http"

	"github.com/sanskrutigadekar/rating-platform/internal/api/httpx"
	"github.com/sanskrutigadekar/rating-platform/internal/middleware"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
)

type StoreHandler struct {
	Stores *services.StoreService
}

func NewStoreHandler(ss *services.StoreService) *StoreHandler {
	return &StoreHandler{Stores: ss}
}

func storeFilterFrom(r *http.Request) repo.StoreFilter {
	q := r.URL.Query()
	return repo.StoreFilter{
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
	}
}

// List serves GET /api/stores for any authenticated role.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	listings, err := h.Stores.List(r.Context(), storeFilterFrom(r), claims)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if listings == nil {
		listings = []models.StoreListing{}
	}
	httpx.WriteJSON(w, http.StatusOK, listings)
}

// OwnerDashboard serves GET /api/store-owner/dashboard.
func (h *StoreHandler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Access denied")
		return
	}
	dash, err := h.Stores.OwnerDashboard(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dash)
}
