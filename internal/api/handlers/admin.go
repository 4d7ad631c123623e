package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sanskrutigadekar/rating-platform/internal/api/httpx"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
)

type AdminHandler struct {
	Users  *services.UserService
	Stores *services.StoreService
	Stats  *services.StatsService
}

func NewAdminHandler(us *services.UserService, ss *services.StoreService, st *services.StatsService) *AdminHandler {
	return &AdminHandler{Users: us, Stores: ss, Stats: st}
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.UserFilter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
	}
	users, err := h.Users.AdminList(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if users == nil {
		users = []models.AdminUserListing{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := h.Users.Register(r.Context(), req.Name, req.Email, req.Password, req.Address, req.Role); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "User added successfully"})
}

func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	// Admin listing never carries a per-user rating annotation.
	listings, err := h.Stores.List(r.Context(), storeFilterFrom(r), nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if listings == nil {
		listings = []models.StoreListing{}
	}
	httpx.WriteJSON(w, http.StatusOK, listings)
}

type createStoreReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID string `json:"owner_id"`
}

func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req createStoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := h.Stores.Create(r.Context(), req.Name, req.Email, req.Address, req.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Store added successfully"})
}
