package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sanskrutigadekar/rating-platform/internal/api/httpx"
	"github.com/sanskrutigadekar/rating-platform/internal/middleware"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
)

type RatingHandler struct {
	Ratings *services.RatingService
}

func NewRatingHandler(rs *services.RatingService) *RatingHandler {
	return &RatingHandler{Ratings: rs}
}

type ratingReq struct {
	StoreID string `json:"store_id"`
	Rating  int    `json:"rating"`
}

// Submit serves POST /api/ratings: 201 on first rating, 200 on overwrite.
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Access denied")
		return
	}
	var req ratingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Ratings.Submit(r.Context(), req.StoreID, claims.UserID, req.Rating)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if created {
		httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Rating submitted successfully"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Rating updated successfully"})
}
