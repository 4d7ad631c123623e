package models

import "time"

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreListing is a stores-list row with rating aggregates joined in.
// UserRating is non-nil only when the caller has role "user" and has
// rated the store before; unrated rows serialize it as null.
type StoreListing struct {
	Store
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
	OwnerName     string  `json:"owner_name"`
	UserRating    *int    `json:"user_rating"`
}

// OwnedStore is a store as seen from its owner's side.
type OwnedStore struct {
	Store
	AverageRating float64 `json:"average_rating"`
}

// StoreRatingEntry is one rating of a store together with who left it.
type StoreRatingEntry struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerDashboard is the store-owner dashboard payload.
type OwnerDashboard struct {
	Store   OwnedStore         `json:"store"`
	Ratings []StoreRatingEntry `json:"ratings"`
}

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	Users   int64 `json:"users"`
	Stores  int64 `json:"stores"`
	Ratings int64 `json:"ratings"`
}
