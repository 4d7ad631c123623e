package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminUserListing is a users-list row as the admin sees it: store owners
// carry their store (with its average rating) inline.
type AdminUserListing struct {
	User
	Store *OwnedStore `json:"store,omitempty"`
}
