package services

import "errors"

// Sentinel errors whose messages go straight into the {"error": ...} body.
// Handlers map them to 400/404; anything else is a 500.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrRatingRange        = errors.New("Rating must be between 1 and 5")
	ErrStoreRequired      = errors.New("Store ID is required")
	ErrStoreNotFound      = errors.New("Store not found")
	ErrNoStore            = errors.New("No store found for this user")
	ErrUserNotFound       = errors.New("User not found")
	ErrPasswordsRequired  = errors.New("Both passwords are required")
	ErrCurrentPassword    = errors.New("Current password is incorrect")
	ErrOwnerInvalid       = errors.New("Owner must be an existing store owner")
)
