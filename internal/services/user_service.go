package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sanskrutigadekar/rating-platform/internal/api/validate"
	"github.com/sanskrutigadekar/rating-platform/internal/auth"
	"github.com/sanskrutigadekar/rating-platform/internal/metrics"
	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type UserService struct {
	users  repo.Users
	stores repo.Stores
	tm     *auth.TokenManager
	audit  *Auditor
}

func NewUserService(users repo.Users, stores repo.Stores, tm *auth.TokenManager, audit *Auditor) *UserService {
	return &UserService{users: users, stores: stores, tm: tm, audit: audit}
}

// Register creates an account after the fixed-order field validation.
// Also backs admin user creation, which may pass any valid role.
func (s *UserService) Register(ctx context.Context, name, email, password, address, role string) (models.User, error) {
	if role == "" {
		role = string(models.RoleUser)
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return models.User{}, ErrInvalidRole
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validate.Account(name, email, password, address); err != nil {
		return models.User{}, err
	}
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.users.Create(ctx, models.User{
		Name: name, Email: email, PasswordHash: hash, Address: address, Role: r,
	})
	if err != nil {
		return models.User{}, err
	}
	s.audit.Record("user", u.ID, "created", map[string]any{"role": string(r)})
	return u, nil
}

// Login verifies credentials and issues the session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.LoginsFailed.Inc()
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.LoginsFailed.Inc()
		return "", models.User{}, ErrInvalidCredentials
	}
	token, err := s.tm.Generate(u)
	if err != nil {
		return "", models.User{}, err
	}
	metrics.LoginsTotal.Inc()
	return token, u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return ErrPasswordsRequired
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if err := auth.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrCurrentPassword
	}
	if err := validate.Password(next); err != nil {
		return err
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	s.audit.Record("user", userID, "password_changed", nil)
	return nil
}

// AdminList returns users matching the filter; store owners carry their
// store (with its average rating) inline.
func (s *UserService) AdminList(ctx context.Context, f repo.UserFilter) ([]models.AdminUserListing, error) {
	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.AdminUserListing, 0, len(users))
	for _, u := range users {
		row := models.AdminUserListing{User: u}
		if u.Role == models.RoleStoreOwner {
			st, err := s.stores.GetByOwner(ctx, u.ID)
			switch {
			case err == nil:
				st.AverageRating = round1(st.AverageRating)
				row.Store = &st
			case errors.Is(err, pgx.ErrNoRows):
				// owner without a store yet
			default:
				return nil, err
			}
		}
		out = append(out, row)
	}
	return out, nil
}
