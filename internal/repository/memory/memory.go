// Package memory implements the repository interfaces in process memory.
// It exists for tests: it mirrors the Postgres behavior closely enough to
// drive the services and the router without a database, including the
// aggregation, search and ORDER BY allow-list semantics.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
)

type Repos struct {
	Users     repo.Users
	Stores    repo.Stores
	Ratings   repo.Ratings
	AuditLogs repo.AuditLogs

	state *state
}

type state struct {
	mu      sync.Mutex
	users   []models.User
	stores  []models.Store
	ratings []models.Rating
	audits  []models.AuditLog
}

func New() *Repos {
	st := &state{}
	return &Repos{
		Users:     &usersRepo{st},
		Stores:    &storesRepo{st},
		Ratings:   &ratingsRepo{st},
		AuditLogs: &auditRepo{st},
		state:     st,
	}
}

// AllRatings returns a snapshot, for assertions on stored rows.
func (r *Repos) AllRatings() []models.Rating {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]models.Rating, len(r.state.ratings))
	copy(out, r.state.ratings)
	return out
}

// AllAudits returns a snapshot of recorded audit rows.
func (r *Repos) AllAudits() []models.AuditLog {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]models.AuditLog, len(r.state.audits))
	copy(out, r.state.audits)
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ---------- users ----------

type usersRepo struct{ st *state }

func (r *usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.st.users = append(r.st.users, u)
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (r *usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (r *usersRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *usersRepo) List(_ context.Context, f repo.UserFilter) ([]models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var out []models.User
	for _, u := range r.st.users {
		if f.Search != "" && !containsFold(u.Name, f.Search) &&
			!containsFold(u.Email, f.Search) && !containsFold(u.Address, f.Search) {
			continue
		}
		if f.Role != "" && string(u.Role) != f.Role {
			continue
		}
		out = append(out, u)
	}

	less := func(a, b models.User) bool { return a.Name < b.Name }
	switch f.Sort {
	case "email":
		less = func(a, b models.User) bool { return a.Email < b.Email }
	case "address":
		less = func(a, b models.User) bool { return a.Address < b.Address }
	case "role":
		less = func(a, b models.User) bool { return a.Role < b.Role }
	case "created_at":
		less = func(a, b models.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == "desc" {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

func (r *usersRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.users {
		if r.st.users[i].ID == id {
			r.st.users[i].PasswordHash = hash
			r.st.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *usersRepo) Count(_ context.Context) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return int64(len(r.st.users)), nil
}

// ---------- stores ----------

type storesRepo struct{ st *state }

func (r *storesRepo) Create(_ context.Context, s models.Store) (models.Store, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	r.st.stores = append(r.st.stores, s)
	return s, nil
}

func (r *storesRepo) aggregates(storeID string) (avg float64, total int) {
	var sum int
	for _, rt := range r.st.ratings {
		if rt.StoreID == storeID {
			sum += rt.Value
			total++
		}
	}
	if total > 0 {
		avg = float64(sum) / float64(total)
	}
	return avg, total
}

func (r *storesRepo) ownerName(ownerID string) string {
	for _, u := range r.st.users {
		if u.ID == ownerID {
			return u.Name
		}
	}
	return ""
}

func (r *storesRepo) List(_ context.Context, f repo.StoreFilter, ratingUserID string) ([]models.StoreListing, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	var out []models.StoreListing
	for _, s := range r.st.stores {
		owner := r.ownerName(s.OwnerID)
		if f.Search != "" && !containsFold(s.Name, f.Search) && !containsFold(s.Email, f.Search) &&
			!containsFold(s.Address, f.Search) && !containsFold(owner, f.Search) {
			continue
		}
		l := models.StoreListing{Store: s, OwnerName: owner}
		l.AverageRating, l.TotalRatings = r.aggregates(s.ID)
		if ratingUserID != "" {
			for _, rt := range r.st.ratings {
				if rt.StoreID == s.ID && rt.UserID == ratingUserID {
					v := rt.Value
					l.UserRating = &v
					break
				}
			}
		}
		out = append(out, l)
	}

	less := func(a, b models.StoreListing) bool { return a.Name < b.Name }
	switch f.Sort {
	case "email":
		less = func(a, b models.StoreListing) bool { return a.Email < b.Email }
	case "address":
		less = func(a, b models.StoreListing) bool { return a.Address < b.Address }
	case "average_rating":
		less = func(a, b models.StoreListing) bool { return a.AverageRating < b.AverageRating }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == "desc" {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

func (r *storesRepo) GetByOwner(_ context.Context, ownerID string) (models.OwnedStore, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.stores {
		if s.OwnerID == ownerID {
			out := models.OwnedStore{Store: s}
			out.AverageRating, _ = r.aggregates(s.ID)
			return out, nil
		}
	}
	return models.OwnedStore{}, pgx.ErrNoRows
}

func (r *storesRepo) RatingsFor(_ context.Context, storeID string) ([]models.StoreRatingEntry, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []models.StoreRatingEntry
	for _, rt := range r.st.ratings {
		if rt.StoreID != storeID {
			continue
		}
		e := models.StoreRatingEntry{UserID: rt.UserID, Rating: rt.Value, CreatedAt: rt.CreatedAt}
		for _, u := range r.st.users {
			if u.ID == rt.UserID {
				e.Name, e.Email = u.Name, u.Email
				break
			}
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].CreatedAt.Before(out[i].CreatedAt) })
	return out, nil
}

func (r *storesRepo) Exists(_ context.Context, id string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.stores {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *storesRepo) Count(_ context.Context) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return int64(len(r.st.stores)), nil
}

// ---------- ratings ----------

type ratingsRepo struct{ st *state }

func (r *ratingsRepo) Upsert(_ context.Context, storeID, userID string, value int) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.ratings {
		if r.st.ratings[i].StoreID == storeID && r.st.ratings[i].UserID == userID {
			r.st.ratings[i].Value = value
			r.st.ratings[i].UpdatedAt = time.Now()
			return false, nil
		}
	}
	now := time.Now()
	r.st.ratings = append(r.st.ratings, models.Rating{
		ID: uuid.NewString(), StoreID: storeID, UserID: userID, Value: value,
		CreatedAt: now, UpdatedAt: now,
	})
	return true, nil
}

func (r *ratingsRepo) Count(_ context.Context) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return int64(len(r.st.ratings)), nil
}

// ---------- audit ----------

type auditRepo struct{ st *state }

func (r *auditRepo) Create(_ context.Context, l models.AuditLog) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()
	r.st.audits = append(r.st.audits, l)
	return nil
}
