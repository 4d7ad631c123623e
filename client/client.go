// Package client is a typed API client for the rating platform. All state
// a call needs (base URL, HTTP client, bearer token) lives on an explicit
// Session value; there are no package-level defaults to mutate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
)

type Session struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func New(baseURL string) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (s *Session) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		rdr = buf
	}
	u := s.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role,omitempty"`
}

func (s *Session) Register(ctx context.Context, in RegisterInput) error {
	return s.do(ctx, http.MethodPost, "/api/register", nil, in, nil)
}

type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID      string      `json:"id"`
		Name    string      `json:"name"`
		Email   string      `json:"email"`
		Role    models.Role `json:"role"`
		Address string      `json:"address"`
	} `json:"user"`
}

// Login authenticates and keeps the token on the session for later calls.
func (s *Session) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := s.do(ctx, http.MethodPost, "/api/login", nil,
		map[string]string{"email": email, "password": password}, &res)
	if err != nil {
		return LoginResult{}, err
	}
	s.Token = res.Token
	return res, nil
}

type ListOptions struct {
	Search string
	Sort   string
	Order  string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	return q
}

func (s *Session) Stores(ctx context.Context, opts ListOptions) ([]models.StoreListing, error) {
	var out []models.StoreListing
	err := s.do(ctx, http.MethodGet, "/api/stores", opts.query(), nil, &out)
	return out, err
}

func (s *Session) SubmitRating(ctx context.Context, storeID string, rating int) error {
	return s.do(ctx, http.MethodPost, "/api/ratings", nil,
		map[string]any{"store_id": storeID, "rating": rating}, nil)
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	return s.do(ctx, http.MethodPut, "/api/users/password", nil,
		map[string]string{"currentPassword": current, "newPassword": next}, nil)
}

func (s *Session) OwnerDashboard(ctx context.Context) (models.OwnerDashboard, error) {
	var out models.OwnerDashboard
	err := s.do(ctx, http.MethodGet, "/api/store-owner/dashboard", nil, nil, &out)
	return out, err
}

func (s *Session) AdminStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := s.do(ctx, http.MethodGet, "/api/admin/dashboard/stats", nil, nil, &out)
	return out, err
}

func (s *Session) AdminUsers(ctx context.Context, opts ListOptions, role string) ([]models.AdminUserListing, error) {
	q := opts.query()
	if role != "" {
		q.Set("role", role)
	}
	var out []models.AdminUserListing
	err := s.do(ctx, http.MethodGet, "/api/admin/users", q, nil, &out)
	return out, err
}

func (s *Session) AdminCreateUser(ctx context.Context, in RegisterInput) error {
	return s.do(ctx, http.MethodPost, "/api/admin/users", nil, in, nil)
}

func (s *Session) AdminStores(ctx context.Context, opts ListOptions) ([]models.StoreListing, error) {
	var out []models.StoreListing
	err := s.do(ctx, http.MethodGet, "/api/admin/stores", opts.query(), nil, &out)
	return out, err
}

type CreateStoreInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID string `json:"owner_id"`
}

func (s *Session) AdminCreateStore(ctx context.Context, in CreateStoreInput) error {
	return s.do(ctx, http.MethodPost, "/api/admin/stores", nil, in, nil)
}
