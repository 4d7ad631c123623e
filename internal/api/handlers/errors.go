package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanskrutigadekar/rating-platform/internal/api/httpx"
	"github.com/sanskrutigadekar/rating-platform/internal/api/validate"
	"github.com/sanskrutigadekar/rating-platform/internal/services"
)

var badRequestErrs = []error{
	validate.ErrFieldsRequired,
	validate.ErrNameLength,
	validate.ErrAddressLength,
	validate.ErrPasswordLength,
	validate.ErrPasswordCompose,
	validate.ErrEmailFormat,
	services.ErrInvalidCredentials,
	services.ErrEmailTaken,
	services.ErrInvalidRole,
	services.ErrRatingRange,
	services.ErrStoreRequired,
	services.ErrStoreNotFound,
	services.ErrPasswordsRequired,
	services.ErrCurrentPassword,
	services.ErrOwnerInvalid,
}

var notFoundErrs = []error{
	services.ErrNoStore,
	services.ErrUserNotFound,
}

// writeServiceError maps known errors to 400/404 with their message as the
// body; anything else is a 500 whose detail stays in the server log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			httpx.WriteError(w, http.StatusBadRequest, e.Error())
			return
		}
	}
	for _, e := range notFoundErrs {
		if errors.Is(err, e) {
			httpx.WriteError(w, http.StatusNotFound, e.Error())
			return
		}
	}
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "Server error")
}
