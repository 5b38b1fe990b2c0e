// Package handlers adapts HTTP requests to the services.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/middleware"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/services"
)

const (
	defaultPage = 50
	maxPage     = 200
)

type failure struct {
	status  int
	code    string
	msg     string
	details interface{}
}

// classify maps service and repository errors onto HTTP answers.
// Unknown errors come back as 500 with ok == false.
func classify(err error) (f failure, ok bool) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		return failure{http.StatusBadRequest, "validation_error", "validation failed", verrs}, true
	case errors.Is(err, repo.ErrNotFound):
		return failure{http.StatusNotFound, "not_found", "not found", nil}, true
	case errors.Is(err, repo.ErrConflict):
		return failure{http.StatusConflict, "conflict", "already exists", nil}, true
	case errors.Is(err, services.ErrInvalidTransition):
		return failure{http.StatusConflict, "invalid_transition", err.Error(), nil}, true
	case errors.Is(err, services.ErrSoldOut):
		return failure{http.StatusConflict, "sold_out", err.Error(), nil}, true
	case errors.Is(err, services.ErrEventFull):
		return failure{http.StatusConflict, "event_full", err.Error(), nil}, true
	case errors.Is(err, services.ErrEventClosed):
		return failure{http.StatusConflict, "registrations_closed", err.Error(), nil}, true
	case errors.Is(err, services.ErrRegistrationGone):
		return failure{http.StatusConflict, "registration_cancelled", err.Error(), nil}, true
	case errors.Is(err, services.ErrForbidden):
		return failure{http.StatusForbidden, "forbidden", err.Error(), nil}, true
	case errors.Is(err, services.ErrInvalidCredentials):
		return failure{http.StatusUnauthorized, "invalid_credentials", err.Error(), nil}, true
	case errors.Is(err, auth.ErrWeakPassword):
		return failure{http.StatusBadRequest, "weak_password", err.Error(), nil}, true
	case errors.Is(err, services.ErrUnsupportedUpload):
		return failure{http.StatusUnsupportedMediaType, "unsupported_file", err.Error(), nil}, true
	case errors.Is(err, services.ErrStorageDisabled):
		return failure{http.StatusServiceUnavailable, "storage_unavailable", err.Error(), nil}, true
	}
	return failure{http.StatusInternalServerError, "internal_error", "internal error", nil}, false
}

// writeErr answers with the API error shape and logs anything unexpected.
func writeErr(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	f, known := classify(err)
	if !known {
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
			"err", err,
		)
	}
	httpx.WriteError(w, f.status, f.code, f.msg, f.details)
}

func badRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
}

// principal is set by the Auth middleware on every route that reaches these handlers.
func principal(r *http.Request) middleware.UserCtx {
	u, _ := middleware.FromCtx(r.Context())
	return u
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, key string) (*time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, validate.Errs{{Field: key, Msg: "must be YYYY-MM-DD"}}
	}
	return &d, nil
}

// queryMonth parses ?month=YYYY-MM; a missing value yields the zero time.
func queryMonth(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("month")
	if v == "" {
		return time.Time{}, nil
	}
	m, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, validate.Errs{{Field: "month", Msg: "must be YYYY-MM"}}
	}
	return m, nil
}

// writeErrOrBadRequest handles decode errors as 400 and everything else like writeErr.
func writeErrOrBadRequest(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if _, known := classify(err); known {
		writeErr(w, r, log, err)
		return
	}
	badRequest(w, err)
}
