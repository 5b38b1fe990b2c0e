package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/auth"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
		known  bool
	}{
		{validate.Errs{{Field: "name", Msg: "required"}}, http.StatusBadRequest, "validation_error", true},
		{fmt.Errorf("get: %w", repo.ErrNotFound), http.StatusNotFound, "not_found", true},
		{repo.ErrConflict, http.StatusConflict, "conflict", true},
		{services.ErrInvalidTransition, http.StatusConflict, "invalid_transition", true},
		{services.ErrSoldOut, http.StatusConflict, "sold_out", true},
		{services.ErrEventFull, http.StatusConflict, "event_full", true},
		{services.ErrEventClosed, http.StatusConflict, "registrations_closed", true},
		{services.ErrRegistrationGone, http.StatusConflict, "registration_cancelled", true},
		{services.ErrForbidden, http.StatusForbidden, "forbidden", true},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", true},
		{auth.ErrWeakPassword, http.StatusBadRequest, "weak_password", true},
		{fmt.Errorf("%w: text/plain", services.ErrUnsupportedUpload), http.StatusUnsupportedMediaType, "unsupported_file", true},
		{services.ErrStorageDisabled, http.StatusServiceUnavailable, "storage_unavailable", true},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f, known := classify(tt.err)
			assert.Equal(t, tt.status, f.status)
			assert.Equal(t, tt.code, f.code)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestQueryMonth(t *testing.T) {
	r := newReq(http.MethodGet, "/x?month=2026-02", nil, "", nil)
	m, err := queryMonth(r)
	assert.NoError(t, err)
	assert.Equal(t, 2026, m.Year())
	assert.Equal(t, 2, int(m.Month()))

	_, err = queryMonth(newReq(http.MethodGet, "/x?month=feb", nil, "", nil))
	assert.Error(t, err)

	m, err = queryMonth(newReq(http.MethodGet, "/x", nil, "", nil))
	assert.NoError(t, err)
	assert.True(t, m.IsZero())
}
