package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/church-backend/internal/middleware"
	"github.com/baharkarakas/church-backend/internal/models"
)

const (
	churchID = "7a1f2c3d-0000-4000-8000-000000000001"
	eventID  = "7a1f2c3d-0000-4000-8000-0000000000e1"
	regID    = "7a1f2c3d-0000-4000-8000-0000000000a1"
	userID   = "7a1f2c3d-0000-4000-8000-0000000000b1"
)

// newReq builds a request carrying chi URL params and, when role is set, an authenticated principal.
func newReq(method, target string, body io.Reader, role models.Role, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	if role != "" {
		ctx = middleware.WithUser(ctx, middleware.UserCtx{UserID: userID, Role: string(role), ChurchID: churchID})
	}
	return r.WithContext(ctx)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
