package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/config"
	"github.com/baharkarakas/church-backend/internal/logger"
	"github.com/baharkarakas/church-backend/internal/middleware"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/repository/mocks"
	"github.com/baharkarakas/church-backend/internal/services"
)

const (
	testChurch = "7a1f2c3d-0000-4000-8000-000000000001"
	testUser   = "7a1f2c3d-0000-4000-8000-0000000000b1"
)

type routerFixture struct {
	h        http.Handler
	tm       *auth.TokenManager
	accounts *mocks.Accounts
	profiles *mocks.Profiles
}

func newRouterFixture(t *testing.T, opts ...func(*config.Config)) routerFixture {
	t.Helper()
	tm := auth.NewTokenManager("a-secret", "r-secret", "test", time.Minute, time.Hour)
	accounts := &mocks.Accounts{}
	profiles, events, regs := &mocks.Profiles{}, &mocks.Events{}, &mocks.Registrations{}
	prayers, testimonies, volunteers := &mocks.PrayerRequests{}, &mocks.Testimonies{}, &mocks.Volunteers{}
	finance := services.NewFinanceService(accounts, &mocks.Transactions{}, nil)

	cfg := config.Config{
		RateRPS:       0,
		CORSOrigins:   []string{"*"},
		WebhookSecret: "hook",
	}
	for _, o := range opts {
		o(&cfg)
	}
	h := NewRouter(RouterDeps{
		Cfg:        cfg,
		Log:        logger.Discard(),
		TM:         tm,
		Auth:       services.NewAuthService(profiles, tm),
		People:     services.NewPeopleService(profiles, nil),
		Events:     services.NewEventService(events, regs, nil),
		Finance:    finance,
		Pastoral:   services.NewPastoralService(&mocks.Churches{}, prayers, testimonies, nil),
		Volunteers: services.NewVolunteerService(profiles, volunteers, nil),
		Liturgy:    services.NewLiturgyService(&mocks.Liturgies{}),
		Biometric:  services.NewBiometricService(&mocks.Credentials{}),
		Dashboard:  services.NewDashboardService(profiles, events, prayers, testimonies, volunteers, finance),
	})
	return routerFixture{h: h, tm: tm, accounts: accounts, profiles: profiles}
}

func (f routerFixture) token(t *testing.T, role models.Role) string {
	t.Helper()
	p, err := f.tm.GeneratePair(testUser, string(role), testChurch)
	require.NoError(t, err)
	return "Bearer " + p.AccessToken
}

func (f routerFixture) do(method, path, authz string, body string, header ...string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if authz != "" {
		r.Header.Set("Authorization", authz)
	}
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, r)
	return rec
}

func TestHealthAndRequestID(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	f := newRouterFixture(t)
	for _, path := range []string{"/api/v1/people", "/api/v1/finance/accounts", "/api/v1/dashboard", "/api/v1/me/biometric"} {
		rec := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestFinanceIsRestrictedToTreasury(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.On("List", mock.Anything, testChurch).Return([]models.Account{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/finance/accounts", f.token(t, models.RoleLeader), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/finance/accounts", f.token(t, models.RoleMember), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/finance/accounts", f.token(t, models.RoleTreasurer), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	f.accounts.AssertExpectations(t)
}

func TestWebhooksCheckSecret(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/webhooks/prayer-requests", "", `{"church_id":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	rec = f.do(http.MethodPost, "/webhooks/prayer-requests", "", `{"church_id":"x"}`, middleware.WebhookSecretHeader, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/webhooks/prayer-requests", "", `{"church_id":"x"}`, middleware.WebhookSecretHeader, "hook")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid payload")
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/public/events/"+testChurch+"/registrations", "", `{"name":"","phone":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderCannotPromoteSelf(t *testing.T) {
	f := newRouterFixture(t)
	f.profiles.On("GetByID", mock.Anything, testChurch, testUser).
		Return(models.Profile{ID: testUser, ChurchID: testChurch, Role: models.RoleLeader}, nil)

	body := `{"name":"Lia","phone":"11987654321","status":"membro","role":"admin"}`
	rec := f.do(http.MethodPut, "/api/v1/people/"+testUser, f.token(t, models.RoleLeader), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"forbidden"`)
	f.profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLeaderCannotDeleteAdmin(t *testing.T) {
	f := newRouterFixture(t)
	admin := "7a1f2c3d-0000-4000-8000-0000000000c1"
	f.profiles.On("GetByID", mock.Anything, testChurch, admin).
		Return(models.Profile{ID: admin, ChurchID: testChurch, Role: models.RoleAdmin}, nil)

	rec := f.do(http.MethodDelete, "/api/v1/people/"+admin, f.token(t, models.RoleLeader), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestRateLimitHonoursProxyOnlyWhenTrusted(t *testing.T) {
	limited := func(c *config.Config) { c.RateRPS, c.RateBurst = 1, 1 }
	codes := func(f routerFixture) []int {
		var out []int
		for _, ip := range []string{"198.51.100.1", "198.51.100.2"} {
			r := httptest.NewRequest(http.MethodGet, "/health", nil)
			r.RemoteAddr = "10.0.0.9:5000"
			r.Header.Set("X-Forwarded-For", ip)
			rec := httptest.NewRecorder()
			f.h.ServeHTTP(rec, r)
			out = append(out, rec.Code)
		}
		return out
	}

	direct := newRouterFixture(t, limited)
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes(direct))

	proxied := newRouterFixture(t, limited, func(c *config.Config) { c.TrustProxy = true })
	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes(proxied))
}
