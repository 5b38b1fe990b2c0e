package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/logger"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/repository/mocks"
	"github.com/baharkarakas/church-backend/internal/services"
)

type webhookFixture struct {
	h           *WebhookHandler
	prayers     *mocks.PrayerRequests
	testimonies *mocks.Testimonies
	regs        *mocks.Registrations
	profiles    *mocks.Profiles
	volunteers  *mocks.Volunteers
}

func newWebhookFixture() webhookFixture {
	f := webhookFixture{
		prayers:     &mocks.PrayerRequests{},
		testimonies: &mocks.Testimonies{},
		regs:        &mocks.Registrations{},
		profiles:    &mocks.Profiles{},
		volunteers:  &mocks.Volunteers{},
	}
	pastoral := services.NewPastoralService(&mocks.Churches{}, f.prayers, f.testimonies, nil)
	events := services.NewEventService(&mocks.Events{}, f.regs, nil)
	volunteers := services.NewVolunteerService(f.profiles, f.volunteers, nil)
	f.h = NewWebhookHandler(pastoral, events, volunteers, logger.Discard())
	return f
}

func TestWebhookPrayerRequest(t *testing.T) {
	f := newWebhookFixture()
	f.prayers.On("Create", mock.Anything, mock.MatchedBy(func(p models.PrayerRequest) bool {
		return p.ChurchID == churchID && p.Status == models.PrayerNew && *p.Phone == "11988887777"
	})).Return(models.PrayerRequest{ID: "p1", ChurchID: churchID, Name: "Maria", Status: models.PrayerNew}, nil)

	rec := httptest.NewRecorder()
	f.h.PrayerRequest(rec, newReq(http.MethodPost, "/webhooks/prayer-requests", jsonBody(t, map[string]any{
		"church_id": churchID,
		"name":      "Maria",
		"phone":     "(11) 98888-7777",
		"request":   "Pela família",
	}), "", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode[httpx.Envelope](t, rec)
	assert.True(t, env.Success)
	f.prayers.AssertExpectations(t)
}

func TestWebhookRejectsBadPayloads(t *testing.T) {
	f := newWebhookFixture()

	rec := httptest.NewRecorder()
	f.h.PrayerRequest(rec, newReq(http.MethodPost, "/webhooks/prayer-requests", strings.NewReader("{"), "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode[httpx.Envelope](t, rec).Success)

	rec = httptest.NewRecorder()
	f.h.PrayerRequest(rec, newReq(http.MethodPost, "/webhooks/prayer-requests", jsonBody(t, map[string]any{
		"church_id": "nope",
	}), "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[httpx.Envelope](t, rec)
	assert.Equal(t, "invalid payload", env.Error)
	assert.NotNil(t, env.Details)
	f.prayers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookCheckIn(t *testing.T) {
	body := func(t *testing.T) *http.Request {
		return newReq(http.MethodPost, "/webhooks/checkin", jsonBody(t, map[string]any{
			"church_id":       churchID,
			"event_id":        eventID,
			"registration_id": regID,
			"source":          "kiosk",
		}), "", nil)
	}
	reg := models.Registration{ID: regID, ChurchID: churchID, EventID: eventID, Status: models.RegistrationConfirmed}

	t.Run("first scan", func(t *testing.T) {
		f := newWebhookFixture()
		f.regs.On("GetByID", mock.Anything, churchID, regID).Return(reg, nil)
		f.regs.On("CheckIn", mock.Anything, mock.MatchedBy(func(c models.Checkin) bool {
			return c.RegistrationID == regID && c.Source == "kiosk"
		}), mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		f.h.CheckIn(rec, body(t))
		assert.Equal(t, http.StatusCreated, rec.Code)
		f.regs.AssertExpectations(t)
	})

	t.Run("second scan", func(t *testing.T) {
		f := newWebhookFixture()
		done := reg
		stamp := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
		done.CheckedInAt = &stamp
		f.regs.On("GetByID", mock.Anything, churchID, regID).Return(done, nil)

		rec := httptest.NewRecorder()
		f.h.CheckIn(rec, body(t))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"already_checked_in":true`)
		f.regs.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown registration", func(t *testing.T) {
		f := newWebhookFixture()
		f.regs.On("GetByID", mock.Anything, churchID, regID).Return(models.Registration{}, repo.ErrNotFound)

		rec := httptest.NewRecorder()
		f.h.CheckIn(rec, body(t))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, decode[httpx.Envelope](t, rec).Success)
	})

	t.Run("cancelled registration", func(t *testing.T) {
		f := newWebhookFixture()
		gone := reg
		gone.Status = models.RegistrationCancelled
		f.regs.On("GetByID", mock.Anything, churchID, regID).Return(gone, nil)

		rec := httptest.NewRecorder()
		f.h.CheckIn(rec, body(t))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestWebhookTestimony(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]any
		setup  func(f webhookFixture)
		status int
		errMsg string
	}{
		{
			name: "stored as pending",
			body: map[string]any{"church_id": churchID, "name": "Carla", "content": "Fui curada", "allow_publish": true},
			setup: func(f webhookFixture) {
				f.testimonies.On("Create", mock.Anything, mock.MatchedBy(func(x models.Testimony) bool {
					return x.Status == models.TestimonyPending && x.AllowPublish && x.Phone == nil
				})).Return(models.Testimony{ID: "t1", ChurchID: churchID, Status: models.TestimonyPending}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "missing content",
			body:   map[string]any{"church_id": churchID, "name": "Carla"},
			status: http.StatusBadRequest,
			errMsg: "invalid payload",
		},
		{
			name: "unknown church",
			body: map[string]any{"church_id": churchID, "name": "Carla", "content": "Obrigada"},
			setup: func(f webhookFixture) {
				f.testimonies.On("Create", mock.Anything, mock.Anything).Return(models.Testimony{}, repo.ErrNotFound)
			},
			status: http.StatusNotFound,
			errMsg: "not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			rec := httptest.NewRecorder()
			f.h.Testimony(rec, newReq(http.MethodPost, "/webhooks/testimonies", jsonBody(t, tt.body), "", nil))

			assert.Equal(t, tt.status, rec.Code)
			env := decode[httpx.Envelope](t, rec)
			assert.Equal(t, tt.status == http.StatusCreated, env.Success)
			assert.Equal(t, tt.errMsg, env.Error)
			if env.Success {
				assert.Equal(t, "t1", env.Data.(map[string]any)["id"])
			}
			if tt.status == http.StatusBadRequest {
				assert.NotNil(t, env.Details)
				f.testimonies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestWebhookVolunteer(t *testing.T) {
	valid := map[string]any{
		"church_id": churchID,
		"name":      "Davi",
		"phone":     "(11) 91234-5678",
		"ministry":  "louvor",
	}
	known := models.Profile{ID: "p1", ChurchID: churchID, Name: "Davi Souza", Phone: "11912345678"}

	tests := []struct {
		name   string
		body   map[string]any
		setup  func(f webhookFixture)
		status int
		errMsg string
	}{
		{
			name: "new person",
			body: valid,
			setup: func(f webhookFixture) {
				f.profiles.On("GetByPhone", mock.Anything, churchID, "11912345678").Return(models.Profile{}, repo.ErrNotFound)
				f.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p models.Profile) bool {
					return p.Status == models.StatusVisitor && p.Role == models.RoleMember
				})).Return(models.Profile{ID: "p2", Name: "Davi"}, nil)
				f.volunteers.On("Create", mock.Anything, mock.MatchedBy(func(v models.Volunteer) bool {
					return v.ProfileID == "p2" && v.Status == models.VolunteerApplied
				})).Return(models.Volunteer{ID: "v1", ProfileID: "p2", Ministry: "louvor"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name: "known phone reuses profile",
			body: valid,
			setup: func(f webhookFixture) {
				f.profiles.On("GetByPhone", mock.Anything, churchID, "11912345678").Return(known, nil)
				f.volunteers.On("Create", mock.Anything, mock.MatchedBy(func(v models.Volunteer) bool {
					return v.ProfileID == "p1"
				})).Return(models.Volunteer{ID: "v1", ProfileID: "p1", Ministry: "louvor"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name: "already applied to ministry",
			body: valid,
			setup: func(f webhookFixture) {
				f.profiles.On("GetByPhone", mock.Anything, churchID, "11912345678").Return(known, nil)
				f.volunteers.On("Create", mock.Anything, mock.Anything).Return(models.Volunteer{}, repo.ErrConflict)
			},
			status: http.StatusConflict,
			errMsg: "already exists",
		},
		{
			name:   "missing ministry",
			body:   map[string]any{"church_id": churchID, "name": "Davi", "phone": "11912345678"},
			status: http.StatusBadRequest,
			errMsg: "invalid payload",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			rec := httptest.NewRecorder()
			f.h.Volunteer(rec, newReq(http.MethodPost, "/webhooks/volunteers", jsonBody(t, tt.body), "", nil))

			assert.Equal(t, tt.status, rec.Code)
			env := decode[httpx.Envelope](t, rec)
			assert.Equal(t, tt.status == http.StatusCreated, env.Success)
			assert.Equal(t, tt.errMsg, env.Error)
			if env.Success {
				assert.Equal(t, "v1", env.Data.(map[string]any)["id"])
			}
			if tt.status == http.StatusBadRequest {
				assert.NotNil(t, env.Details)
				f.volunteers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}
