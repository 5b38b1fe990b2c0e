package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/middleware"
	"github.com/baharkarakas/church-backend/internal/services"
)

// WebhookHandler receives payloads from outside automations (forms, kiosks, chat bots).
// Every answer uses the {success, data | error} envelope.
type WebhookHandler struct {
	Pastoral   *services.PastoralService
	Events     *services.EventService
	Volunteers *services.VolunteerService
	Log        *slog.Logger
}

func NewWebhookHandler(p *services.PastoralService, e *services.EventService, v *services.VolunteerService, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{Pastoral: p, Events: e, Volunteers: v, Log: log}
}

func (h *WebhookHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	f, known := classify(err)
	if !known {
		h.Log.Error("webhook failed",
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
			"err", err,
		)
	}
	msg := f.msg
	if f.code == "validation_error" {
		msg = "invalid payload"
	}
	httpx.WriteFailure(w, f.status, msg, f.details)
}

func (h *WebhookHandler) PrayerRequest(w http.ResponseWriter, r *http.Request) {
	var in services.PrayerInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	p, err := h.Pastoral.SubmitPrayer(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, p)
}

func (h *WebhookHandler) Testimony(w http.ResponseWriter, r *http.Request) {
	var in services.TestimonyInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	t, err := h.Pastoral.SubmitTestimony(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, t)
}

func (h *WebhookHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var in services.CheckInInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	res, err := h.Events.CheckIn(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyCheckedIn {
		status = http.StatusOK
	}
	httpx.WriteSuccess(w, status, res)
}

func (h *WebhookHandler) Volunteer(w http.ResponseWriter, r *http.Request) {
	var in services.VolunteerApplication
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	v, err := h.Volunteers.Apply(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, v)
}
