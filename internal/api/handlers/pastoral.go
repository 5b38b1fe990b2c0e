package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

const publicTestimonies = 20

type PastoralHandler struct {
	Svc *services.PastoralService
	Log *slog.Logger
}

func NewPastoralHandler(svc *services.PastoralService, log *slog.Logger) *PastoralHandler {
	return &PastoralHandler{Svc: svc, Log: log}
}

type statusReq struct {
	Status string `json:"status"`
}

func decodeStatus(w http.ResponseWriter, r *http.Request) (string, error) {
	var req statusReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return "", err
	}
	if err := validate.Collect(validate.Required("status", req.Status)); err != nil {
		return "", err
	}
	return req.Status, nil
}

// ----------------- Prayer requests -----------------

func (h *PastoralHandler) ListPrayers(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	status := models.PrayerStatus(r.URL.Query().Get("status"))
	list, err := h.Svc.ListPrayers(r.Context(), principal(r).ChurchID, status, limit, offset)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *PastoralHandler) GetPrayer(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetPrayer(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PastoralHandler) MovePrayer(w http.ResponseWriter, r *http.Request) {
	status, err := decodeStatus(w, r)
	if err != nil {
		writeErrOrBadRequest(w, r, h.Log, err)
		return
	}
	u := principal(r)
	p, err := h.Svc.MovePrayer(r.Context(), u.ChurchID, u.UserID, chi.URLParam(r, "id"), models.PrayerStatus(status))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// ----------------- Testimonies -----------------

func (h *PastoralHandler) ListTestimonies(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	status := models.TestimonyStatus(r.URL.Query().Get("status"))
	list, err := h.Svc.ListTestimonies(r.Context(), principal(r).ChurchID, status, limit, offset)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *PastoralHandler) ModerateTestimony(w http.ResponseWriter, r *http.Request) {
	status, err := decodeStatus(w, r)
	if err != nil {
		writeErrOrBadRequest(w, r, h.Log, err)
		return
	}
	u := principal(r)
	t, err := h.Svc.ModerateTestimony(r.Context(), u.ChurchID, u.UserID, chi.URLParam(r, "id"), models.TestimonyStatus(status))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *PastoralHandler) PublicTestimonies(w http.ResponseWriter, r *http.Request) {
	limit, _ := httpx.Page(r, publicTestimonies, maxPage)
	list, err := h.Svc.PublicTestimonies(r.Context(), chi.URLParam(r, "churchID"), limit)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
