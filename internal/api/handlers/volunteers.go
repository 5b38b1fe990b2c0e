package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

type VolunteersHandler struct {
	Svc *services.VolunteerService
	Log *slog.Logger
}

func NewVolunteersHandler(svc *services.VolunteerService, log *slog.Logger) *VolunteersHandler {
	return &VolunteersHandler{Svc: svc, Log: log}
}

func (h *VolunteersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Svc.List(r.Context(), principal(r).ChurchID, models.VolunteerStatus(q.Get("status")), q.Get("ministry"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *VolunteersHandler) Move(w http.ResponseWriter, r *http.Request) {
	status, err := decodeStatus(w, r)
	if err != nil {
		writeErrOrBadRequest(w, r, h.Log, err)
		return
	}
	u := principal(r)
	v, err := h.Svc.Move(r.Context(), u.ChurchID, u.UserID, chi.URLParam(r, "id"), models.VolunteerStatus(status))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}
