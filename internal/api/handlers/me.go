package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/services"
)

// MeHandler serves routes about the authenticated user: biometric credentials and the dashboard.
type MeHandler struct {
	Biometric *services.BiometricService
	Dashboard *services.DashboardService
	Log       *slog.Logger
}

func NewMeHandler(b *services.BiometricService, d *services.DashboardService, log *slog.Logger) *MeHandler {
	return &MeHandler{Biometric: b, Dashboard: d, Log: log}
}

func (h *MeHandler) EnrollBiometric(w http.ResponseWriter, r *http.Request) {
	var in services.EnrollInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	c, err := h.Biometric.Enroll(r.Context(), principal(r).UserID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *MeHandler) ListBiometric(w http.ResponseWriter, r *http.Request) {
	list, err := h.Biometric.List(r.Context(), principal(r).UserID)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *MeHandler) RemoveBiometric(w http.ResponseWriter, r *http.Request) {
	if err := h.Biometric.Remove(r.Context(), principal(r).UserID, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MeHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Get(r.Context(), principal(r).ChurchID)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}
