package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

type AuthHandler struct {
	Svc *services.AuthService
	Log *slog.Logger
}

func NewAuthHandler(svc *services.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Log: log}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	auth.Pair
	Profile *models.Profile `json:"profile,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if err := validate.Collect(
		validate.Required("email", req.Email),
		validate.Required("password", req.Password),
	); err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	pair, p, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{Pair: pair, Profile: &p})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if err := validate.Collect(validate.Required("refresh_token", req.RefreshToken)); err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	pair, err := h.Svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{Pair: pair})
}
