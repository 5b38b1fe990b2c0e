package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/services"
)

type LiturgyHandler struct {
	Svc *services.LiturgyService
	Log *slog.Logger
}

func NewLiturgyHandler(svc *services.LiturgyService, log *slog.Logger) *LiturgyHandler {
	return &LiturgyHandler{Svc: svc, Log: log}
}

func (h *LiturgyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.LiturgyInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	l, err := h.Svc.Create(r.Context(), principal(r).ChurchID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, l)
}

func (h *LiturgyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	list, err := h.Svc.List(r.Context(), principal(r).ChurchID, limit, offset)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *LiturgyHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var in services.ItemInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	it, err := h.Svc.AddItem(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"), in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, it)
}

func (h *LiturgyHandler) Playlist(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Playlist(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *LiturgyHandler) CreateSong(w http.ResponseWriter, r *http.Request) {
	var in services.SongInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	s, err := h.Svc.CreateSong(r.Context(), principal(r).ChurchID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, s)
}

func (h *LiturgyHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListSongs(r.Context(), principal(r).ChurchID)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *LiturgyHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in services.AnnouncementInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	a, err := h.Svc.CreateAnnouncement(r.Context(), principal(r).ChurchID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

func (h *LiturgyHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit, _ := httpx.Page(r, defaultPage, maxPage)
	list, err := h.Svc.ListAnnouncements(r.Context(), principal(r).ChurchID, limit)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
