package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

const avatarField = "file"

type PeopleHandler struct {
	Svc *services.PeopleService
	Log *slog.Logger
}

func NewPeopleHandler(svc *services.PeopleService, log *slog.Logger) *PeopleHandler {
	return &PeopleHandler{Svc: svc, Log: log}
}

func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.PersonInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	u := principal(r)
	p, err := h.Svc.Register(r.Context(), u.ChurchID, models.Role(u.Role), in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	q := r.URL.Query()
	list, err := h.Svc.List(r.Context(), principal(r).ChurchID, models.ProfileFilter{
		Query:  q.Get("q"),
		Status: models.MemberStatus(q.Get("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Get(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.PersonInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	u := principal(r)
	p, err := h.Svc.Update(r.Context(), u.ChurchID, chi.URLParam(r, "id"), models.Role(u.Role), in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u := principal(r)
	if err := h.Svc.Delete(r.Context(), u.ChurchID, chi.URLParam(r, "id"), models.Role(u.Role)); err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadAvatar takes a multipart form with the image in the "file" field.
// The content type is sniffed from the bytes, not trusted from the client.
func (h *PeopleHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxAvatarBytes+(1<<20))
	file, _, err := r.FormFile(avatarField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "too_large", "file exceeds 5 MiB", nil)
			return
		}
		badRequest(w, fmt.Errorf("multipart field %q: %w", avatarField, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxAvatarBytes+1))
	if err != nil {
		badRequest(w, err)
		return
	}
	if len(data) > services.MaxAvatarBytes {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, "too_large", "file exceeds 5 MiB", nil)
		return
	}

	p, err := h.Svc.UploadAvatar(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"), data, http.DetectContentType(data))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Links(w http.ResponseWriter, r *http.Request) {
	l, err := h.Svc.Links(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, l)
}
