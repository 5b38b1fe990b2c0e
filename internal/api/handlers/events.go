package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/services"
)

type EventsHandler struct {
	Svc *services.EventService
	Log *slog.Logger
}

func NewEventsHandler(svc *services.EventService, log *slog.Logger) *EventsHandler {
	return &EventsHandler{Svc: svc, Log: log}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.EventInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	e, err := h.Svc.CreateEvent(r.Context(), principal(r).ChurchID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

// List returns upcoming events; ?from=YYYY-MM-DD moves the start.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	var since time.Time
	if from != nil {
		since = *from
	}
	limit, _ := httpx.Page(r, defaultPage, maxPage)
	list, err := h.Svc.ListEvents(r.Context(), principal(r).ChurchID, since, limit)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.GetEvent(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *EventsHandler) CreateTier(w http.ResponseWriter, r *http.Request) {
	var in services.TierInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	t, err := h.Svc.CreateTier(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"), in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *EventsHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListTiers(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *EventsHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	list, err := h.Svc.ListRegistrations(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"), limit, offset)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *EventsHandler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	u := principal(r)
	reg, err := h.Svc.Cancel(r.Context(), u.ChurchID, u.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "rid"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reg)
}

// ----------------- Public -----------------

func (h *EventsHandler) PublicGet(w http.ResponseWriter, r *http.Request) {
	pe, err := h.Svc.PublicEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pe)
}

func (h *EventsHandler) PublicRegister(w http.ResponseWriter, r *http.Request) {
	var in services.RegistrationInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	rec, err := h.Svc.Register(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rec)
}
