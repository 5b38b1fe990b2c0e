package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/church-backend/internal/api/httpx"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

type FinanceHandler struct {
	Svc *services.FinanceService
	Log *slog.Logger
}

func NewFinanceHandler(svc *services.FinanceService, log *slog.Logger) *FinanceHandler {
	return &FinanceHandler{Svc: svc, Log: log}
}

func (h *FinanceHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var in services.AccountInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	u := principal(r)
	a, err := h.Svc.CreateAccount(r.Context(), u.ChurchID, u.UserID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

func (h *FinanceHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListAccounts(r.Context(), principal(r).ChurchID)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *FinanceHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.Reconcile(r.Context(), principal(r).ChurchID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

func (h *FinanceHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in services.TransactionInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	u := principal(r)
	t, err := h.Svc.Record(r.Context(), u.ChurchID, u.UserID, in)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

// ListTransactions accepts account_id, from and to (YYYY-MM-DD, inclusive).
func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	limit, offset := httpx.Page(r, defaultPage, maxPage)
	list, err := h.Svc.ListTransactions(r.Context(), principal(r).ChurchID, models.TransactionFilter{
		AccountID: r.URL.Query().Get("account_id"),
		From:      from,
		To:        to,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// Summary totals the month given as ?month=YYYY-MM, defaulting to the current one.
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	at, err := queryMonth(r)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	s, err := h.Svc.MonthSummary(r.Context(), principal(r).ChurchID, at)
	if err != nil {
		writeErr(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}
