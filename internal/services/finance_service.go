package services

import (
	"context"
	"strings"
	"time"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/metrics"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

type FinanceService struct {
	accounts repo.Accounts
	trx      repo.Transactions
	audit    *Auditor
	now      func() time.Time
}

func NewFinanceService(a repo.Accounts, t repo.Transactions, au *Auditor) *FinanceService {
	return &FinanceService{accounts: a, trx: t, audit: au, now: time.Now}
}

// ----------------- Accounts -----------------

type AccountInput struct {
	Name           string `json:"name"`
	OpeningBalance int64  `json:"opening_balance"`
}

func (s *FinanceService) CreateAccount(ctx context.Context, churchID, actorID string, in AccountInput) (models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Collect(
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 120),
	); err != nil {
		return models.Account{}, err
	}
	a, err := s.accounts.Create(ctx, models.Account{
		ChurchID:       churchID,
		Name:           in.Name,
		OpeningBalance: in.OpeningBalance,
		Balance:        in.OpeningBalance,
	})
	if err != nil {
		return models.Account{}, err
	}
	s.audit.Record(churchID, actorID, "account", a.ID, "created", map[string]any{"opening_balance": a.OpeningBalance})
	return a, nil
}

func (s *FinanceService) ListAccounts(ctx context.Context, churchID string) ([]models.Account, error) {
	return s.accounts.List(ctx, churchID)
}

// ----------------- Transactions -----------------

type TransactionInput struct {
	AccountID   string                 `json:"account_id"`
	Type        models.TransactionType `json:"type"`
	Amount      int64                  `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"` // YYYY-MM-DD, defaults to today
}

// Record stores a transaction and moves the account balance in the same database transaction.
func (s *FinanceService) Record(ctx context.Context, churchID, actorID string, in TransactionInput) (models.Transaction, error) {
	in.Category = strings.TrimSpace(in.Category)
	var dateErr *validate.ErrField
	date := dateOnly(s.now())
	if v := strings.TrimSpace(in.Date); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			dateErr = &validate.ErrField{Field: "date", Msg: "must be YYYY-MM-DD"}
		}
		date = d
	}
	if err := validate.Collect(
		validate.UUID("account_id", in.AccountID),
		validate.OneOf("type", string(in.Type), string(models.TxnIncome), string(models.TxnExpense)),
		validate.MinInt("amount", in.Amount, 1),
		validate.Required("category", in.Category),
		validate.MaxLen("description", in.Description, 500),
		dateErr,
	); err != nil {
		return models.Transaction{}, err
	}

	t, err := s.trx.CreateAndApply(ctx, models.Transaction{
		ChurchID:    churchID,
		AccountID:   in.AccountID,
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	})
	if err != nil {
		return models.Transaction{}, err
	}
	metrics.FinanceTransactionsTotal.WithLabelValues(string(t.Type)).Inc()
	s.audit.Record(churchID, actorID, "transaction", t.ID, "created", map[string]any{
		"account_id": t.AccountID,
		"type":       string(t.Type),
		"amount":     t.Amount,
	})
	return t, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, churchID string, f models.TransactionFilter) ([]models.Transaction, error) {
	var accErr, rangeErr *validate.ErrField
	if f.AccountID != "" {
		accErr = validate.UUID("account_id", f.AccountID)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		rangeErr = &validate.ErrField{Field: "to", Msg: "must not be before from"}
	}
	if err := validate.Collect(accErr, rangeErr); err != nil {
		return nil, err
	}
	return s.trx.List(ctx, churchID, f)
}

// ----------------- Reconciliation -----------------

// Reconcile recomputes an account balance from its ledger and compares it to the stored one.
func Reconcile(acc models.Account, signedSum int64, count int) models.Reconciliation {
	computed := acc.OpeningBalance + signedSum
	diff := acc.Balance - computed
	return models.Reconciliation{
		AccountID:        acc.ID,
		OpeningBalance:   acc.OpeningBalance,
		StoredBalance:    acc.Balance,
		ComputedBalance:  computed,
		Difference:       diff,
		TransactionCount: count,
		Reconciled:       diff == 0,
	}
}

func (s *FinanceService) Reconcile(ctx context.Context, churchID, accountID string) (models.Reconciliation, error) {
	acc, err := s.accounts.GetByID(ctx, churchID, accountID)
	if err != nil {
		return models.Reconciliation{}, err
	}
	sum, n, err := s.trx.SumSigned(ctx, churchID, accountID)
	if err != nil {
		return models.Reconciliation{}, err
	}
	return Reconcile(acc, sum, n), nil
}

// MonthSummary totals the calendar month containing at.
func (s *FinanceService) MonthSummary(ctx context.Context, churchID string, at time.Time) (models.FinanceSummary, error) {
	if at.IsZero() {
		at = s.now()
	}
	at = at.UTC()
	from := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	income, expense, err := s.trx.Totals(ctx, churchID, from, to)
	if err != nil {
		return models.FinanceSummary{}, err
	}
	return models.FinanceSummary{
		From:    from,
		To:      to,
		Income:  income,
		Expense: expense,
		Net:     income - expense,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
