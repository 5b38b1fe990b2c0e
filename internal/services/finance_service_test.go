package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/repository/mocks"
)

func newFinance() (*FinanceService, *mocks.Accounts, *mocks.Transactions) {
	a, tr := &mocks.Accounts{}, &mocks.Transactions{}
	s := NewFinanceService(a, tr, nil)
	s.now = func() time.Time { return now }
	return s, a, tr
}

func TestReconcileMath(t *testing.T) {
	tests := []struct {
		name       string
		acc        models.Account
		sum        int64
		wantComp   int64
		wantDiff   int64
		reconciled bool
	}{
		{"balanced", models.Account{OpeningBalance: 10000, Balance: 12500}, 2500, 12500, 0, true},
		{"stored too high", models.Account{OpeningBalance: 0, Balance: 700}, 500, 500, 200, false},
		{"negative ledger", models.Account{OpeningBalance: 1000, Balance: -300}, -1300, -300, 0, true},
		{"stored too low", models.Account{Balance: 0}, 100, 100, -100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reconcile(tt.acc, tt.sum, 3)
			assert.Equal(t, tt.wantComp, r.ComputedBalance)
			assert.Equal(t, tt.wantDiff, r.Difference)
			assert.Equal(t, tt.reconciled, r.Reconciled)
			assert.Equal(t, 3, r.TransactionCount)
		})
	}
}

func TestReconcileLoadsAccountAndLedger(t *testing.T) {
	s, a, tr := newFinance()
	a.On("GetByID", mock.Anything, "c1", "acc").Return(models.Account{ID: "acc", OpeningBalance: 100, Balance: 350}, nil)
	tr.On("SumSigned", mock.Anything, "c1", "acc").Return(int64(250), 4, nil)

	r, err := s.Reconcile(context.Background(), "c1", "acc")
	require.NoError(t, err)
	assert.True(t, r.Reconciled)
	assert.Equal(t, "acc", r.AccountID)

	a.On("GetByID", mock.Anything, "c1", "missing").Return(models.Account{}, repo.ErrNotFound)
	_, err = s.Reconcile(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRecord(t *testing.T) {
	s, _, tr := newFinance()
	const acc = "1b2c3d4e-5f60-4a7b-8c9d-0e1f2a3b4c5d"
	tr.On("CreateAndApply", mock.Anything, mock.MatchedBy(func(x models.Transaction) bool {
		return x.AccountID == acc && x.Type == models.TxnExpense && x.Amount == 1990 &&
			x.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(models.Transaction{ID: "t1", AccountID: acc, Type: models.TxnExpense, Amount: 1990}, nil)

	got, err := s.Record(context.Background(), "c1", "u1", TransactionInput{
		AccountID: acc, Type: models.TxnExpense, Amount: 1990, Category: "energia",
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, int64(-1990), got.Signed())
}

func TestRecordValidation(t *testing.T) {
	s, _, tr := newFinance()

	_, err := s.Record(context.Background(), "c1", "u1", TransactionInput{
		AccountID: "x", Type: "transfer", Amount: 0, Date: "10/03/2026",
	})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.Equal(t, map[string]bool{"account_id": true, "type": true, "amount": true, "category": true, "date": true}, fields)
	tr.AssertNotCalled(t, "CreateAndApply", mock.Anything, mock.Anything)
}

func TestMonthSummary(t *testing.T) {
	s, _, tr := newFinance()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tr.On("Totals", mock.Anything, "c1", from, to).Return(int64(50000), int64(32000), nil)

	sum, err := s.MonthSummary(context.Background(), "c1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(18000), sum.Net)
	assert.Equal(t, from, sum.From)

	tr2 := &mocks.Transactions{}
	s.trx = tr2
	tr2.On("Totals", mock.Anything, "c1", mock.Anything, mock.Anything).Return(int64(0), int64(0), errors.New("db down"))
	_, err = s.MonthSummary(context.Background(), "c1", now)
	assert.EqualError(t, err, "db down")
}

func TestMonthSummaryUsesUTCMonth(t *testing.T) {
	s, _, tr := newFinance()
	brt := time.FixedZone("BRT", -3*60*60)
	// 22:00 on Feb 28 in Brasília is already March 1 in UTC
	s.now = func() time.Time { return time.Date(2026, 2, 28, 22, 0, 0, 0, brt) }
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tr.On("Totals", mock.Anything, "c1", from, to).Return(int64(0), int64(0), nil)

	sum, err := s.MonthSummary(context.Background(), "c1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, from, sum.From)
	tr.AssertExpectations(t)
}

func TestDateOnlyIsUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	got := dateOnly(time.Date(2026, 2, 28, 22, 0, 0, 0, brt))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestListTransactionsRange(t *testing.T) {
	s, _, _ := newFinance()
	from, to := now, now.Add(-24*time.Hour)
	_, err := s.ListTransactions(context.Background(), "c1", models.TransactionFilter{From: &from, To: &to})
	var errs validate.Errs
	assert.ErrorAs(t, err, &errs)
}
