package models

import "time"

type TransactionType string

const (
	TxnIncome  TransactionType = "receita"
	TxnExpense TransactionType = "despesa"
)

func (t TransactionType) Valid() bool { return t == TxnIncome || t == TxnExpense }

// Account is a finance account (cash box, bank account). Amounts are cents.
type Account struct {
	ID             string    `json:"id"`
	ChurchID       string    `json:"church_id"`
	Name           string    `json:"name"`
	OpeningBalance int64     `json:"opening_balance"`
	Balance        int64     `json:"balance"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Transaction struct {
	ID          string          `json:"id"`
	ChurchID    string          `json:"church_id"`
	AccountID   string          `json:"account_id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Signed is the amount as it affects the account balance.
func (t Transaction) Signed() int64 {
	if t.Type == TxnExpense {
		return -t.Amount
	}
	return t.Amount
}

type TransactionFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type Reconciliation struct {
	AccountID        string `json:"account_id"`
	OpeningBalance   int64  `json:"opening_balance"`
	StoredBalance    int64  `json:"stored_balance"`
	ComputedBalance  int64  `json:"computed_balance"`
	Difference       int64  `json:"difference"`
	TransactionCount int    `json:"transaction_count"`
	Reconciled       bool   `json:"reconciled"`
}

type FinanceSummary struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
	Net     int64     `json:"net"`
}
