package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountsRepo struct{ pool *pgxpool.Pool }

const accountCols = `id, igreja_id, nome, saldo_inicial, saldo, updated_at`

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.ChurchID, &a.Name, &a.OpeningBalance, &a.Balance, &a.UpdatedAt)
	return a, mapErr(err)
}

// Create opens the account with its stored balance equal to the opening balance.
func (r *accountsRepo) Create(ctx context.Context, a models.Account) (models.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return scanAccount(r.pool.QueryRow(ctx,
		`INSERT INTO contas_financeiras(id, igreja_id, nome, saldo_inicial, saldo)
		 VALUES($1,$2,$3,$4,$4)
		 RETURNING `+accountCols,
		a.ID, a.ChurchID, a.Name, a.OpeningBalance,
	))
}

func (r *accountsRepo) GetByID(ctx context.Context, churchID, id string) (models.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM contas_financeiras WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *accountsRepo) List(ctx context.Context, churchID string) ([]models.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountCols+` FROM contas_financeiras WHERE igreja_id=$1 ORDER BY nome`, churchID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type transactionsRepo struct{ pool *pgxpool.Pool }

const transactionCols = `id, igreja_id, conta_id, tipo, valor, categoria, descricao, data, created_at`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.ChurchID, &t.AccountID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.CreatedAt)
	return t, mapErr(err)
}

func (r *transactionsRepo) CreateAndApply(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	var out models.Transaction
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var balance int64
		// the account row lock also proves it belongs to the church
		if err := tx.QueryRow(ctx,
			`UPDATE contas_financeiras
			    SET saldo = saldo + $3, updated_at = now()
			  WHERE id=$1 AND igreja_id=$2
			  RETURNING saldo`,
			t.AccountID, t.ChurchID, t.Signed(),
		).Scan(&balance); err != nil {
			return err
		}

		var err error
		out, err = scanTransaction(tx.QueryRow(ctx,
			`INSERT INTO transacoes_financeiras(id, igreja_id, conta_id, tipo, valor, categoria, descricao, data)
			 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
			 RETURNING `+transactionCols,
			t.ID, t.ChurchID, t.AccountID, string(t.Type), t.Amount, t.Category, t.Description, t.Date,
		))
		return err
	})
	return out, err
}

func (r *transactionsRepo) List(ctx context.Context, churchID string, f models.TransactionFilter) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionCols+`
		   FROM transacoes_financeiras
		  WHERE igreja_id=$1
		    AND ($2 = '' OR conta_id::text = $2)
		    AND ($3::date IS NULL OR data >= $3)
		    AND ($4::date IS NULL OR data <= $4)
		  ORDER BY data DESC, created_at DESC
		  LIMIT $5 OFFSET $6`,
		churchID, f.AccountID, f.From, f.To, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) SumSigned(ctx context.Context, churchID, accountID string) (int64, int, error) {
	var sum int64
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(CASE WHEN tipo='receita' THEN valor ELSE -valor END), 0)::bigint, count(*)
		   FROM transacoes_financeiras
		  WHERE igreja_id=$1 AND conta_id=$2`,
		churchID, accountID,
	).Scan(&sum, &n)
	return sum, n, mapErr(err)
}

func (r *transactionsRepo) Totals(ctx context.Context, churchID string, from, to time.Time) (int64, int64, error) {
	var income, expense int64
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(valor) FILTER (WHERE tipo='receita'), 0)::bigint,
		        coalesce(sum(valor) FILTER (WHERE tipo='despesa'), 0)::bigint
		   FROM transacoes_financeiras
		  WHERE igreja_id=$1 AND data >= $2 AND data < $3`,
		churchID, from, to,
	).Scan(&income, &expense)
	return income, expense, mapErr(err)
}
