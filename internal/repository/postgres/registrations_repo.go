package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type registrationsRepo struct{ pool *pgxpool.Pool }

const registrationCols = `id, igreja_id, evento_id, lote_id, nome, telefone, email, valor, status, qr_token, checkin_em, created_at`

func scanRegistration(row rowScanner) (models.Registration, error) {
	var g models.Registration
	err := row.Scan(&g.ID, &g.ChurchID, &g.EventID, &g.TierID, &g.Name, &g.Phone, &g.Email,
		&g.Amount, &g.Status, &g.QRToken, &g.CheckedInAt, &g.CreatedAt)
	return g, mapErr(err)
}

func (r *registrationsRepo) Create(ctx context.Context, g models.Registration) (models.Registration, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return scanRegistration(r.pool.QueryRow(ctx,
		`INSERT INTO inscricoes(id, igreja_id, evento_id, lote_id, nome, telefone, email, valor, status, qr_token)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING `+registrationCols,
		g.ID, g.ChurchID, g.EventID, g.TierID, g.Name, g.Phone, g.Email, g.Amount, g.Status, g.QRToken,
	))
}

func (r *registrationsRepo) GetByID(ctx context.Context, churchID, id string) (models.Registration, error) {
	return scanRegistration(r.pool.QueryRow(ctx,
		`SELECT `+registrationCols+` FROM inscricoes WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *registrationsRepo) GetByQRToken(ctx context.Context, churchID, token string) (models.Registration, error) {
	return scanRegistration(r.pool.QueryRow(ctx,
		`SELECT `+registrationCols+` FROM inscricoes WHERE qr_token=$1 AND igreja_id=$2`, token, churchID))
}

func (r *registrationsRepo) GetByPhone(ctx context.Context, churchID, eventID, phone string) (models.Registration, error) {
	return scanRegistration(r.pool.QueryRow(ctx,
		`SELECT `+registrationCols+`
		   FROM inscricoes
		  WHERE igreja_id=$1 AND evento_id=$2 AND telefone=$3
		  ORDER BY (status = 'confirmada') DESC, created_at DESC
		  LIMIT 1`,
		churchID, eventID, phone))
}

func (r *registrationsRepo) ListByEvent(ctx context.Context, churchID, eventID string, limit, offset int) ([]models.Registration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+registrationCols+`
		   FROM inscricoes
		  WHERE igreja_id=$1 AND evento_id=$2
		  ORDER BY created_at
		  LIMIT $3 OFFSET $4`,
		churchID, eventID, limit, offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Registration{}
	for rows.Next() {
		g, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *registrationsRepo) CountConfirmed(ctx context.Context, eventID string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT coalesce(lote_id::text, ''), count(*)
		   FROM inscricoes
		  WHERE evento_id=$1 AND status='confirmada'
		  GROUP BY 1`,
		eventID,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var tierID string
		var n int
		if err := rows.Scan(&tierID, &n); err != nil {
			return nil, err
		}
		out[tierID] = n
	}
	return out, rows.Err()
}

func (r *registrationsRepo) UpdateStatus(ctx context.Context, churchID, id string, status models.RegistrationStatus) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE inscricoes SET status=$3 WHERE id=$1 AND igreja_id=$2`, id, churchID, string(status)))
}

func (r *registrationsRepo) CheckIn(ctx context.Context, c models.Checkin, at time.Time) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE inscricoes SET checkin_em=$3
			  WHERE id=$1 AND igreja_id=$2 AND checkin_em IS NULL`,
			c.RegistrationID, c.ChurchID, at,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrConflict
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO checkins(id, igreja_id, evento_id, inscricao_id, origem, created_at)
			 VALUES($1,$2,$3,$4,$5,$6)`,
			c.ID, c.ChurchID, c.EventID, c.RegistrationID, c.Source, at,
		)
		return err
	})
}
