package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type prayerRepo struct{ pool *pgxpool.Pool }

const prayerCols = `id, igreja_id, nome, telefone, email, pedido, privado, status, created_at, updated_at`

func scanPrayer(row rowScanner) (models.PrayerRequest, error) {
	var p models.PrayerRequest
	err := row.Scan(&p.ID, &p.ChurchID, &p.Name, &p.Phone, &p.Email, &p.Request, &p.Private, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, mapErr(err)
}

func (r *prayerRepo) Create(ctx context.Context, p models.PrayerRequest) (models.PrayerRequest, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return scanPrayer(r.pool.QueryRow(ctx,
		`INSERT INTO pedidos_oracao(id, igreja_id, nome, telefone, email, pedido, privado, status)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING `+prayerCols,
		p.ID, p.ChurchID, p.Name, p.Phone, p.Email, p.Request, p.Private, string(p.Status),
	))
}

func (r *prayerRepo) GetByID(ctx context.Context, churchID, id string) (models.PrayerRequest, error) {
	return scanPrayer(r.pool.QueryRow(ctx,
		`SELECT `+prayerCols+` FROM pedidos_oracao WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *prayerRepo) List(ctx context.Context, churchID string, status models.PrayerStatus, limit, offset int) ([]models.PrayerRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+prayerCols+`
		   FROM pedidos_oracao
		  WHERE igreja_id=$1 AND ($2 = '' OR status = $2)
		  ORDER BY created_at DESC
		  LIMIT $3 OFFSET $4`,
		churchID, string(status), limit, offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.PrayerRequest{}
	for rows.Next() {
		p, err := scanPrayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *prayerRepo) UpdateStatus(ctx context.Context, churchID, id string, status models.PrayerStatus) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE pedidos_oracao SET status=$3, updated_at=now() WHERE id=$1 AND igreja_id=$2`, id, churchID, string(status)))
}

func (r *prayerRepo) CountOpen(ctx context.Context, churchID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM pedidos_oracao WHERE igreja_id=$1 AND status IN ('novo', 'em_oracao')`, churchID,
	).Scan(&n)
	return n, mapErr(err)
}

type testimoniesRepo struct{ pool *pgxpool.Pool }

const testimonyCols = `id, igreja_id, nome, telefone, conteudo, publicar, status, created_at, updated_at`

func scanTestimony(row rowScanner) (models.Testimony, error) {
	var t models.Testimony
	err := row.Scan(&t.ID, &t.ChurchID, &t.Name, &t.Phone, &t.Content, &t.AllowPublish, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, mapErr(err)
}

func (r *testimoniesRepo) Create(ctx context.Context, t models.Testimony) (models.Testimony, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return scanTestimony(r.pool.QueryRow(ctx,
		`INSERT INTO testemunhos(id, igreja_id, nome, telefone, conteudo, publicar, status)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+testimonyCols,
		t.ID, t.ChurchID, t.Name, t.Phone, t.Content, t.AllowPublish, string(t.Status),
	))
}

func (r *testimoniesRepo) GetByID(ctx context.Context, churchID, id string) (models.Testimony, error) {
	return scanTestimony(r.pool.QueryRow(ctx,
		`SELECT `+testimonyCols+` FROM testemunhos WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *testimoniesRepo) list(ctx context.Context, q string, args ...any) ([]models.Testimony, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Testimony{}
	for rows.Next() {
		t, err := scanTestimony(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *testimoniesRepo) List(ctx context.Context, churchID string, status models.TestimonyStatus, limit, offset int) ([]models.Testimony, error) {
	return r.list(ctx,
		`SELECT `+testimonyCols+`
		   FROM testemunhos
		  WHERE igreja_id=$1 AND ($2 = '' OR status = $2)
		  ORDER BY created_at DESC
		  LIMIT $3 OFFSET $4`,
		churchID, string(status), limit, offset)
}

func (r *testimoniesRepo) ListPublished(ctx context.Context, churchID string, limit int) ([]models.Testimony, error) {
	return r.list(ctx,
		`SELECT `+testimonyCols+`
		   FROM testemunhos
		  WHERE igreja_id=$1 AND status='aprovado' AND publicar
		  ORDER BY updated_at DESC
		  LIMIT $2`,
		churchID, limit)
}

func (r *testimoniesRepo) UpdateStatus(ctx context.Context, churchID, id string, status models.TestimonyStatus) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE testemunhos SET status=$3, updated_at=now() WHERE id=$1 AND igreja_id=$2`, id, churchID, string(status)))
}

func (r *testimoniesRepo) CountByStatus(ctx context.Context, churchID string, status models.TestimonyStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM testemunhos WHERE igreja_id=$1 AND status=$2`, churchID, string(status),
	).Scan(&n)
	return n, mapErr(err)
}
