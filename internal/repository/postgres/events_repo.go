package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventsRepo struct{ pool *pgxpool.Pool }

const eventCols = `id, igreja_id, titulo, descricao, local, inicio, fim, capacidade, created_at`

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.ChurchID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt, &e.Capacity, &e.CreatedAt)
	return e, mapErr(err)
}

func (r *eventsRepo) Create(ctx context.Context, e models.Event) (models.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return scanEvent(r.pool.QueryRow(ctx,
		`INSERT INTO eventos(id, igreja_id, titulo, descricao, local, inicio, fim, capacidade)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING `+eventCols,
		e.ID, e.ChurchID, e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt, e.Capacity,
	))
}

func (r *eventsRepo) GetByID(ctx context.Context, churchID, id string) (models.Event, error) {
	return scanEvent(r.pool.QueryRow(ctx,
		`SELECT `+eventCols+` FROM eventos WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *eventsRepo) GetPublic(ctx context.Context, id string) (models.Event, error) {
	return scanEvent(r.pool.QueryRow(ctx, `SELECT `+eventCols+` FROM eventos WHERE id=$1`, id))
}

func (r *eventsRepo) List(ctx context.Context, churchID string, from time.Time, limit int) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventCols+`
		   FROM eventos
		  WHERE igreja_id=$1 AND coalesce(fim, inicio) >= $2
		  ORDER BY inicio
		  LIMIT $3`,
		churchID, from, limit,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const tierCols = `id, evento_id, nome, preco, vagas, inicio_vendas, fim_vendas`

func scanTier(row rowScanner) (models.Tier, error) {
	var t models.Tier
	err := row.Scan(&t.ID, &t.EventID, &t.Name, &t.Price, &t.Seats, &t.StartsAt, &t.EndsAt)
	return t, mapErr(err)
}

func (r *eventsRepo) CreateTier(ctx context.Context, t models.Tier) (models.Tier, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return scanTier(r.pool.QueryRow(ctx,
		`INSERT INTO evento_lotes(id, evento_id, nome, preco, vagas, inicio_vendas, fim_vendas)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+tierCols,
		t.ID, t.EventID, t.Name, t.Price, t.Seats, t.StartsAt, t.EndsAt,
	))
}

func (r *eventsRepo) ListTiers(ctx context.Context, eventID string) ([]models.Tier, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tierCols+` FROM evento_lotes WHERE evento_id=$1 ORDER BY created_at, id`, eventID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Tier{}
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
