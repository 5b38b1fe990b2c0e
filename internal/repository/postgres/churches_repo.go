package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type churchesRepo struct{ pool *pgxpool.Pool }

func (r *churchesRepo) Create(ctx context.Context, c models.Church) (models.Church, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO igrejas(id, nome, slug) VALUES($1,$2,$3) RETURNING created_at`,
		c.ID, c.Name, c.Slug,
	).Scan(&c.CreatedAt)
	return c, mapErr(err)
}

func (r *churchesRepo) GetByID(ctx context.Context, id string) (models.Church, error) {
	var c models.Church
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, slug, created_at FROM igrejas WHERE id=$1`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	return c, mapErr(err)
}
