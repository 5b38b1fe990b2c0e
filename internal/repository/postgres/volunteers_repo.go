package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type volunteersRepo struct{ pool *pgxpool.Pool }

const volunteerSelect = `SELECT v.id, v.igreja_id, v.profile_id, p.nome, v.ministerio, v.disponibilidade, v.status, v.created_at, v.updated_at
  FROM voluntarios v JOIN profiles p ON p.id = v.profile_id`

func scanVolunteer(row rowScanner) (models.Volunteer, error) {
	var v models.Volunteer
	err := row.Scan(&v.ID, &v.ChurchID, &v.ProfileID, &v.ProfileName, &v.Ministry, &v.Availability, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	return v, mapErr(err)
}

func (r *volunteersRepo) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO voluntarios(id, igreja_id, profile_id, ministerio, disponibilidade, status)
		 VALUES($1,$2,$3,$4,$5,$6)`,
		v.ID, v.ChurchID, v.ProfileID, v.Ministry, v.Availability, string(v.Status),
	)
	if err != nil {
		return models.Volunteer{}, mapErr(err)
	}
	return r.GetByID(ctx, v.ChurchID, v.ID)
}

func (r *volunteersRepo) GetByID(ctx context.Context, churchID, id string) (models.Volunteer, error) {
	return scanVolunteer(r.pool.QueryRow(ctx, volunteerSelect+` WHERE v.id=$1 AND v.igreja_id=$2`, id, churchID))
}

func (r *volunteersRepo) List(ctx context.Context, churchID string, status models.VolunteerStatus, ministry string) ([]models.Volunteer, error) {
	rows, err := r.pool.Query(ctx,
		volunteerSelect+`
		  WHERE v.igreja_id=$1
		    AND ($2 = '' OR v.status = $2)
		    AND ($3 = '' OR v.ministerio = $3)
		  ORDER BY v.created_at DESC`,
		churchID, string(status), ministry,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Volunteer{}
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *volunteersRepo) UpdateStatus(ctx context.Context, churchID, id string, status models.VolunteerStatus) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE voluntarios SET status=$3, updated_at=now() WHERE id=$1 AND igreja_id=$2`, id, churchID, string(status)))
}

func (r *volunteersRepo) CountByStatus(ctx context.Context, churchID string, status models.VolunteerStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM voluntarios WHERE igreja_id=$1 AND status=$2`, churchID, string(status),
	).Scan(&n)
	return n, mapErr(err)
}
