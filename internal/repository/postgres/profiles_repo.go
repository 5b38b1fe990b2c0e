package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profilesRepo struct{ pool *pgxpool.Pool }

const profileCols = `id, igreja_id, nome, email, telefone, data_nascimento, endereco, role, status, avatar_url, password_hash, created_at, updated_at`

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.ChurchID, &p.Name, &p.Email, &p.Phone, &p.BirthDate, &p.Address,
		&p.Role, &p.Status, &p.AvatarURL, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	return p, mapErr(err)
}

func (r *profilesRepo) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO profiles(id, igreja_id, nome, email, telefone, data_nascimento, endereco, role, status, password_hash)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING `+profileCols,
		p.ID, p.ChurchID, p.Name, p.Email, p.Phone, p.BirthDate, p.Address, p.Role, p.Status, p.PasswordHash,
	)
	return scanProfile(row)
}

func (r *profilesRepo) GetByID(ctx context.Context, churchID, id string) (models.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileCols+` FROM profiles WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *profilesRepo) GetByEmail(ctx context.Context, email string) (models.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileCols+` FROM profiles WHERE lower(email)=lower($1)`, email))
}

func (r *profilesRepo) GetByPhone(ctx context.Context, churchID, phone string) (models.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileCols+` FROM profiles WHERE igreja_id=$1 AND telefone=$2
		 ORDER BY created_at LIMIT 1`, churchID, phone))
}

func (r *profilesRepo) List(ctx context.Context, churchID string, f models.ProfileFilter) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileCols+`
		   FROM profiles
		  WHERE igreja_id=$1
		    AND ($2 = '' OR nome ILIKE '%' || $2 || '%' OR telefone LIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
		    AND ($3 = '' OR status = $3)
		  ORDER BY nome
		  LIMIT $4 OFFSET $5`,
		churchID, f.Query, string(f.Status), f.Limit, f.Offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) Update(ctx context.Context, p models.Profile) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE profiles
		    SET nome=$3, email=$4, telefone=$5, data_nascimento=$6, endereco=$7, role=$8, status=$9, updated_at=now()
		  WHERE id=$1 AND igreja_id=$2`,
		p.ID, p.ChurchID, p.Name, p.Email, p.Phone, p.BirthDate, p.Address, p.Role, p.Status,
	))
}

func (r *profilesRepo) SetAvatar(ctx context.Context, churchID, id, url string) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE profiles SET avatar_url=$3, updated_at=now() WHERE id=$1 AND igreja_id=$2`, id, churchID, url))
}

func (r *profilesRepo) Delete(ctx context.Context, churchID, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM profiles WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *profilesRepo) CountByStatus(ctx context.Context, churchID string, status models.MemberStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM profiles WHERE igreja_id=$1 AND status=$2`, churchID, string(status),
	).Scan(&n)
	return n, mapErr(err)
}
