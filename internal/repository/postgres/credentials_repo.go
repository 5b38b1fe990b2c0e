package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type credentialsRepo struct{ pool *pgxpool.Pool }

const credentialCols = `id, profile_id, credential_id, device_name, created_at, last_used_at`

func scanCredential(row rowScanner) (models.Credential, error) {
	var c models.Credential
	err := row.Scan(&c.ID, &c.ProfileID, &c.CredentialID, &c.DeviceName, &c.CreatedAt, &c.LastUsedAt)
	return c, mapErr(err)
}

func (r *credentialsRepo) Create(ctx context.Context, c models.Credential) (models.Credential, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return scanCredential(r.pool.QueryRow(ctx,
		`INSERT INTO webauthn_credenciais(id, profile_id, credential_id, device_name)
		 VALUES($1,$2,$3,$4)
		 RETURNING `+credentialCols,
		c.ID, c.ProfileID, c.CredentialID, c.DeviceName))
}

func (r *credentialsRepo) ListByProfile(ctx context.Context, profileID string) ([]models.Credential, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+credentialCols+` FROM webauthn_credenciais WHERE profile_id=$1 ORDER BY created_at`, profileID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Credential{}
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *credentialsRepo) Delete(ctx context.Context, profileID, id string) error {
	return affected(r.pool.Exec(ctx,
		`DELETE FROM webauthn_credenciais WHERE id=$1 AND profile_id=$2`, id, profileID))
}
