package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	var churchID *string
	if l.ChurchID != "" {
		churchID = &l.ChurchID
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(id, igreja_id, entity_type, entity_id, action, actor_id, details)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, churchID, l.EntityType, l.EntityID, l.Action, l.ActorID, l.Details,
	)
	return mapErr(err)
}
