package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/worker"
)

const auditTimeout = 5 * time.Second

// Auditor writes audit rows off the request path on the worker pool.
// A nil *Auditor drops everything.
type Auditor struct {
	repo repo.AuditLogs
	wp   *worker.Pool
	log  *slog.Logger
}

func NewAuditor(r repo.AuditLogs, wp *worker.Pool, log *slog.Logger) *Auditor {
	return &Auditor{repo: r, wp: wp, log: log}
}

func (a *Auditor) Record(churchID, actorID, entityType, entityID, action string, details map[string]any) {
	if a == nil {
		return
	}
	entry := models.AuditLog{
		ChurchID:   churchID,
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Details:    details,
	}
	if actorID != "" {
		entry.ActorID = &actorID
	}
	ok := a.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := a.repo.Create(ctx, entry); err != nil {
			a.log.Error("audit write failed", "entity", entityType, "id", entityID, "action", action, "err", err)
		}
	})
	if !ok {
		a.log.Warn("audit dropped, pool stopped", "entity", entityType, "id", entityID, "action", action)
	}
}
