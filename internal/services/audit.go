package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sanskrutigadekar/rating-platform/internal/models"
	repo "github.com/sanskrutigadekar/rating-platform/internal/repository"
	"github.com/sanskrutigadekar/rating-platform/internal/worker"
)

// Auditor writes audit rows off the request path. Best effort: a failed
// or dropped audit write never fails the request that caused it.
type Auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func NewAuditor(logs repo.AuditLogs, wp *worker.Pool) *Auditor {
	return &Auditor{logs: logs, wp: wp}
}

func (a *Auditor) Record(entityType, entityID, action string, details map[string]any) {
	if a == nil || a.logs == nil || a.wp == nil {
		return
	}
	var eid *string
	if entityID != "" {
		eid = &entityID
	}
	l := models.AuditLog{EntityType: entityType, EntityID: eid, Action: action, Details: details}
	a.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.logs.Create(ctx, l); err != nil {
			slog.Error("audit write", "entity", entityType, "action", action, "err", err)
		}
	})
}
