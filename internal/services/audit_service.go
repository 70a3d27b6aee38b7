package services

import (
	"context"

	"gorm.io/datatypes"

	"autoledger/internal/database"
	"autoledger/internal/logger"
	"autoledger/internal/models"
)

type auditService struct {
	conn database.Connector
}

// NewAuditService returns an AuditServicer writing to audit_logs.
func NewAuditService(conn database.Connector) AuditServicer {
	return &auditService{conn: conn}
}

// Record stores ev. Failures are logged and swallowed so the audited
// operation still succeeds.
func (s *auditService) Record(ctx context.Context, ev AuditEvent) {
	log := logger.Get().With(
		"user_id", ev.UserID,
		"action", ev.Action,
		"resource_type", ev.ResourceType,
		"resource_id", ev.ResourceID,
	)

	db, err := s.conn.Connect(ctx)
	if err != nil {
		log.Errorw("audit log skipped, store unavailable", "error", err)
		return
	}

	entry := &models.AuditLog{
		UserID:       ev.UserID,
		Action:       ev.Action,
		ResourceType: ev.ResourceType,
		ResourceID:   ev.ResourceID,
		IPAddress:    ev.IPAddress,
	}
	if len(ev.Changes) > 0 {
		entry.Changes = datatypes.JSONMap(ev.Changes)
	}

	done := observeDB(ctx, "audit_create")
	defer done()
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Errorw("failed to write audit log", "error", err)
	}
}
