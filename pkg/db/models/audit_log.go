package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/pkg/enums"
)

// AuditLog records one mutation, login, logout, or export. Changes holds the
// request payload (or before/after diff) as raw JSON; rows are append-only.
type AuditLog struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Action     enums.AuditAction `gorm:"column:action;type:text;not null"`
	EntityType enums.EntityType  `gorm:"column:entity_type;type:text;not null;index:idx_audit_logs_entity"`
	EntityID   *uuid.UUID        `gorm:"column:entity_id;type:uuid;index:idx_audit_logs_entity"`
	Changes    []byte            `gorm:"column:changes;type:jsonb"`
	Timestamp  time.Time         `gorm:"column:timestamp;not null;autoCreateTime;index"`
	User       *User             `gorm:"foreignKey:UserID"`
}
