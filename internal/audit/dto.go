package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

// LogDTO is the audit log payload returned to clients.
type LogDTO struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	UserName   *string         `json:"user_name,omitempty"`
	UserEmail  *string         `json:"user_email,omitempty"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// ListResult bundles a page of logs with pagination metadata.
type ListResult struct {
	Logs       []LogDTO         `json:"logs"`
	Pagination types.Pagination `json:"pagination"`
}

// NewLogDTO builds a DTO from the persisted model.
func NewLogDTO(log *models.AuditLog) LogDTO {
	dto := LogDTO{
		ID:         log.ID,
		UserID:     log.UserID,
		Action:     string(log.Action),
		EntityType: string(log.EntityType),
		EntityID:   log.EntityID,
		Timestamp:  log.Timestamp,
	}
	if len(log.Changes) > 0 {
		dto.Changes = json.RawMessage(log.Changes)
	}
	if log.User != nil {
		name := log.User.Name
		email := log.User.Email
		dto.UserName = &name
		dto.UserEmail = &email
	}
	return dto
}
