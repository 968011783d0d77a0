// Package audit provides the append-only trail behind every mutation in the
// system. Writes ride the same transaction as the change they describe, so a
// failed insert rolls the whole operation back.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

// Entry describes one action to record.
type Entry struct {
	UserID     uuid.UUID
	Action     enums.AuditAction
	EntityType enums.EntityType
	EntityID   *uuid.UUID
	Changes    any
}

// Recorder is the write surface consumed by the entity services.
type Recorder interface {
	Record(ctx context.Context, tx *gorm.DB, entry Entry) error
}

// Service exposes audit trail operations.
type Service interface {
	Recorder
	List(ctx context.Context, input ListInput) (*ListResult, error)
}

// ListInput carries the query parameters for listing audit logs.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

type service struct {
	repo *Repository
}

// NewService constructs an audit service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	return &service{repo: repo}, nil
}

// Record appends one audit row. When tx is non-nil the insert joins that
// transaction; callers pass the transaction of the write being audited.
func (s *service) Record(ctx context.Context, tx *gorm.DB, entry Entry) error {
	if entry.UserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "audit entry requires a user id")
	}
	if !entry.Action.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid audit action %q", entry.Action))
	}
	if !entry.EntityType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid entity type %q", entry.EntityType))
	}

	var changes []byte
	if entry.Changes != nil {
		encoded, err := json.Marshal(entry.Changes)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode audit changes")
		}
		changes = encoded
	}

	repo := s.repo
	if tx != nil {
		repo = s.repo.WithTx(tx)
	}

	log := &models.AuditLog{
		UserID:     entry.UserID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Changes:    changes,
	}
	if err := repo.Insert(ctx, log); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert audit log")
	}
	return nil
}

// List returns a filtered, newest-first page of the audit trail.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	page := input.Pagination.Normalize()

	rows, total, err := s.repo.List(ctx, input.Filters, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list audit logs")
	}

	logs := make([]LogDTO, 0, len(rows))
	for i := range rows {
		logs = append(logs, NewLogDTO(&rows[i]))
	}

	return &ListResult{
		Logs: logs,
		Pagination: types.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: pagination.Pages(total, page.Limit),
		},
	}, nil
}
