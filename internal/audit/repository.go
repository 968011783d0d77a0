package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
)

// Repository persists and queries audit log rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Insert appends one audit log row.
func (r *Repository) Insert(ctx context.Context, log *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListFilters narrows the audit log query.
type ListFilters struct {
	UserID     *uuid.UUID
	Action     *enums.AuditAction
	EntityType *enums.EntityType
	EntityID   *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// List returns a page of audit logs newest-first plus the total row count.
func (r *Repository) List(ctx context.Context, filters ListFilters, page pagination.Params) ([]models.AuditLog, int64, error) {
	page = page.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if filters.UserID != nil {
		qb = qb.Where("user_id = ?", *filters.UserID)
	}
	if filters.Action != nil {
		qb = qb.Where("action = ?", *filters.Action)
	}
	if filters.EntityType != nil {
		qb = qb.Where("entity_type = ?", *filters.EntityType)
	}
	if filters.EntityID != nil {
		qb = qb.Where("entity_id = ?", *filters.EntityID)
	}
	if filters.From != nil {
		qb = qb.Where("timestamp >= ?", *filters.From)
	}
	if filters.To != nil {
		qb = qb.Where("timestamp <= ?", *filters.To)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.AuditLog
	err := qb.
		Preload("User").
		Order("timestamp DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
