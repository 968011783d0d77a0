package sales

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
)

// Repository persists invoice lines.
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

// Create inserts a new sales record row.
func (r *Repository) Create(ctx context.Context, record *models.SalesRecord) (*models.SalesRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update saves the full sales record row.
func (r *Repository) Update(ctx context.Context, record *models.SalesRecord) (*models.SalesRecord, error) {
	if err := r.db.WithContext(ctx).Omit("Product").Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a sales record by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SalesRecord{}).Error
}

// FindByID loads the sales record with its product joined in when still
// linked.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SalesRecord, error) {
	var record models.SalesRecord
	if err := r.db.WithContext(ctx).Preload("Product").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// InvoiceNoExists reports whether another record already uses the invoice
// number.
func (r *Repository) InvoiceNoExists(ctx context.Context, invoiceNo string, excludeID *uuid.UUID) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&models.SalesRecord{}).Where("invoice_no = ?", invoiceNo)
	if excludeID != nil {
		qb = qb.Where("id != ?", *excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of sales records with the total row count, newest
// invoice date first.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.SalesRecord, int64, error) {
	params = params.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SalesRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SalesRecord
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("invoice_date DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	return rows, total, err
}
