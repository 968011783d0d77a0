package stock

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

// Repository persists warehouse stock rows.
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

// Create inserts a new stock record row.
func (r *Repository) Create(ctx context.Context, record *models.StockRecord) (*models.StockRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update saves the full stock record row.
func (r *Repository) Update(ctx context.Context, record *models.StockRecord) (*models.StockRecord, error) {
	if err := r.db.WithContext(ctx).Omit("Product").Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a stock record by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StockRecord{}).Error
}

// FindByID loads the stock record with its product joined in.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.StockRecord, error) {
	var record models.StockRecord
	if err := r.db.WithContext(ctx).Preload("Product").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all stock records newest-first with products joined in.
func (r *Repository) List(ctx context.Context) ([]models.StockRecord, error) {
	var rows []models.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListByProduct returns the stock records for one product newest-first.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.StockRecord, error) {
	var rows []models.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListLowStock returns records whose estimated days of stock have fallen to
// or below their critical threshold, most urgent first. Records missing
// either figure are excluded.
func (r *Repository) ListLowStock(ctx context.Context) ([]models.StockRecord, error) {
	var rows []models.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("estimated_stock_days IS NOT NULL").
		Where("critical_level_days IS NOT NULL").
		Where("estimated_stock_days <= critical_level_days").
		Order("estimated_stock_days ASC").
		Find(&rows).Error
	return rows, err
}

// ListExpiring returns records expiring within the next windowDays days,
// soonest first. Already-expired rows (expiry before today) are excluded.
func (r *Repository) ListExpiring(ctx context.Context, windowDays int) ([]models.StockRecord, error) {
	var rows []models.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("expiry_date IS NOT NULL").
		Where("expiry_date >= CURRENT_DATE").
		Where("expiry_date <= CURRENT_DATE + ?::interval", intervalDays(windowDays)).
		Order("expiry_date ASC").
		Find(&rows).Error
	return rows, err
}

func intervalDays(days int) string {
	if days < 0 {
		days = 0
	}
	return strconv.Itoa(days) + " days"
}
