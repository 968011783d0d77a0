package product

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

// Repository persists product catalog rows.
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

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves the full product row.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// FindByID loads the product row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CodeExists reports whether another product already uses the code.
func (r *Repository) CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{}).Where("product_code = ?", code)
	if excludeID != nil {
		qb = qb.Where("id != ?", *excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFilters narrows the product listing.
type ListFilters struct {
	Category string
	Search   string
}

// List returns products newest-first, optionally filtered by category and a
// name/code search term.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{})
	if filters.Category != "" {
		qb = qb.Where("product_category = ?", filters.Category)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + search + "%"
		qb = qb.Where("(product_name ILIKE ? OR product_code ILIKE ?)", pattern, pattern)
	}

	var rows []models.Product
	err := qb.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ProductWithStock is a product joined with its summed on-hand amount
// across all stock records.
type ProductWithStock struct {
	ID                 uuid.UUID `gorm:"column:id"`
	ProductName        string    `gorm:"column:product_name"`
	ProductCode        string    `gorm:"column:product_code"`
	ProductCategory    string    `gorm:"column:product_category"`
	Unit               string    `gorm:"column:unit"`
	CriticalStockLevel float64   `gorm:"column:critical_stock_level"`
	Brand              *string   `gorm:"column:brand"`
	TotalStock         float64   `gorm:"column:total_stock"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

const productStockQuery = `
SELECT p.id, p.product_name, p.product_code, p.product_category, p.unit,
       p.critical_stock_level, p.brand, p.created_at, p.updated_at,
       COALESCE(SUM(sr.current_amount), 0) AS total_stock
FROM products p
LEFT JOIN stock_records sr ON p.id = sr.product_id
GROUP BY p.id`

// ListWithStock returns every product with its total on-hand amount,
// ordered by name.
func (r *Repository) ListWithStock(ctx context.Context) ([]ProductWithStock, error) {
	var rows []ProductWithStock
	err := r.db.WithContext(ctx).
		Raw(productStockQuery + "\nORDER BY p.product_name").
		Scan(&rows).Error
	return rows, err
}

// ListCriticalStock returns products whose total on-hand amount has fallen
// to or below their critical level, lowest stock first.
func (r *Repository) ListCriticalStock(ctx context.Context) ([]ProductWithStock, error) {
	var rows []ProductWithStock
	err := r.db.WithContext(ctx).
		Raw(productStockQuery + "\nHAVING COALESCE(SUM(sr.current_amount), 0) <= p.critical_stock_level\nORDER BY total_stock ASC").
		Scan(&rows).Error
	return rows, err
}
