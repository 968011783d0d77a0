package facts

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
)

// Repository persists the monthly fact tables. The four product facts share
// one shape, so the row plumbing is generic and the typed methods stay thin.
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

// ProductFactFilters narrows a product fact listing.
type ProductFactFilters struct {
	ProductID *uuid.UUID
	Month     string
}

// FixedCostFilters narrows the fixed cost listing.
type FixedCostFilters struct {
	CostName string
	Month    string
}

func createRow[M any](ctx context.Context, db *gorm.DB, row *M) error {
	return db.WithContext(ctx).Create(row).Error
}

func saveRow[M any](ctx context.Context, db *gorm.DB, row *M) error {
	return db.WithContext(ctx).Save(row).Error
}

func deleteRowByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error
}

func findRowByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, preloads ...string) (*M, error) {
	qb := db.WithContext(ctx)
	for _, preload := range preloads {
		qb = qb.Preload(preload)
	}
	row := new(M)
	if err := qb.First(row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func productMonthExists[M any](ctx context.Context, db *gorm.DB, productID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	qb := db.WithContext(ctx).Model(new(M)).
		Where("product_id = ? AND month = ?", productID, month)
	if excludeID != nil {
		qb = qb.Where("id != ?", *excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func listProductFacts[M any](ctx context.Context, db *gorm.DB, filters ProductFactFilters) ([]M, error) {
	qb := db.WithContext(ctx).Model(new(M)).Preload("Product")
	if filters.ProductID != nil {
		qb = qb.Where("product_id = ?", *filters.ProductID)
	}
	if filters.Month != "" {
		qb = qb.Where("month = ?", filters.Month)
	}
	var rows []M
	err := qb.Order("month DESC, product_id").Find(&rows).Error
	return rows, err
}

// Sales targets.

func (r *Repository) CreateSalesTarget(ctx context.Context, row *models.SalesTarget) error {
	return createRow(ctx, r.db, row)
}

func (r *Repository) SaveSalesTarget(ctx context.Context, row *models.SalesTarget) error {
	return saveRow(ctx, r.db, row)
}

func (r *Repository) DeleteSalesTarget(ctx context.Context, id uuid.UUID) error {
	return deleteRowByID[models.SalesTarget](ctx, r.db, id)
}

func (r *Repository) FindSalesTargetByID(ctx context.Context, id uuid.UUID) (*models.SalesTarget, error) {
	return findRowByID[models.SalesTarget](ctx, r.db, id, "Product")
}

func (r *Repository) SalesTargetExists(ctx context.Context, productID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	return productMonthExists[models.SalesTarget](ctx, r.db, productID, month, excludeID)
}

func (r *Repository) ListSalesTargets(ctx context.Context, filters ProductFactFilters) ([]models.SalesTarget, error) {
	return listProductFacts[models.SalesTarget](ctx, r.db, filters)
}

// Actual sales.

func (r *Repository) CreateActualSales(ctx context.Context, row *models.ActualSales) error {
	return createRow(ctx, r.db, row)
}

func (r *Repository) SaveActualSales(ctx context.Context, row *models.ActualSales) error {
	return saveRow(ctx, r.db, row)
}

func (r *Repository) DeleteActualSales(ctx context.Context, id uuid.UUID) error {
	return deleteRowByID[models.ActualSales](ctx, r.db, id)
}

func (r *Repository) FindActualSalesByID(ctx context.Context, id uuid.UUID) (*models.ActualSales, error) {
	return findRowByID[models.ActualSales](ctx, r.db, id, "Product")
}

func (r *Repository) ActualSalesExists(ctx context.Context, productID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	return productMonthExists[models.ActualSales](ctx, r.db, productID, month, excludeID)
}

func (r *Repository) ListActualSales(ctx context.Context, filters ProductFactFilters) ([]models.ActualSales, error) {
	return listProductFacts[models.ActualSales](ctx, r.db, filters)
}

// Product costs.

func (r *Repository) CreateProductCost(ctx context.Context, row *models.ProductCost) error {
	return createRow(ctx, r.db, row)
}

func (r *Repository) SaveProductCost(ctx context.Context, row *models.ProductCost) error {
	return saveRow(ctx, r.db, row)
}

func (r *Repository) DeleteProductCost(ctx context.Context, id uuid.UUID) error {
	return deleteRowByID[models.ProductCost](ctx, r.db, id)
}

func (r *Repository) FindProductCostByID(ctx context.Context, id uuid.UUID) (*models.ProductCost, error) {
	return findRowByID[models.ProductCost](ctx, r.db, id, "Product")
}

func (r *Repository) ProductCostExists(ctx context.Context, productID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	return productMonthExists[models.ProductCost](ctx, r.db, productID, month, excludeID)
}

func (r *Repository) ListProductCosts(ctx context.Context, filters ProductFactFilters) ([]models.ProductCost, error) {
	return listProductFacts[models.ProductCost](ctx, r.db, filters)
}

// Sales prices.

func (r *Repository) CreateSalesPrice(ctx context.Context, row *models.SalesPrice) error {
	return createRow(ctx, r.db, row)
}

func (r *Repository) SaveSalesPrice(ctx context.Context, row *models.SalesPrice) error {
	return saveRow(ctx, r.db, row)
}

func (r *Repository) DeleteSalesPrice(ctx context.Context, id uuid.UUID) error {
	return deleteRowByID[models.SalesPrice](ctx, r.db, id)
}

func (r *Repository) FindSalesPriceByID(ctx context.Context, id uuid.UUID) (*models.SalesPrice, error) {
	return findRowByID[models.SalesPrice](ctx, r.db, id, "Product")
}

func (r *Repository) SalesPriceExists(ctx context.Context, productID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	return productMonthExists[models.SalesPrice](ctx, r.db, productID, month, excludeID)
}

func (r *Repository) ListSalesPrices(ctx context.Context, filters ProductFactFilters) ([]models.SalesPrice, error) {
	return listProductFacts[models.SalesPrice](ctx, r.db, filters)
}

// Fixed costs.

func (r *Repository) CreateFixedCost(ctx context.Context, row *models.FixedCost) error {
	return createRow(ctx, r.db, row)
}

func (r *Repository) SaveFixedCost(ctx context.Context, row *models.FixedCost) error {
	return saveRow(ctx, r.db, row)
}

func (r *Repository) DeleteFixedCost(ctx context.Context, id uuid.UUID) error {
	return deleteRowByID[models.FixedCost](ctx, r.db, id)
}

func (r *Repository) FindFixedCostByID(ctx context.Context, id uuid.UUID) (*models.FixedCost, error) {
	return findRowByID[models.FixedCost](ctx, r.db, id)
}

func (r *Repository) FixedCostExists(ctx context.Context, costName, month string, excludeID *uuid.UUID) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&models.FixedCost{}).
		Where("cost_name = ? AND month = ?", costName, month)
	if excludeID != nil {
		qb = qb.Where("id != ?", *excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFixedCosts pages through fixed costs newest month first, optionally
// filtered by a cost name search and an exact month.
func (r *Repository) ListFixedCosts(ctx context.Context, filters FixedCostFilters, params pagination.Params) ([]models.FixedCost, int64, error) {
	params = params.Normalize()

	qb := r.db.WithContext(ctx).Model(&models.FixedCost{})
	if search := strings.TrimSpace(filters.CostName); search != "" {
		qb = qb.Where("cost_name ILIKE ?", "%"+search+"%")
	}
	if filters.Month != "" {
		qb = qb.Where("month = ?", filters.Month)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.FixedCost
	err := qb.Order("month DESC, created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	return rows, total, err
}
