package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

// Repository persists customer account rows.
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

// Create inserts a new customer row.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Update saves the full customer row.
func (r *Repository) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{}).Error
}

// FindByID loads the customer row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// CodeExists reports whether another customer already uses the code.
func (r *Repository) CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&models.Customer{}).Where("customer_code = ?", code)
	if excludeID != nil {
		qb = qb.Where("id != ?", *excludeID)
	}
	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFilters narrows the customer listing.
type ListFilters struct {
	Search   string
	SalesRep string
}

// List returns customers newest-first, optionally filtered by sales rep and
// a name/code/email search term.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Customer, error) {
	qb := r.db.WithContext(ctx).Model(&models.Customer{})
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + search + "%"
		qb = qb.Where("(customer_name ILIKE ? OR customer_code ILIKE ? OR email ILIKE ?)", pattern, pattern, pattern)
	}
	if filters.SalesRep != "" {
		qb = qb.Where("sales_rep = ?", filters.SalesRep)
	}

	var rows []models.Customer
	err := qb.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ListByName returns all customers in alphabetical order for summary
// reporting.
func (r *Repository) ListByName(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.db.WithContext(ctx).Order("customer_name").Find(&rows).Error
	return rows, err
}

// ListOverLimit returns customers whose payment-terms balance exceeds their
// risk limit, worst offenders first.
func (r *Repository) ListOverLimit(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Where("payment_terms_limit > balance_risk_limit").
		Order("payment_terms_limit / NULLIF(balance_risk_limit, 0) DESC").
		Find(&rows).
		Error
	return rows, err
}
