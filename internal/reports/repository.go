package reports

import (
	"context"

	"github.com/stocksight/stocksight-backend/pkg/db"
)

// Repository runs the aggregate count queries the summary reports need.
type Repository struct {
	dbClient *db.Client
}

// NewRepository builds a repository on the shared database client.
func NewRepository(dbClient *db.Client) *Repository {
	return &Repository{dbClient: dbClient}
}

// DistinctCategoryCount counts the product categories in use.
func (r *Repository) DistinctCategoryCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.dbClient.Raw(ctx,
		"SELECT COUNT(DISTINCT product_category) FROM products WHERE product_category IS NOT NULL",
	).Scan(&count).Error
	return count, err
}

// DistinctRegionCount counts the customer regions in use.
func (r *Repository) DistinctRegionCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.dbClient.Raw(ctx,
		"SELECT COUNT(DISTINCT region_or_state) FROM customers WHERE region_or_state IS NOT NULL",
	).Scan(&count).Error
	return count, err
}

// DistinctCountryCount counts the customer countries in use.
func (r *Repository) DistinctCountryCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.dbClient.Raw(ctx,
		"SELECT COUNT(DISTINCT country) FROM customers WHERE country IS NOT NULL",
	).Scan(&count).Error
	return count, err
}
