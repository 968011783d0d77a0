package reports

import (
	"context"
	"fmt"
	"time"

	customer "github.com/stocksight/stocksight-backend/internal/customers"
	product "github.com/stocksight/stocksight-backend/internal/products"
	"github.com/stocksight/stocksight-backend/internal/stock"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/stockcalc"
)

// Service exposes the read-only dashboard rollups.
type Service interface {
	InventorySummary(ctx context.Context) (*InventorySummaryDTO, error)
	CustomerSummary(ctx context.Context) (*CustomerSummaryDTO, error)
	StockMovement(ctx context.Context) (*StockMovementDTO, error)
}

type aggregateCounter interface {
	DistinctCategoryCount(ctx context.Context) (int64, error)
	DistinctRegionCount(ctx context.Context) (int64, error)
	DistinctCountryCount(ctx context.Context) (int64, error)
}

type productLister interface {
	ListWithStock(ctx context.Context) ([]product.ProductWithStock, error)
}

type customerLister interface {
	ListByName(ctx context.Context) ([]models.Customer, error)
}

type stockLister interface {
	List(ctx context.Context) ([]models.StockRecord, error)
}

type service struct {
	counts    aggregateCounter
	products  productLister
	customers customerLister
	stock     stockLister
	now       func() time.Time
}

// NewService constructs a reports service instance.
func NewService(counts aggregateCounter, products productLister, customers customerLister, stockRepo stockLister) (Service, error) {
	if counts == nil {
		return nil, fmt.Errorf("aggregate counter required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer lister required")
	}
	if stockRepo == nil {
		return nil, fmt.Errorf("stock lister required")
	}
	return &service{
		counts:    counts,
		products:  products,
		customers: customers,
		stock:     stockRepo,
		now:       time.Now,
	}, nil
}

// InventorySummary rolls up the catalog with per-product stock totals.
func (s *service) InventorySummary(ctx context.Context) (*InventorySummaryDTO, error) {
	rows, err := s.products.ListWithStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products with stock")
	}
	categories, err := s.counts.DistinctCategoryCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count categories")
	}

	critical := 0
	out := make([]product.ProductStockDTO, 0, len(rows))
	for i := range rows {
		if rows[i].TotalStock <= rows[i].CriticalStockLevel {
			critical++
		}
		out = append(out, *product.NewProductStockDTO(&rows[i]))
	}

	return &InventorySummaryDTO{
		TotalProducts:   len(rows),
		TotalCategories: categories,
		CriticalItems:   critical,
		Products:        out,
	}, nil
}

// CustomerSummary rolls up the customer registry with region and country
// coverage.
func (s *service) CustomerSummary(ctx context.Context) (*CustomerSummaryDTO, error) {
	rows, err := s.customers.ListByName(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list customers")
	}
	regions, err := s.counts.DistinctRegionCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count regions")
	}
	countries, err := s.counts.DistinctCountryCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count countries")
	}

	out := make([]customer.CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *customer.NewCustomerDTO(&rows[i]))
	}

	return &CustomerSummaryDTO{
		TotalCustomers: len(rows),
		TotalRegions:   regions,
		TotalCountries: countries,
		Customers:      out,
	}, nil
}

// StockMovement rolls up the stock records with low-stock and expiry counts.
func (s *service) StockMovement(ctx context.Context) (*StockMovementDTO, error) {
	rows, err := s.stock.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list stock records")
	}

	now := s.now()
	lowStock := 0
	expiring := 0
	out := make([]stock.StockRecordDTO, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if stockcalc.IsStockCritical(row.EstimatedStockDays, row.CriticalLevelDays) {
			lowStock++
		}
		// Counts anything inside the warning window, expired included.
		if days := stockcalc.DaysUntilExpiry(row.ExpiryDate, now); days != nil && *days <= stockcalc.DefaultExpiryWarningDays {
			expiring++
		}
		out = append(out, *stock.NewStockRecordDTO(row, now))
	}

	return &StockMovementDTO{
		TotalItems:    len(rows),
		LowStockItems: lowStock,
		ExpiringItems: expiring,
		StockRecords:  out,
	}, nil
}
