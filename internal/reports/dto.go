package reports

import (
	customer "github.com/stocksight/stocksight-backend/internal/customers"
	product "github.com/stocksight/stocksight-backend/internal/products"
	"github.com/stocksight/stocksight-backend/internal/stock"
)

// InventorySummaryDTO is the product-side dashboard rollup.
type InventorySummaryDTO struct {
	TotalProducts   int                       `json:"total_products"`
	TotalCategories int64                     `json:"total_categories"`
	CriticalItems   int                       `json:"critical_items"`
	Products        []product.ProductStockDTO `json:"products"`
}

// CustomerSummaryDTO is the customer-side dashboard rollup.
type CustomerSummaryDTO struct {
	TotalCustomers int                    `json:"total_customers"`
	TotalRegions   int64                  `json:"total_regions"`
	TotalCountries int64                  `json:"total_countries"`
	Customers      []customer.CustomerDTO `json:"customers"`
}

// StockMovementDTO is the warehouse-side dashboard rollup.
type StockMovementDTO struct {
	TotalItems    int                    `json:"total_items"`
	LowStockItems int                    `json:"low_stock_items"`
	ExpiringItems int                    `json:"expiring_items"`
	StockRecords  []stock.StockRecordDTO `json:"stock_records"`
}
