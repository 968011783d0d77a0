package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	"github.com/stocksight/stocksight-backend/pkg/stockcalc"
)

// ProductDTO represents the catalog payload returned to clients.
type ProductDTO struct {
	ID                 uuid.UUID  `json:"id"`
	ProductName        string     `json:"product_name"`
	ProductCode        string     `json:"product_code"`
	ProductCategory    string     `json:"product_category"`
	Unit               string     `json:"unit"`
	CriticalStockLevel float64    `json:"critical_stock_level"`
	Brand              *string    `json:"brand,omitempty"`
	CreatedBy          *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProductStockDTO is a product with its aggregated on-hand amount, used by
// the critical-stock and inventory summary reports.
type ProductStockDTO struct {
	ID                 uuid.UUID         `json:"id"`
	ProductName        string            `json:"product_name"`
	ProductCode        string            `json:"product_code"`
	ProductCategory    string            `json:"product_category"`
	Unit               string            `json:"unit"`
	CriticalStockLevel float64           `json:"critical_stock_level"`
	Brand              *string           `json:"brand,omitempty"`
	TotalStock         float64           `json:"total_stock"`
	StockStatus        enums.StockStatus `json:"stock_status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewProductStockDTO builds a DTO from the aggregated row.
func NewProductStockDTO(row *ProductWithStock) *ProductStockDTO {
	return &ProductStockDTO{
		ID:                 row.ID,
		ProductName:        row.ProductName,
		ProductCode:        row.ProductCode,
		ProductCategory:    row.ProductCategory,
		Unit:               row.Unit,
		CriticalStockLevel: row.CriticalStockLevel,
		Brand:              row.Brand,
		TotalStock:         row.TotalStock,
		StockStatus:        stockcalc.StockStatus(row.TotalStock, row.CriticalStockLevel),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:                 product.ID,
		ProductName:        product.ProductName,
		ProductCode:        product.ProductCode,
		ProductCategory:    product.ProductCategory,
		Unit:               product.Unit,
		CriticalStockLevel: product.CriticalStockLevel,
		Brand:              product.Brand,
		CreatedBy:          product.CreatedBy,
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}
