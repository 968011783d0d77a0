package facts

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

// ProductFactDTO is the shared payload for the four product-month figures.
// The fact kind is carried by the endpoint, so the amount field is uniform.
type ProductFactDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductCode string          `json:"product_code,omitempty"`
	Month       string          `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FixedCostDTO is the payload for one monthly overhead row.
type FixedCostDTO struct {
	ID        uuid.UUID       `json:"id"`
	CostName  string          `json:"cost_name"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FixedCostListResult is one page of fixed costs plus pagination metadata.
type FixedCostListResult struct {
	Costs      []FixedCostDTO   `json:"data"`
	Pagination types.Pagination `json:"pagination"`
}

func newProductFactDTO(id, productID uuid.UUID, product *models.Product, month string, amount decimal.Decimal, createdAt, updatedAt time.Time) *ProductFactDTO {
	dto := &ProductFactDTO{
		ID:        id,
		ProductID: productID,
		Month:     month,
		Amount:    amount,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if product != nil {
		dto.ProductName = product.ProductName
		dto.ProductCode = product.ProductCode
	}
	return dto
}

// NewSalesTargetDTO builds a DTO from the persisted sales target.
func NewSalesTargetDTO(row *models.SalesTarget) *ProductFactDTO {
	return newProductFactDTO(row.ID, row.ProductID, row.Product, row.Month, row.TargetAmount, row.CreatedAt, row.UpdatedAt)
}

// NewActualSalesDTO builds a DTO from the persisted actual sales row.
func NewActualSalesDTO(row *models.ActualSales) *ProductFactDTO {
	return newProductFactDTO(row.ID, row.ProductID, row.Product, row.Month, row.ActualSalesAmount, row.CreatedAt, row.UpdatedAt)
}

// NewProductCostDTO builds a DTO from the persisted product cost.
func NewProductCostDTO(row *models.ProductCost) *ProductFactDTO {
	return newProductFactDTO(row.ID, row.ProductID, row.Product, row.Month, row.UnitCost, row.CreatedAt, row.UpdatedAt)
}

// NewSalesPriceDTO builds a DTO from the persisted sales price.
func NewSalesPriceDTO(row *models.SalesPrice) *ProductFactDTO {
	return newProductFactDTO(row.ID, row.ProductID, row.Product, row.Month, row.SalesPrice, row.CreatedAt, row.UpdatedAt)
}

// NewFixedCostDTO builds a DTO from the persisted fixed cost.
func NewFixedCostDTO(row *models.FixedCost) *FixedCostDTO {
	return &FixedCostDTO{
		ID:        row.ID,
		CostName:  row.CostName,
		Month:     row.Month,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
