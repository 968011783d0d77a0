package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The monthly planning figures all share the same shape: one row per
// product (or cost name) per YYYY-MM month, enforced by a composite unique
// index so upserts stay unambiguous.

// SalesTarget is the planned sales amount for a product in a month.
type SalesTarget struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_sales_targets_product_month"`
	Month        string          `gorm:"column:month;not null;uniqueIndex:uq_sales_targets_product_month"`
	TargetAmount decimal.Decimal `gorm:"column:target_amount;type:numeric(14,2);not null"`
	Product      *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// ActualSales is the realized sales amount for a product in a month.
type ActualSales struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID         uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_actual_sales_product_month"`
	Month             string          `gorm:"column:month;not null;uniqueIndex:uq_actual_sales_product_month"`
	ActualSalesAmount decimal.Decimal `gorm:"column:actual_sales_amount;type:numeric(14,2);not null"`
	Product           *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductCost is the unit cost of a product in a month.
type ProductCost struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_product_costs_product_month"`
	Month     string          `gorm:"column:month;not null;uniqueIndex:uq_product_costs_product_month"`
	UnitCost  decimal.Decimal `gorm:"column:unit_cost;type:numeric(14,2);not null"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// SalesPrice is the list price of a product in a month.
type SalesPrice struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID  uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_sales_prices_product_month"`
	Month      string          `gorm:"column:month;not null;uniqueIndex:uq_sales_prices_product_month"`
	SalesPrice decimal.Decimal `gorm:"column:sales_price;type:numeric(14,2);not null"`
	Product    *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// FixedCost is a named overhead amount for a month, keyed by name rather
// than product.
type FixedCost struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CostName  string          `gorm:"column:cost_name;not null;uniqueIndex:uq_fixed_costs_name_month"`
	Month     string          `gorm:"column:month;not null;uniqueIndex:uq_fixed_costs_name_month"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
