package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents the canonical catalog entry. Stock, sales, and the
// monthly planning figures all hang off it.
type Product struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductName        string     `gorm:"column:product_name;not null"`
	ProductCode        string     `gorm:"column:product_code;not null;uniqueIndex:uq_products_product_code"`
	ProductCategory    string     `gorm:"column:product_category;not null"`
	Unit               string     `gorm:"column:unit;not null"`
	CriticalStockLevel float64    `gorm:"column:critical_stock_level;type:numeric(12,2);not null"`
	Brand              *string    `gorm:"column:brand"`
	CreatedBy          *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
