package models

import (
	"time"

	"github.com/google/uuid"
)

// StockRecord tracks on-hand inventory for a product at a warehouse
// location. EstimatedStockDays is recomputed on every write from
// CurrentAmount and ConsumptionRate.
type StockRecord struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID          uuid.UUID  `gorm:"column:product_id;type:uuid;not null;index"`
	PartNumber         string     `gorm:"column:part_number;not null"`
	WarehouseLocation  string     `gorm:"column:warehouse_location;not null"`
	CurrentAmount      float64    `gorm:"column:current_amount;type:numeric(12,2);not null"`
	Unit               string     `gorm:"column:unit;not null"`
	FirstSalesDate     *time.Time `gorm:"column:first_sales_date;type:date"`
	ExpiryDate         *time.Time `gorm:"column:expiry_date;type:date"`
	ConsumptionRate    *float64   `gorm:"column:consumption_rate;type:numeric(12,4)"`
	EstimatedStockDays *float64   `gorm:"column:estimated_stock_days;type:numeric(12,2)"`
	CriticalLevelDays  *float64   `gorm:"column:critical_level_days;type:numeric(12,2)"`
	CreatedBy          *uuid.UUID `gorm:"column:created_by;type:uuid"`
	Product            *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
