package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/stockcalc"
)

// StockRecordDTO represents a stock row enriched with its product identity
// and the derived alert fields.
type StockRecordDTO struct {
	ID                 uuid.UUID  `json:"id"`
	ProductID          uuid.UUID  `json:"product_id"`
	ProductName        string     `json:"product_name,omitempty"`
	ProductCode        string     `json:"product_code,omitempty"`
	PartNumber         string     `json:"part_number"`
	WarehouseLocation  string     `json:"warehouse_location"`
	CurrentAmount      float64    `json:"current_amount"`
	Unit               string     `json:"unit"`
	FirstSalesDate     *time.Time `json:"first_sales_date,omitempty"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty"`
	ConsumptionRate    *float64   `json:"consumption_rate,omitempty"`
	EstimatedStockDays *float64   `json:"estimated_stock_days,omitempty"`
	CriticalLevelDays  *float64   `json:"critical_level_days,omitempty"`
	IsCritical         bool       `json:"is_critical"`
	DaysUntilExpiry    *int       `json:"days_until_expiry,omitempty"`
	IsExpiryWarning    bool       `json:"is_expiry_warning"`
	IsExpired          bool       `json:"is_expired"`
	CreatedBy          *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NewStockRecordDTO builds a DTO from the persisted model, deriving the
// alert fields relative to now.
func NewStockRecordDTO(record *models.StockRecord, now time.Time) *StockRecordDTO {
	dto := &StockRecordDTO{
		ID:                 record.ID,
		ProductID:          record.ProductID,
		PartNumber:         record.PartNumber,
		WarehouseLocation:  record.WarehouseLocation,
		CurrentAmount:      record.CurrentAmount,
		Unit:               record.Unit,
		FirstSalesDate:     record.FirstSalesDate,
		ExpiryDate:         record.ExpiryDate,
		ConsumptionRate:    record.ConsumptionRate,
		EstimatedStockDays: record.EstimatedStockDays,
		CriticalLevelDays:  record.CriticalLevelDays,
		IsCritical:         stockcalc.IsStockCritical(record.EstimatedStockDays, record.CriticalLevelDays),
		DaysUntilExpiry:    stockcalc.DaysUntilExpiry(record.ExpiryDate, now),
		IsExpiryWarning:    stockcalc.IsExpiryWarning(record.ExpiryDate, now, stockcalc.DefaultExpiryWarningDays),
		IsExpired:          stockcalc.IsExpired(record.ExpiryDate, now),
		CreatedBy:          record.CreatedBy,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
	if record.Product != nil {
		dto.ProductName = record.Product.ProductName
		dto.ProductCode = record.Product.ProductCode
	}
	return dto
}

// AlertsDTO groups the two stock alert feeds the dashboard polls.
type AlertsDTO struct {
	LowStock []StockRecordDTO `json:"low_stock"`
	Expiring []StockRecordDTO `json:"expiring"`
}
