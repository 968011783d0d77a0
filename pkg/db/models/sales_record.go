package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRecord captures one invoice line. Customer is stored as free text
// because invoices predate the customer registry.
type SalesRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceDate time.Time       `gorm:"column:invoice_date;type:date;not null"`
	DueDate     time.Time       `gorm:"column:due_date;type:date;not null"`
	InvoiceNo   string          `gorm:"column:invoice_no;not null;uniqueIndex:uq_sales_records_invoice_no"`
	PartNo      *string         `gorm:"column:part_no"`
	Customer    string          `gorm:"column:customer;not null"`
	Quantity    float64         `gorm:"column:quantity;type:numeric(12,2);not null"`
	Pricing     decimal.Decimal `gorm:"column:pricing;type:numeric(14,2);not null"`
	VAT         decimal.Decimal `gorm:"column:vat;type:numeric(14,2);not null"`
	ProductID   *uuid.UUID      `gorm:"column:product_id;type:uuid;index"`
	Product     *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
