package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

// SalesRecordDTO represents one invoice line returned to clients.
type SalesRecordDTO struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     time.Time       `json:"due_date"`
	InvoiceNo   string          `json:"invoice_no"`
	PartNo      *string         `json:"part_no,omitempty"`
	Customer    string          `json:"customer"`
	Quantity    float64         `json:"quantity"`
	Pricing     decimal.Decimal `json:"pricing"`
	VAT         decimal.Decimal `json:"vat"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	ProductCode string          `json:"product_code,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewSalesRecordDTO builds a DTO from the persisted model.
func NewSalesRecordDTO(record *models.SalesRecord) *SalesRecordDTO {
	dto := &SalesRecordDTO{
		ID:          record.ID,
		InvoiceDate: record.InvoiceDate,
		DueDate:     record.DueDate,
		InvoiceNo:   record.InvoiceNo,
		PartNo:      record.PartNo,
		Customer:    record.Customer,
		Quantity:    record.Quantity,
		Pricing:     record.Pricing,
		VAT:         record.VAT,
		ProductID:   record.ProductID,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
	if record.Product != nil {
		dto.ProductName = record.Product.ProductName
		dto.ProductCode = record.Product.ProductCode
	}
	return dto
}

// ListResult is one page of sales records plus pagination metadata.
type ListResult struct {
	Records    []SalesRecordDTO `json:"data"`
	Pagination types.Pagination `json:"pagination"`
}
