package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

func stringPtr(v string) *string { return &v }

func TestApplyInputTrimsFields(t *testing.T) {
	record := &models.SalesRecord{}
	applyInput(record, SalesRecordInput{
		InvoiceDate: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNo:   " INV-2026-001 ",
		PartNo:      stringPtr("  "),
		Customer:    " Acme Corp ",
		Quantity:    12,
		Pricing:     decimal.NewFromInt(1500),
		VAT:         decimal.NewFromInt(300),
	})

	if record.InvoiceNo != "INV-2026-001" {
		t.Fatalf("expected trimmed invoice number, got %q", record.InvoiceNo)
	}
	if record.Customer != "Acme Corp" {
		t.Fatalf("expected trimmed customer, got %q", record.Customer)
	}
	if record.PartNo != nil {
		t.Fatalf("expected blank part number to become nil, got %q", *record.PartNo)
	}
}

func TestApplyInputKeepsProductLink(t *testing.T) {
	productID := uuid.New()
	record := &models.SalesRecord{}
	applyInput(record, SalesRecordInput{
		InvoiceNo: "INV-1",
		Customer:  "Acme",
		ProductID: &productID,
	})

	if record.ProductID == nil || *record.ProductID != productID {
		t.Fatalf("expected product link %s, got %v", productID, record.ProductID)
	}
}

func TestDuplicateInvoiceError(t *testing.T) {
	err := duplicateInvoiceError(" INV-9 ")

	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatal("expected typed application error")
	}
	if appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %s", appErr.Code())
	}
	details, ok := appErr.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected string map details, got %T", appErr.Details())
	}
	if details["invoice_no"] != "INV-9" {
		t.Fatalf("expected trimmed invoice number in details, got %q", details["invoice_no"])
	}
}

func TestNewSalesRecordDTOProductIdentity(t *testing.T) {
	productID := uuid.New()
	record := &models.SalesRecord{
		ID:        uuid.New(),
		InvoiceNo: "INV-4",
		Customer:  "Acme",
		Pricing:   decimal.NewFromInt(100),
		VAT:       decimal.NewFromInt(20),
		ProductID: &productID,
		Product: &models.Product{
			ID:          productID,
			ProductName: "Widget",
			ProductCode: "WGT-1",
		},
	}

	dto := NewSalesRecordDTO(record)

	if dto.ProductName != "Widget" || dto.ProductCode != "WGT-1" {
		t.Fatalf("expected product identity on DTO, got %q %q", dto.ProductName, dto.ProductCode)
	}

	orphan := NewSalesRecordDTO(&models.SalesRecord{InvoiceNo: "INV-5"})
	if orphan.ProductName != "" || orphan.ProductCode != "" {
		t.Fatal("expected empty identity for unlinked record")
	}
}
