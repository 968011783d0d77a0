package product

import (
	"testing"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

func TestApplyInputTrimsAndCopies(t *testing.T) {
	product := &models.Product{
		ProductName: "old name",
		ProductCode: "OLD-1",
	}

	brand := "  Acme  "
	applyInput(product, ProductInput{
		ProductName:        "  Widget Pro ",
		ProductCode:        " WID-100 ",
		ProductCategory:    "hardware",
		Unit:               "pcs",
		CriticalStockLevel: 25,
		Brand:              &brand,
	})

	if product.ProductName != "Widget Pro" {
		t.Fatalf("expected trimmed name, got %q", product.ProductName)
	}
	if product.ProductCode != "WID-100" {
		t.Fatalf("expected trimmed code, got %q", product.ProductCode)
	}
	if product.Brand == nil || *product.Brand != "Acme" {
		t.Fatalf("expected trimmed brand, got %v", product.Brand)
	}
	if product.CriticalStockLevel != 25 {
		t.Fatalf("expected critical stock level 25, got %v", product.CriticalStockLevel)
	}
}

func TestApplyInputBlankBrandBecomesNil(t *testing.T) {
	brand := "   "
	product := &models.Product{}
	applyInput(product, ProductInput{Brand: &brand})
	if product.Brand != nil {
		t.Fatalf("expected nil brand, got %q", *product.Brand)
	}
}

func TestDuplicateCodeErrorShape(t *testing.T) {
	err := duplicateCodeError("WID-100")
	typed := asConflict(t, err)
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["product_code"] != "WID-100" {
		t.Fatalf("expected offending code in details, got %v", details)
	}
}
