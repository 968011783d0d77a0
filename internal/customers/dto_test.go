package customer

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestNewCustomerDTORiskFields(t *testing.T) {
	tests := []struct {
		name        string
		balance     *decimal.Decimal
		limit       *decimal.Decimal
		wantLevel   string
		wantPercent *float64
	}{
		{"no limit set", dec(500), nil, "unknown", nil},
		{"at limit", dec(1000), dec(1000), "high", floatPtr(100)},
		{"medium band", dec(800), dec(1000), "medium", floatPtr(80)},
		{"low band", dec(750), dec(1000), "low", floatPtr(75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := NewCustomerDTO(&models.Customer{
				CustomerName:      "Acme Retail",
				CustomerCode:      "CUST-1",
				SalesRep:          "lee",
				PaymentTermsLimit: tt.balance,
				BalanceRiskLimit:  tt.limit,
			})
			if dto.RiskLevel != tt.wantLevel {
				t.Fatalf("risk level = %q, want %q", dto.RiskLevel, tt.wantLevel)
			}
			if (dto.RiskPercentage == nil) != (tt.wantPercent == nil) {
				t.Fatalf("risk percentage presence mismatch: %v", dto.RiskPercentage)
			}
			if dto.RiskPercentage != nil && *dto.RiskPercentage != *tt.wantPercent {
				t.Fatalf("risk percentage = %v, want %v", *dto.RiskPercentage, *tt.wantPercent)
			}
		})
	}
}

func TestApplyInputTrimsOptionalFields(t *testing.T) {
	email := " buyer@example.com "
	blank := "   "
	customer := &models.Customer{}
	applyInput(customer, CustomerInput{
		CustomerName: " Acme Retail ",
		CustomerCode: " CUST-1 ",
		SalesRep:     "lee",
		Email:        &email,
		Address:      &blank,
	})

	if customer.CustomerName != "Acme Retail" {
		t.Fatalf("expected trimmed name, got %q", customer.CustomerName)
	}
	if customer.Email == nil || *customer.Email != "buyer@example.com" {
		t.Fatalf("expected trimmed email, got %v", customer.Email)
	}
	if customer.Address != nil {
		t.Fatalf("expected blank address to become nil, got %q", *customer.Address)
	}
}

func floatPtr(v float64) *float64 { return &v }
