package facts

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

func TestNormalizeMonth(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-01", want: "2026-01"},
		{in: " 2026-12 ", want: "2026-12"},
		{in: "2026-13", wantErr: true},
		{in: "2026-1", wantErr: true},
		{in: "202601", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := NormalizeMonth(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeMonth(%q): expected error", tc.in)
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("NormalizeMonth(%q): expected validation error, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeMonth(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeMonth(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDuplicateMonthError(t *testing.T) {
	err := duplicateMonthError("2026-03")

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatal("expected typed application error")
	}
	if typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %s", typed.Code())
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["month"] != "2026-03" {
		t.Fatalf("expected month in details, got %v", typed.Details())
	}
}

func TestPrepareFixedCost(t *testing.T) {
	input, err := prepareFixedCost(FixedCostInput{
		CostName: "  Warehouse rent ",
		Month:    " 2026-02 ",
		Amount:   decimal.NewFromInt(2500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.CostName != "Warehouse rent" {
		t.Fatalf("expected trimmed cost name, got %q", input.CostName)
	}
	if input.Month != "2026-02" {
		t.Fatalf("expected trimmed month, got %q", input.Month)
	}

	if _, err := prepareFixedCost(FixedCostInput{CostName: "  ", Month: "2026-02"}); err == nil {
		t.Fatal("expected blank cost name to be rejected")
	}
}

func TestNormalizeFiltersAllowsEmptyMonth(t *testing.T) {
	filters, err := normalizeFilters(ProductFactFilters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.Month != "" {
		t.Fatalf("expected empty month to pass through, got %q", filters.Month)
	}

	if _, err := normalizeFilters(ProductFactFilters{Month: "bad"}); err == nil {
		t.Fatal("expected invalid month filter to be rejected")
	}
}
