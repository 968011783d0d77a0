package validators

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

type customerPayload struct {
	CustomerName      string  `json:"customer_name" validate:"required"`
	CustomerCode      string  `json:"customer_code" validate:"required,min=2,max=50"`
	SalesRep          string  `json:"sales_rep" validate:"required"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,phonenumber"`
	PaymentTermsLimit float64 `json:"payment_terms_limit" validate:"gte=0"`
	BalanceRiskLimit  float64 `json:"balance_risk_limit" validate:"gte=0"`
}

func decodeCustomer(t *testing.T, body string) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/api/customers", strings.NewReader(body))
	var payload customerPayload
	return DecodeJSONBody(r, &payload)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	body := `{"customer_name":"Acme","customer_code":"ACM-1","sales_rep":"jo","email":"jo@acme.test","phone":"+31 20 123 4567","payment_terms_limit":1000,"balance_risk_limit":2000}`
	if err := decodeCustomer(t, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyCollectsFieldErrors(t *testing.T) {
	// Only the name is missing; every other field is within bounds.
	body := `{"customer_code":"ACM-1","sales_rep":"jo","payment_terms_limit":0,"balance_risk_limit":0}`
	err := decodeCustomer(t, body)
	if err == nil {
		t.Fatal("expected validation error")
	}

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map details, got %T", typed.Details())
	}
	if len(details) != 1 {
		t.Fatalf("expected exactly one failing field, got %v", details)
	}
	if details["customer_name"] != "is required" {
		t.Fatalf("expected customer_name failure, got %v", details)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	body := `{"customer_name":"Acme","customer_code":"ACM-1","sales_rep":"jo","payment_terms_limit":0,"balance_risk_limit":0,"surprise":true}`
	err := decodeCustomer(t, body)
	if err == nil {
		t.Fatal("expected unknown field rejection")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyPhoneRule(t *testing.T) {
	short := `{"customer_name":"Acme","customer_code":"ACM-1","sales_rep":"jo","phone":"12-34","payment_terms_limit":0,"balance_risk_limit":0}`
	err := decodeCustomer(t, short)
	if err == nil {
		t.Fatal("expected phone with fewer than 7 digits to fail")
	}

	typed := pkgerrors.As(err)
	details, ok := typed.Details().(map[string]string)
	if !ok || details["phone"] == "" {
		t.Fatalf("expected phone failure detail, got %v", typed.Details())
	}
}

func TestDecodeJSONBodyDecimalBounds(t *testing.T) {
	type limitPayload struct {
		Name             string           `json:"name" validate:"required"`
		PaymentLimit     *decimal.Decimal `json:"payment_limit,omitempty" validate:"omitempty,gte=0"`
		BalanceRiskLimit *decimal.Decimal `json:"balance_risk_limit,omitempty" validate:"omitempty,gte=0"`
	}

	decode := func(t *testing.T, body string) error {
		t.Helper()
		r := httptest.NewRequest("POST", "/api/customers", strings.NewReader(body))
		var payload limitPayload
		return DecodeJSONBody(r, &payload)
	}

	t.Run("negative values rejected", func(t *testing.T) {
		err := decode(t, `{"name":"Acme","payment_limit":-500,"balance_risk_limit":-100}`)
		if err == nil {
			t.Fatal("expected negative limits to fail validation")
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		details, ok := typed.Details().(map[string]string)
		if !ok {
			t.Fatalf("expected field map details, got %T", typed.Details())
		}
		if details["payment_limit"] == "" || details["balance_risk_limit"] == "" {
			t.Fatalf("expected both limits flagged, got %v", details)
		}
	})

	t.Run("zero and positive accepted", func(t *testing.T) {
		if err := decode(t, `{"name":"Acme","payment_limit":0,"balance_risk_limit":1500.50}`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent accepted", func(t *testing.T) {
		if err := decode(t, `{"name":"Acme"}`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDateRulesUseDayBoundaries(t *testing.T) {
	type datePayload struct {
		Expiry     *time.Time `json:"expiry,omitempty" validate:"omitempty,futuredate"`
		FirstSales *time.Time `json:"first_sales,omitempty" validate:"omitempty,pastdate"`
	}

	midnight := startOfToday()
	earlierToday := midnight.Add(time.Second)
	lateToday := midnight.Add(24*time.Hour - time.Second)
	tomorrow := midnight.AddDate(0, 0, 1)
	yesterday := midnight.AddDate(0, 0, -1)

	cases := []struct {
		name    string
		payload datePayload
		wantErr bool
	}{
		{"expiry earlier today still counts as future", datePayload{Expiry: &earlierToday}, false},
		{"expiry yesterday rejected", datePayload{Expiry: &yesterday}, true},
		{"expiry tomorrow accepted", datePayload{Expiry: &tomorrow}, false},
		{"first sales late today accepted", datePayload{FirstSales: &lateToday}, false},
		{"first sales tomorrow rejected", datePayload{FirstSales: &tomorrow}, true},
		{"first sales yesterday accepted", datePayload{FirstSales: &yesterday}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.payload)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation failure")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncated value, got %q", got)
	}
}
