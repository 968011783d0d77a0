package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/api/middleware"
	customer "github.com/stocksight/stocksight-backend/internal/customers"
)

type stubCustomerService struct {
	customer.Service

	created   bool
	lastInput customer.CustomerInput
}

func (s *stubCustomerService) Create(ctx context.Context, userID uuid.UUID, input customer.CustomerInput) (*customer.CustomerDTO, error) {
	s.created = true
	s.lastInput = input
	return &customer.CustomerDTO{ID: uuid.New(), CustomerName: input.CustomerName, CustomerCode: input.CustomerCode}, nil
}

func TestCustomerCreateRejectsNegativeLimits(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()

	body := `{"customer_name":"Acme","customer_code":"AC01","sales_rep":"rep","payment_terms_limit":-500,"balance_risk_limit":-100}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()
	stub := &stubCustomerService{}
	CustomerCreate(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative limits, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.created {
		t.Fatal("service should not be called on invalid payload")
	}

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if envelope.Success {
		t.Fatal("expected success=false on error response")
	}
	if envelope.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", envelope.Error.Code)
	}
	if envelope.Error.Details["payment_terms_limit"] == "" || envelope.Error.Details["balance_risk_limit"] == "" {
		t.Fatalf("expected both limit fields flagged, got %v", envelope.Error.Details)
	}
}

func TestCustomerCreateAcceptsZeroAndAbsentLimits(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()

	cases := map[string]string{
		"zero limits":   `{"customer_name":"Acme","customer_code":"AC01","sales_rep":"rep","payment_terms_limit":0,"balance_risk_limit":0}`,
		"absent limits": `{"customer_name":"Acme","customer_code":"AC01","sales_rep":"rep"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
			req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
			rec := httptest.NewRecorder()
			stub := &stubCustomerService{}
			CustomerCreate(stub, logg).ServeHTTP(rec, req)
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !stub.created {
				t.Fatal("expected Create to be invoked")
			}
		})
	}
}
