package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stocksight/stocksight-backend/api/middleware"
	product "github.com/stocksight/stocksight-backend/internal/products"
	"github.com/stocksight/stocksight-backend/pkg/logger"
)

type stubProductService struct {
	product.Service

	created   bool
	deleted   bool
	lastInput product.ProductInput
}

func (s *stubProductService) Create(ctx context.Context, userID uuid.UUID, input product.ProductInput) (*product.ProductDTO, error) {
	s.created = true
	s.lastInput = input
	return &product.ProductDTO{ID: uuid.New(), ProductName: input.ProductName, ProductCode: input.ProductCode}, nil
}

func (s *stubProductService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	s.deleted = true
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func TestProductCreate(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()

	t.Run("missing user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		ProductCreate(&stubProductService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 when user missing, got %d", rec.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		body := `{"product_name":"Widget"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
		rec := httptest.NewRecorder()
		stub := &stubProductService{}
		ProductCreate(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
		}
		if stub.created {
			t.Fatal("service should not be called on invalid payload")
		}
	})

	t.Run("success", func(t *testing.T) {
		body := `{"product_name":"  Widget  ","product_code":"WID-1","product_category":"parts","unit":"pcs","critical_stock_level":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
		rec := httptest.NewRecorder()
		stub := &stubProductService{}
		ProductCreate(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
		}
		if !stub.created {
			t.Fatal("expected Create to be invoked")
		}
		if stub.lastInput.ProductName != "Widget" {
			t.Fatalf("expected sanitized name, got %q", stub.lastInput.ProductName)
		}
	})
}

func TestProductDelete(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", "not-a-uuid")
		ctx := context.WithValue(context.Background(), chi.RouteCtxKey, routeCtx)
		ctx = middleware.WithUserID(ctx, userID.String())
		req := httptest.NewRequest(http.MethodDelete, "/api/products/invalid", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		ProductDelete(&stubProductService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid id, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", productID.String())
		ctx := context.WithValue(context.Background(), chi.RouteCtxKey, routeCtx)
		ctx = middleware.WithUserID(ctx, userID.String())
		req := httptest.NewRequest(http.MethodDelete, "/api/products/"+productID.String(), nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		stub := &stubProductService{}
		ProductDelete(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on success, got %d", rec.Code)
		}
		if !stub.deleted {
			t.Fatal("expected Delete to be invoked")
		}
	})
}
