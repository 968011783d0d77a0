package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stocksight/stocksight-backend/pkg/config"
	"github.com/stocksight/stocksight-backend/pkg/logger"
)

func testDeps() Deps {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}
	cfg.AuthRateLimit = config.AuthRateLimitConfig{LoginWindow: time.Minute, LoginEmailLimit: 5, LoginIPLimit: 20}
	cfg.Audit = config.AuditConfig{DefaultPageSize: 50, MaxPageSize: 200}
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"*"}}

	return Deps{
		Config: cfg,
		Logger: logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard}),
	}
}

func TestRouterHealthLive(t *testing.T) {
	router := NewRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterProtectedRoutesRequireAuth(t *testing.T) {
	router := NewRouter(testDeps())

	paths := []string{
		"/api/products",
		"/api/customers",
		"/api/stock-records",
		"/api/sales-records",
		"/api/sales-targets",
		"/api/actual-sales",
		"/api/product-costs",
		"/api/sales-prices",
		"/api/fixed-costs",
		"/api/audit-logs",
		"/api/reports/inventory-summary",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without credentials, got %d", path, rec.Code)
		}
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := NewRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
