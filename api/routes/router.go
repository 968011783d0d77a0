package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocksight/stocksight-backend/api/controllers"
	"github.com/stocksight/stocksight-backend/api/middleware"
	"github.com/stocksight/stocksight-backend/internal/audit"
	"github.com/stocksight/stocksight-backend/internal/auth"
	customer "github.com/stocksight/stocksight-backend/internal/customers"
	"github.com/stocksight/stocksight-backend/internal/facts"
	product "github.com/stocksight/stocksight-backend/internal/products"
	"github.com/stocksight/stocksight-backend/internal/reports"
	"github.com/stocksight/stocksight-backend/internal/sales"
	"github.com/stocksight/stocksight-backend/internal/stock"
	"github.com/stocksight/stocksight-backend/pkg/auth/session"
	"github.com/stocksight/stocksight-backend/pkg/config"
	"github.com/stocksight/stocksight-backend/pkg/db"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	"github.com/stocksight/stocksight-backend/pkg/logger"
	"github.com/stocksight/stocksight-backend/pkg/metrics"
	"github.com/stocksight/stocksight-backend/pkg/redis"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             *db.Client
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics

	AuthService     auth.Service
	ProductService  product.Service
	CustomerService customer.Service
	StockService    stock.Service
	SalesService    sales.Service
	FactsService    facts.Service
	AuditService    audit.Service
	ReportsService  reports.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.Logging(logg),
	)
	r.Use(middleware.CORS(cfg.CORS))

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
			r.Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
			r.Get("/me", controllers.AuthMe(deps.AuthService, logg))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.ProductService, logg))
			r.Post("/", controllers.ProductCreate(deps.ProductService, logg))
			r.Get("/critical-stock", controllers.ProductCriticalStock(deps.ProductService, logg))
			r.Get("/{id}", controllers.ProductGet(deps.ProductService, logg))
			r.Put("/{id}", controllers.ProductUpdate(deps.ProductService, logg))
			r.Delete("/{id}", controllers.ProductDelete(deps.ProductService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(deps.CustomerService, logg))
			r.Post("/", controllers.CustomerCreate(deps.CustomerService, logg))
			r.Get("/risk-analysis", controllers.CustomerRiskAnalysis(deps.CustomerService, logg))
			r.Get("/{id}", controllers.CustomerGet(deps.CustomerService, logg))
			r.Put("/{id}", controllers.CustomerUpdate(deps.CustomerService, logg))
			r.Delete("/{id}", controllers.CustomerDelete(deps.CustomerService, logg))
		})

		r.Route("/stock-records", func(r chi.Router) {
			r.Get("/", controllers.StockRecordList(deps.StockService, logg))
			r.Post("/", controllers.StockRecordCreate(deps.StockService, logg))
			r.Get("/alerts", controllers.StockAlerts(deps.StockService, logg))
			r.Get("/by-product/{productId}", controllers.StockRecordsByProduct(deps.StockService, logg))
			r.Get("/{id}", controllers.StockRecordGet(deps.StockService, logg))
			r.Put("/{id}", controllers.StockRecordUpdate(deps.StockService, logg))
			r.Delete("/{id}", controllers.StockRecordDelete(deps.StockService, logg))
		})

		r.Route("/sales-records", func(r chi.Router) {
			r.Get("/", controllers.SalesRecordList(deps.SalesService, cfg.Audit, logg))
			r.Post("/", controllers.SalesRecordCreate(deps.SalesService, logg))
			r.Get("/{id}", controllers.SalesRecordGet(deps.SalesService, logg))
			r.Put("/{id}", controllers.SalesRecordUpdate(deps.SalesService, logg))
			r.Delete("/{id}", controllers.SalesRecordDelete(deps.SalesService, logg))
		})

		r.Route("/sales-targets", func(r chi.Router) {
			r.Get("/", controllers.SalesTargetList(deps.FactsService, logg))
			r.Post("/", controllers.SalesTargetCreate(deps.FactsService, logg))
			r.Get("/{id}", controllers.SalesTargetGet(deps.FactsService, logg))
			r.Put("/{id}", controllers.SalesTargetUpdate(deps.FactsService, logg))
			r.Delete("/{id}", controllers.SalesTargetDelete(deps.FactsService, logg))
		})

		r.Route("/actual-sales", func(r chi.Router) {
			r.Get("/", controllers.ActualSalesList(deps.FactsService, logg))
			r.Post("/", controllers.ActualSalesCreate(deps.FactsService, logg))
			r.Get("/{id}", controllers.ActualSalesGet(deps.FactsService, logg))
			r.Put("/{id}", controllers.ActualSalesUpdate(deps.FactsService, logg))
			r.Delete("/{id}", controllers.ActualSalesDelete(deps.FactsService, logg))
		})

		r.Route("/product-costs", func(r chi.Router) {
			r.Get("/", controllers.ProductCostList(deps.FactsService, logg))
			r.Post("/", controllers.ProductCostCreate(deps.FactsService, logg))
			r.Get("/{id}", controllers.ProductCostGet(deps.FactsService, logg))
			r.Put("/{id}", controllers.ProductCostUpdate(deps.FactsService, logg))
			r.Delete("/{id}", controllers.ProductCostDelete(deps.FactsService, logg))
		})

		r.Route("/sales-prices", func(r chi.Router) {
			r.Get("/", controllers.SalesPriceList(deps.FactsService, logg))
			r.Post("/", controllers.SalesPriceCreate(deps.FactsService, logg))
			r.Get("/{id}", controllers.SalesPriceGet(deps.FactsService, logg))
			r.Put("/{id}", controllers.SalesPriceUpdate(deps.FactsService, logg))
			r.Delete("/{id}", controllers.SalesPriceDelete(deps.FactsService, logg))
		})

		r.Route("/fixed-costs", func(r chi.Router) {
			r.Get("/", controllers.FixedCostList(deps.FactsService, cfg.Audit, logg))
			r.Post("/", controllers.FixedCostCreate(deps.FactsService, logg))
			r.Get("/{id}", controllers.FixedCostGet(deps.FactsService, logg))
			r.Put("/{id}", controllers.FixedCostUpdate(deps.FactsService, logg))
			r.Delete("/{id}", controllers.FixedCostDelete(deps.FactsService, logg))
		})

		r.Route("/audit-logs", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, string(enums.UserRoleAdmin), string(enums.UserRoleManager)))
			r.Get("/", controllers.AuditLogList(deps.AuditService, cfg.Audit, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/inventory-summary", controllers.InventorySummary(deps.ReportsService, logg))
			r.Get("/customer-summary", controllers.CustomerSummary(deps.ReportsService, logg))
			r.Get("/stock-movement", controllers.StockMovement(deps.ReportsService, logg))
		})
	})

	return r
}
