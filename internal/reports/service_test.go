package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	product "github.com/stocksight/stocksight-backend/internal/products"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
)

type fakeCounter struct {
	categories int64
	regions    int64
	countries  int64
}

func (f *fakeCounter) DistinctCategoryCount(context.Context) (int64, error) { return f.categories, nil }
func (f *fakeCounter) DistinctRegionCount(context.Context) (int64, error)   { return f.regions, nil }
func (f *fakeCounter) DistinctCountryCount(context.Context) (int64, error)  { return f.countries, nil }

type fakeProducts struct {
	rows []product.ProductWithStock
}

func (f *fakeProducts) ListWithStock(context.Context) ([]product.ProductWithStock, error) {
	return f.rows, nil
}

type fakeCustomers struct {
	rows []models.Customer
}

func (f *fakeCustomers) ListByName(context.Context) ([]models.Customer, error) {
	return f.rows, nil
}

type fakeStock struct {
	rows []models.StockRecord
}

func (f *fakeStock) List(context.Context) ([]models.StockRecord, error) {
	return f.rows, nil
}

func newTestService(t *testing.T, counts *fakeCounter, products *fakeProducts, customers *fakeCustomers, stockRepo *fakeStock) *service {
	t.Helper()
	svc, err := NewService(counts, products, customers, stockRepo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc.(*service)
}

func floatPtr(v float64) *float64 { return &v }

func TestInventorySummaryCountsCritical(t *testing.T) {
	products := &fakeProducts{rows: []product.ProductWithStock{
		{ID: uuid.New(), ProductName: "A", CriticalStockLevel: 10, TotalStock: 5},
		{ID: uuid.New(), ProductName: "B", CriticalStockLevel: 10, TotalStock: 10},
		{ID: uuid.New(), ProductName: "C", CriticalStockLevel: 10, TotalStock: 25},
	}}
	svc := newTestService(t, &fakeCounter{categories: 2}, products, &fakeCustomers{}, &fakeStock{})

	summary, err := svc.InventorySummary(context.Background())
	if err != nil {
		t.Fatalf("InventorySummary: %v", err)
	}
	if summary.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", summary.TotalProducts)
	}
	if summary.TotalCategories != 2 {
		t.Fatalf("expected 2 categories, got %d", summary.TotalCategories)
	}
	if summary.CriticalItems != 2 {
		t.Fatalf("expected 2 critical items, got %d", summary.CriticalItems)
	}
}

func TestCustomerSummary(t *testing.T) {
	customers := &fakeCustomers{rows: []models.Customer{
		{ID: uuid.New(), CustomerName: "Acme"},
		{ID: uuid.New(), CustomerName: "Globex"},
	}}
	svc := newTestService(t, &fakeCounter{regions: 4, countries: 3}, &fakeProducts{}, customers, &fakeStock{})

	summary, err := svc.CustomerSummary(context.Background())
	if err != nil {
		t.Fatalf("CustomerSummary: %v", err)
	}
	if summary.TotalCustomers != 2 {
		t.Fatalf("expected 2 customers, got %d", summary.TotalCustomers)
	}
	if summary.TotalRegions != 4 || summary.TotalCountries != 3 {
		t.Fatalf("expected 4 regions and 3 countries, got %d and %d", summary.TotalRegions, summary.TotalCountries)
	}
	if summary.Customers[0].CustomerName != "Acme" {
		t.Fatalf("expected Acme first, got %q", summary.Customers[0].CustomerName)
	}
}

func TestStockMovementCounts(t *testing.T) {
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 5)
	expired := now.AddDate(0, 0, -3)
	far := now.AddDate(0, 0, 90)

	stockRepo := &fakeStock{rows: []models.StockRecord{
		{ID: uuid.New(), EstimatedStockDays: floatPtr(5), CriticalLevelDays: floatPtr(10), ExpiryDate: &soon},
		{ID: uuid.New(), EstimatedStockDays: floatPtr(20), CriticalLevelDays: floatPtr(10), ExpiryDate: &expired},
		{ID: uuid.New(), ExpiryDate: &far},
	}}
	svc := newTestService(t, &fakeCounter{}, &fakeProducts{}, &fakeCustomers{}, stockRepo)
	svc.now = func() time.Time { return now }

	summary, err := svc.StockMovement(context.Background())
	if err != nil {
		t.Fatalf("StockMovement: %v", err)
	}
	if summary.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", summary.TotalItems)
	}
	if summary.LowStockItems != 1 {
		t.Fatalf("expected 1 low stock item, got %d", summary.LowStockItems)
	}
	// The 5-day and already-expired rows both fall inside the window.
	if summary.ExpiringItems != 2 {
		t.Fatalf("expected 2 expiring items, got %d", summary.ExpiringItems)
	}
}
