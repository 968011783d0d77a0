package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/internal/audit"
	"github.com/stocksight/stocksight-backend/pkg/db"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/stockcalc"
)

// Service exposes warehouse stock management and alerting.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input StockRecordInput) (*StockRecordDTO, error)
	Update(ctx context.Context, userID, recordID uuid.UUID, input StockRecordInput) (*StockRecordDTO, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
	Get(ctx context.Context, recordID uuid.UUID) (*StockRecordDTO, error)
	List(ctx context.Context) ([]StockRecordDTO, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]StockRecordDTO, error)
	Alerts(ctx context.Context) (*AlertsDTO, error)
}

// StockRecordInput holds the validated payload to create or replace a stock
// record. EstimatedStockDays is not accepted from clients; it is derived
// from CurrentAmount and ConsumptionRate at write time.
type StockRecordInput struct {
	ProductID         uuid.UUID
	PartNumber        string
	WarehouseLocation string
	CurrentAmount     float64
	Unit              string
	FirstSalesDate    *time.Time
	ExpiryDate        *time.Time
	ConsumptionRate   *float64
	CriticalLevelDays *float64
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productFinder
	dbClient *db.Client
	auditor  audit.Recorder
	now      func() time.Time
}

// NewService constructs a stock service instance.
func NewService(repo *Repository, products productFinder, dbClient *db.Client, auditor audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if auditor == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{
		repo:     repo,
		products: products,
		dbClient: dbClient,
		auditor:  auditor,
		now:      time.Now,
	}, nil
}

// Create inserts the stock record and its audit entry in one transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input StockRecordInput) (*StockRecordDTO, error) {
	if err := s.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	record := &models.StockRecord{}
	applyInput(record, input)
	record.CreatedBy = &userID

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		created, err := txRepo.Create(ctx, record)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert stock record")
		}

		id := created.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionCreate,
			EntityType: enums.EntityTypeStockRecord,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create stock record")
	}

	return s.loadDTO(ctx, record.ID)
}

// Update replaces the stock record fields and records the change atomically.
func (s *service) Update(ctx context.Context, userID, recordID uuid.UUID, input StockRecordInput) (*StockRecordDTO, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "stock record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock record")
	}

	if record.ProductID != input.ProductID {
		if err := s.checkProduct(ctx, input.ProductID); err != nil {
			return nil, err
		}
	}

	applyInput(record, input)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.Update(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update stock record")
		}

		id := record.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionUpdate,
			EntityType: enums.EntityTypeStockRecord,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update stock record")
	}

	return s.loadDTO(ctx, record.ID)
}

// Delete removes the stock record and audits the deletion.
func (s *service) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "stock record not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock record")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, recordID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete stock record")
		}

		id := recordID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionDelete,
			EntityType: enums.EntityTypeStockRecord,
			EntityID:   &id,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete stock record")
	}
	return nil
}

// Get loads one stock record by ID.
func (s *service) Get(ctx context.Context, recordID uuid.UUID) (*StockRecordDTO, error) {
	return s.loadDTO(ctx, recordID)
}

// List returns all stock records newest-first.
func (s *service) List(ctx context.Context) ([]StockRecordDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list stock records")
	}
	return s.toDTOs(rows), nil
}

// ListByProduct returns the stock records for one product newest-first.
func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]StockRecordDTO, error) {
	rows, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list stock records by product")
	}
	return s.toDTOs(rows), nil
}

// Alerts returns the low-stock and expiring feeds for the dashboard.
func (s *service) Alerts(ctx context.Context) (*AlertsDTO, error) {
	lowStock, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list low stock")
	}
	expiring, err := s.repo.ListExpiring(ctx, stockcalc.DefaultExpiryWarningDays)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list expiring stock")
	}
	return &AlertsDTO{
		LowStock: s.toDTOs(lowStock),
		Expiring: s.toDTOs(expiring),
	}, nil
}

func (s *service) loadDTO(ctx context.Context, recordID uuid.UUID) (*StockRecordDTO, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "stock record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock record")
	}
	return NewStockRecordDTO(record, s.now()), nil
}

func (s *service) checkProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "product not found").
				WithDetails(map[string]string{"product_id": productID.String()})
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return nil
}

func (s *service) toDTOs(rows []models.StockRecord) []StockRecordDTO {
	now := s.now()
	out := make([]StockRecordDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewStockRecordDTO(&rows[i], now))
	}
	return out
}

func applyInput(record *models.StockRecord, input StockRecordInput) {
	record.ProductID = input.ProductID
	record.PartNumber = strings.TrimSpace(input.PartNumber)
	record.WarehouseLocation = strings.TrimSpace(input.WarehouseLocation)
	record.CurrentAmount = input.CurrentAmount
	record.Unit = strings.TrimSpace(input.Unit)
	record.FirstSalesDate = input.FirstSalesDate
	record.ExpiryDate = input.ExpiryDate
	record.ConsumptionRate = input.ConsumptionRate
	record.CriticalLevelDays = input.CriticalLevelDays
	record.EstimatedStockDays = deriveEstimatedDays(input.CurrentAmount, input.ConsumptionRate)
	record.Product = nil
}

// deriveEstimatedDays keeps estimated_stock_days consistent with the stored
// amount and rate. A missing or non-positive rate clears the estimate.
func deriveEstimatedDays(currentAmount float64, consumptionRate *float64) *float64 {
	if consumptionRate == nil || *consumptionRate <= 0 {
		return nil
	}
	days := stockcalc.EstimatedStockDays(currentAmount, *consumptionRate)
	return &days
}
