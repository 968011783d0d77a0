package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/internal/audit"
	"github.com/stocksight/stocksight-backend/pkg/db"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

const invoiceNoConstraint = "uq_sales_records_invoice_no"

// Service exposes invoice line management operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input SalesRecordInput) (*SalesRecordDTO, error)
	Update(ctx context.Context, userID, recordID uuid.UUID, input SalesRecordInput) (*SalesRecordDTO, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
	Get(ctx context.Context, recordID uuid.UUID) (*SalesRecordDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
}

// SalesRecordInput holds the validated payload to create or replace an
// invoice line.
type SalesRecordInput struct {
	InvoiceDate time.Time
	DueDate     time.Time
	InvoiceNo   string
	PartNo      *string
	Customer    string
	Quantity    float64
	Pricing     decimal.Decimal
	VAT         decimal.Decimal
	ProductID   *uuid.UUID
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productFinder
	dbClient *db.Client
	auditor  audit.Recorder
}

// NewService constructs a sales service instance.
func NewService(repo *Repository, products productFinder, dbClient *db.Client, auditor audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
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
	return &service{repo: repo, products: products, dbClient: dbClient, auditor: auditor}, nil
}

// Create inserts the invoice line and its audit entry in one transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input SalesRecordInput) (*SalesRecordDTO, error) {
	if err := s.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	if exists, err := s.repo.InvoiceNoExists(ctx, strings.TrimSpace(input.InvoiceNo), nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check invoice number")
	} else if exists {
		return nil, duplicateInvoiceError(input.InvoiceNo)
	}

	record := &models.SalesRecord{}
	applyInput(record, input)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		created, err := txRepo.Create(ctx, record)
		if err != nil {
			if db.IsUniqueViolation(err, invoiceNoConstraint) {
				return duplicateInvoiceError(input.InvoiceNo)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sales record")
		}

		id := created.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionCreate,
			EntityType: enums.EntityTypeSalesRecord,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create sales record")
	}

	return s.loadDTO(ctx, record.ID)
}

// Update replaces the invoice line fields and records the change atomically.
func (s *service) Update(ctx context.Context, userID, recordID uuid.UUID, input SalesRecordInput) (*SalesRecordDTO, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sales record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sales record")
	}

	if err := s.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	if exists, err := s.repo.InvoiceNoExists(ctx, strings.TrimSpace(input.InvoiceNo), &recordID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check invoice number")
	} else if exists {
		return nil, duplicateInvoiceError(input.InvoiceNo)
	}

	applyInput(record, input)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.Update(ctx, record); err != nil {
			if db.IsUniqueViolation(err, invoiceNoConstraint) {
				return duplicateInvoiceError(input.InvoiceNo)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update sales record")
		}

		id := record.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionUpdate,
			EntityType: enums.EntityTypeSalesRecord,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update sales record")
	}

	return s.loadDTO(ctx, record.ID)
}

// Delete removes the invoice line and audits the deletion.
func (s *service) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "sales record not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sales record")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, recordID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete sales record")
		}

		id := recordID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionDelete,
			EntityType: enums.EntityTypeSalesRecord,
			EntityID:   &id,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete sales record")
	}
	return nil
}

// Get loads one invoice line by ID.
func (s *service) Get(ctx context.Context, recordID uuid.UUID) (*SalesRecordDTO, error) {
	return s.loadDTO(ctx, recordID)
}

// List returns one page of invoice lines, newest invoice date first.
func (s *service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	params = params.Normalize()

	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list sales records")
	}

	out := make([]SalesRecordDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSalesRecordDTO(&rows[i]))
	}
	return &ListResult{
		Records: out,
		Pagination: types.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: pagination.Pages(total, params.Limit),
		},
	}, nil
}

func (s *service) loadDTO(ctx context.Context, recordID uuid.UUID) (*SalesRecordDTO, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sales record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sales record")
	}
	return NewSalesRecordDTO(record), nil
}

func (s *service) checkProduct(ctx context.Context, productID *uuid.UUID) error {
	if productID == nil {
		return nil
	}
	if _, err := s.products.FindByID(ctx, *productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "product not found").
				WithDetails(map[string]string{"product_id": productID.String()})
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return nil
}

func applyInput(record *models.SalesRecord, input SalesRecordInput) {
	record.InvoiceDate = input.InvoiceDate
	record.DueDate = input.DueDate
	record.InvoiceNo = strings.TrimSpace(input.InvoiceNo)
	record.PartNo = trimPtr(input.PartNo)
	record.Customer = strings.TrimSpace(input.Customer)
	record.Quantity = input.Quantity
	record.Pricing = input.Pricing
	record.VAT = input.VAT
	record.ProductID = input.ProductID
	record.Product = nil
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func duplicateInvoiceError(invoiceNo string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "invoice number already exists").
		WithDetails(map[string]string{"invoice_no": strings.TrimSpace(invoiceNo)})
}
