package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/internal/audit"
	"github.com/stocksight/stocksight-backend/pkg/db"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

const productCodeConstraint = "uq_products_product_code"

// Service exposes product catalog management operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, userID, productID uuid.UUID, input ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Get(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)
	List(ctx context.Context, filters ListFilters) ([]ProductDTO, error)
	CriticalStock(ctx context.Context) ([]ProductStockDTO, error)
}

// ProductInput holds the validated payload to create or replace a product.
type ProductInput struct {
	ProductName        string
	ProductCode        string
	ProductCategory    string
	Unit               string
	CriticalStockLevel float64
	Brand              *string
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	auditor  audit.Recorder
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client, auditor audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if auditor == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, dbClient: dbClient, auditor: auditor}, nil
}

// Create inserts the product and its audit entry in one transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input ProductInput) (*ProductDTO, error) {
	// Friendly duplicate check first; the unique index stays authoritative
	// under concurrent writes.
	if exists, err := s.repo.CodeExists(ctx, input.ProductCode, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product code")
	} else if exists {
		return nil, duplicateCodeError(input.ProductCode)
	}

	product := newModel(input)
	product.CreatedBy = &userID

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		created, err := txRepo.Create(ctx, product)
		if err != nil {
			if db.IsUniqueViolation(err, productCodeConstraint) {
				return duplicateCodeError(input.ProductCode)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
		}

		id := created.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionCreate,
			EntityType: enums.EntityTypeProduct,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}

	return NewProductDTO(product), nil
}

// Update replaces the product fields and records the change atomically.
func (s *service) Update(ctx context.Context, userID, productID uuid.UUID, input ProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if exists, err := s.repo.CodeExists(ctx, input.ProductCode, &productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product code")
	} else if exists {
		return nil, duplicateCodeError(input.ProductCode)
	}

	applyInput(product, input)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.Update(ctx, product); err != nil {
			if db.IsUniqueViolation(err, productCodeConstraint) {
				return duplicateCodeError(input.ProductCode)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
		}

		id := product.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionUpdate,
			EntityType: enums.EntityTypeProduct,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}

	return NewProductDTO(product), nil
}

// Delete removes the product; stock rows cascade at the schema level.
func (s *service) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, productID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
		}

		id := productID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionDelete,
			EntityType: enums.EntityTypeProduct,
			EntityID:   &id,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// Get loads one product by ID.
func (s *service) Get(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewProductDTO(product), nil
}

// List returns the catalog newest-first with optional filters.
func (s *service) List(ctx context.Context, filters ListFilters) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i]))
	}
	return out, nil
}

// CriticalStock returns products whose total on-hand amount sits at or
// below their critical level, lowest stock first.
func (s *service) CriticalStock(ctx context.Context) ([]ProductStockDTO, error) {
	rows, err := s.repo.ListCriticalStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list critical stock")
	}

	out := make([]ProductStockDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductStockDTO(&rows[i]))
	}
	return out, nil
}

func newModel(input ProductInput) *models.Product {
	product := &models.Product{}
	applyInput(product, input)
	return product
}

func applyInput(product *models.Product, input ProductInput) {
	product.ProductName = strings.TrimSpace(input.ProductName)
	product.ProductCode = strings.TrimSpace(input.ProductCode)
	product.ProductCategory = strings.TrimSpace(input.ProductCategory)
	product.Unit = strings.TrimSpace(input.Unit)
	product.CriticalStockLevel = input.CriticalStockLevel
	product.Brand = trimPtr(input.Brand)
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

func duplicateCodeError(code string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "product code already exists").
		WithDetails(map[string]string{"product_code": code})
}
