package facts

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// Service exposes the monthly planning figure operations.
type Service interface {
	CreateSalesTarget(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	UpdateSalesTarget(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	DeleteSalesTarget(ctx context.Context, userID, id uuid.UUID) error
	GetSalesTarget(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error)
	ListSalesTargets(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error)

	CreateActualSales(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	UpdateActualSales(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	DeleteActualSales(ctx context.Context, userID, id uuid.UUID) error
	GetActualSales(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error)
	ListActualSales(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error)

	CreateProductCost(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	UpdateProductCost(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	DeleteProductCost(ctx context.Context, userID, id uuid.UUID) error
	GetProductCost(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error)
	ListProductCosts(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error)

	CreateSalesPrice(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	UpdateSalesPrice(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error)
	DeleteSalesPrice(ctx context.Context, userID, id uuid.UUID) error
	GetSalesPrice(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error)
	ListSalesPrices(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error)

	CreateFixedCost(ctx context.Context, userID uuid.UUID, input FixedCostInput) (*FixedCostDTO, error)
	UpdateFixedCost(ctx context.Context, userID, id uuid.UUID, input FixedCostInput) (*FixedCostDTO, error)
	DeleteFixedCost(ctx context.Context, userID, id uuid.UUID) error
	GetFixedCost(ctx context.Context, id uuid.UUID) (*FixedCostDTO, error)
	ListFixedCosts(ctx context.Context, filters FixedCostFilters, params pagination.Params) (*FixedCostListResult, error)
}

// ProductFactInput holds the validated payload for any product-month figure.
type ProductFactInput struct {
	ProductID uuid.UUID
	Month     string
	Amount    decimal.Decimal
}

// FixedCostInput holds the validated payload for a monthly overhead row.
type FixedCostInput struct {
	CostName string
	Month    string
	Amount   decimal.Decimal
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

// NewService constructs a facts service instance.
func NewService(repo *Repository, products productFinder, dbClient *db.Client, auditor audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("facts repository required")
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

// audited runs the primary write and its audit entry in one transaction.
func (s *service) audited(ctx context.Context, userID uuid.UUID, action enums.AuditAction, entity enums.EntityType, changes any, write func(tx *gorm.DB) (uuid.UUID, error)) error {
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		id, err := write(tx)
		if err != nil {
			return err
		}
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     action,
			EntityType: entity,
			EntityID:   &id,
			Changes:    changes,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write monthly figure")
	}
	return nil
}

func (s *service) prepareProductFact(ctx context.Context, input ProductFactInput) (ProductFactInput, error) {
	month, err := NormalizeMonth(input.Month)
	if err != nil {
		return input, err
	}
	input.Month = month

	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "product not found").
				WithDetails(map[string]string{"product_id": input.ProductID.String()})
		}
		return input, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return input, nil
}

func notFound(what string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, what+" not found")
}

func loadError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+what)
}

// Sales targets.

func (s *service) CreateSalesTarget(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	input, err := s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.SalesTargetExists(ctx, input.ProductID, input.Month, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check sales target month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row := &models.SalesTarget{ProductID: input.ProductID, Month: input.Month, TargetAmount: input.Amount}
	if err := s.audited(ctx, userID, enums.AuditActionCreate, enums.EntityTypeSalesTarget, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).CreateSalesTarget(ctx, row); err != nil {
			if db.IsUniqueViolation(err, salesTargetConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sales target")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetSalesTarget(ctx, row.ID)
}

func (s *service) UpdateSalesTarget(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	row, err := s.repo.FindSalesTargetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "sales target")
	}
	input, err = s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.SalesTargetExists(ctx, input.ProductID, input.Month, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check sales target month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row.ProductID = input.ProductID
	row.Month = input.Month
	row.TargetAmount = input.Amount
	row.Product = nil

	if err := s.audited(ctx, userID, enums.AuditActionUpdate, enums.EntityTypeSalesTarget, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).SaveSalesTarget(ctx, row); err != nil {
			if db.IsUniqueViolation(err, salesTargetConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update sales target")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetSalesTarget(ctx, row.ID)
}

func (s *service) DeleteSalesTarget(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindSalesTargetByID(ctx, id); err != nil {
		return loadError(err, "sales target")
	}
	return s.audited(ctx, userID, enums.AuditActionDelete, enums.EntityTypeSalesTarget, nil, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).DeleteSalesTarget(ctx, id); err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete sales target")
		}
		return id, nil
	})
}

func (s *service) GetSalesTarget(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error) {
	row, err := s.repo.FindSalesTargetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "sales target")
	}
	return NewSalesTargetDTO(row), nil
}

func (s *service) ListSalesTargets(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListSalesTargets(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list sales targets")
	}
	out := make([]ProductFactDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSalesTargetDTO(&rows[i]))
	}
	return out, nil
}

// Actual sales.

func (s *service) CreateActualSales(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	input, err := s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.ActualSalesExists(ctx, input.ProductID, input.Month, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check actual sales month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row := &models.ActualSales{ProductID: input.ProductID, Month: input.Month, ActualSalesAmount: input.Amount}
	if err := s.audited(ctx, userID, enums.AuditActionCreate, enums.EntityTypeActualSales, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).CreateActualSales(ctx, row); err != nil {
			if db.IsUniqueViolation(err, actualSalesConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert actual sales")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetActualSales(ctx, row.ID)
}

func (s *service) UpdateActualSales(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	row, err := s.repo.FindActualSalesByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "actual sales entry")
	}
	input, err = s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.ActualSalesExists(ctx, input.ProductID, input.Month, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check actual sales month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row.ProductID = input.ProductID
	row.Month = input.Month
	row.ActualSalesAmount = input.Amount
	row.Product = nil

	if err := s.audited(ctx, userID, enums.AuditActionUpdate, enums.EntityTypeActualSales, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).SaveActualSales(ctx, row); err != nil {
			if db.IsUniqueViolation(err, actualSalesConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update actual sales")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetActualSales(ctx, row.ID)
}

func (s *service) DeleteActualSales(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindActualSalesByID(ctx, id); err != nil {
		return loadError(err, "actual sales entry")
	}
	return s.audited(ctx, userID, enums.AuditActionDelete, enums.EntityTypeActualSales, nil, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).DeleteActualSales(ctx, id); err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete actual sales")
		}
		return id, nil
	})
}

func (s *service) GetActualSales(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error) {
	row, err := s.repo.FindActualSalesByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "actual sales entry")
	}
	return NewActualSalesDTO(row), nil
}

func (s *service) ListActualSales(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListActualSales(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list actual sales")
	}
	out := make([]ProductFactDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewActualSalesDTO(&rows[i]))
	}
	return out, nil
}

// Product costs.

func (s *service) CreateProductCost(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	input, err := s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.ProductCostExists(ctx, input.ProductID, input.Month, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product cost month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row := &models.ProductCost{ProductID: input.ProductID, Month: input.Month, UnitCost: input.Amount}
	if err := s.audited(ctx, userID, enums.AuditActionCreate, enums.EntityTypeProductCost, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).CreateProductCost(ctx, row); err != nil {
			if db.IsUniqueViolation(err, productCostConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product cost")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetProductCost(ctx, row.ID)
}

func (s *service) UpdateProductCost(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	row, err := s.repo.FindProductCostByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "product cost")
	}
	input, err = s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.ProductCostExists(ctx, input.ProductID, input.Month, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product cost month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row.ProductID = input.ProductID
	row.Month = input.Month
	row.UnitCost = input.Amount
	row.Product = nil

	if err := s.audited(ctx, userID, enums.AuditActionUpdate, enums.EntityTypeProductCost, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).SaveProductCost(ctx, row); err != nil {
			if db.IsUniqueViolation(err, productCostConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product cost")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetProductCost(ctx, row.ID)
}

func (s *service) DeleteProductCost(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindProductCostByID(ctx, id); err != nil {
		return loadError(err, "product cost")
	}
	return s.audited(ctx, userID, enums.AuditActionDelete, enums.EntityTypeProductCost, nil, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).DeleteProductCost(ctx, id); err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product cost")
		}
		return id, nil
	})
}

func (s *service) GetProductCost(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error) {
	row, err := s.repo.FindProductCostByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "product cost")
	}
	return NewProductCostDTO(row), nil
}

func (s *service) ListProductCosts(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListProductCosts(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list product costs")
	}
	out := make([]ProductFactDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductCostDTO(&rows[i]))
	}
	return out, nil
}

// Sales prices.

func (s *service) CreateSalesPrice(ctx context.Context, userID uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	input, err := s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.SalesPriceExists(ctx, input.ProductID, input.Month, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check sales price month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row := &models.SalesPrice{ProductID: input.ProductID, Month: input.Month, SalesPrice: input.Amount}
	if err := s.audited(ctx, userID, enums.AuditActionCreate, enums.EntityTypeSalesPrice, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).CreateSalesPrice(ctx, row); err != nil {
			if db.IsUniqueViolation(err, salesPriceConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sales price")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetSalesPrice(ctx, row.ID)
}

func (s *service) UpdateSalesPrice(ctx context.Context, userID, id uuid.UUID, input ProductFactInput) (*ProductFactDTO, error) {
	row, err := s.repo.FindSalesPriceByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "sales price")
	}
	input, err = s.prepareProductFact(ctx, input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.SalesPriceExists(ctx, input.ProductID, input.Month, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check sales price month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row.ProductID = input.ProductID
	row.Month = input.Month
	row.SalesPrice = input.Amount
	row.Product = nil

	if err := s.audited(ctx, userID, enums.AuditActionUpdate, enums.EntityTypeSalesPrice, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).SaveSalesPrice(ctx, row); err != nil {
			if db.IsUniqueViolation(err, salesPriceConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update sales price")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return s.GetSalesPrice(ctx, row.ID)
}

func (s *service) DeleteSalesPrice(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindSalesPriceByID(ctx, id); err != nil {
		return loadError(err, "sales price")
	}
	return s.audited(ctx, userID, enums.AuditActionDelete, enums.EntityTypeSalesPrice, nil, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).DeleteSalesPrice(ctx, id); err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete sales price")
		}
		return id, nil
	})
}

func (s *service) GetSalesPrice(ctx context.Context, id uuid.UUID) (*ProductFactDTO, error) {
	row, err := s.repo.FindSalesPriceByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "sales price")
	}
	return NewSalesPriceDTO(row), nil
}

func (s *service) ListSalesPrices(ctx context.Context, filters ProductFactFilters) ([]ProductFactDTO, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListSalesPrices(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list sales prices")
	}
	out := make([]ProductFactDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSalesPriceDTO(&rows[i]))
	}
	return out, nil
}

// Fixed costs.

func (s *service) CreateFixedCost(ctx context.Context, userID uuid.UUID, input FixedCostInput) (*FixedCostDTO, error) {
	input, err := prepareFixedCost(input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.FixedCostExists(ctx, input.CostName, input.Month, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check fixed cost month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row := &models.FixedCost{CostName: input.CostName, Month: input.Month, Amount: input.Amount}
	if err := s.audited(ctx, userID, enums.AuditActionCreate, enums.EntityTypeFixedCost, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).CreateFixedCost(ctx, row); err != nil {
			if db.IsUniqueViolation(err, fixedCostConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert fixed cost")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return NewFixedCostDTO(row), nil
}

func (s *service) UpdateFixedCost(ctx context.Context, userID, id uuid.UUID, input FixedCostInput) (*FixedCostDTO, error) {
	row, err := s.repo.FindFixedCostByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "fixed cost")
	}
	input, err = prepareFixedCost(input)
	if err != nil {
		return nil, err
	}
	if exists, err := s.repo.FixedCostExists(ctx, input.CostName, input.Month, &id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check fixed cost month")
	} else if exists {
		return nil, duplicateMonthError(input.Month)
	}

	row.CostName = input.CostName
	row.Month = input.Month
	row.Amount = input.Amount

	if err := s.audited(ctx, userID, enums.AuditActionUpdate, enums.EntityTypeFixedCost, input, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).SaveFixedCost(ctx, row); err != nil {
			if db.IsUniqueViolation(err, fixedCostConstraint) {
				return uuid.Nil, duplicateMonthError(input.Month)
			}
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update fixed cost")
		}
		return row.ID, nil
	}); err != nil {
		return nil, err
	}
	return NewFixedCostDTO(row), nil
}

func (s *service) DeleteFixedCost(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindFixedCostByID(ctx, id); err != nil {
		return loadError(err, "fixed cost")
	}
	return s.audited(ctx, userID, enums.AuditActionDelete, enums.EntityTypeFixedCost, nil, func(tx *gorm.DB) (uuid.UUID, error) {
		if err := s.repo.WithTx(tx).DeleteFixedCost(ctx, id); err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete fixed cost")
		}
		return id, nil
	})
}

func (s *service) GetFixedCost(ctx context.Context, id uuid.UUID) (*FixedCostDTO, error) {
	row, err := s.repo.FindFixedCostByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "fixed cost")
	}
	return NewFixedCostDTO(row), nil
}

func (s *service) ListFixedCosts(ctx context.Context, filters FixedCostFilters, params pagination.Params) (*FixedCostListResult, error) {
	if filters.Month != "" {
		month, err := NormalizeMonth(filters.Month)
		if err != nil {
			return nil, err
		}
		filters.Month = month
	}
	params = params.Normalize()

	rows, total, err := s.repo.ListFixedCosts(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list fixed costs")
	}
	out := make([]FixedCostDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewFixedCostDTO(&rows[i]))
	}
	return &FixedCostListResult{
		Costs: out,
		Pagination: types.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: pagination.Pages(total, params.Limit),
		},
	}, nil
}

func normalizeFilters(filters ProductFactFilters) (ProductFactFilters, error) {
	if filters.Month == "" {
		return filters, nil
	}
	month, err := NormalizeMonth(filters.Month)
	if err != nil {
		return filters, err
	}
	filters.Month = month
	return filters, nil
}

func prepareFixedCost(input FixedCostInput) (FixedCostInput, error) {
	month, err := NormalizeMonth(input.Month)
	if err != nil {
		return input, err
	}
	input.Month = month
	input.CostName = strings.TrimSpace(input.CostName)
	if input.CostName == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "cost name is required")
	}
	return input, nil
}
