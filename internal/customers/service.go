package customer

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
)

const customerCodeConstraint = "uq_customers_customer_code"

// Service exposes customer account management operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CustomerInput) (*CustomerDTO, error)
	Update(ctx context.Context, userID, customerID uuid.UUID, input CustomerInput) (*CustomerDTO, error)
	Delete(ctx context.Context, userID, customerID uuid.UUID) error
	Get(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error)
	List(ctx context.Context, filters ListFilters) ([]CustomerDTO, error)
	RiskAnalysis(ctx context.Context) ([]CustomerDTO, error)
}

// CustomerInput holds the validated payload to create or replace a customer.
type CustomerInput struct {
	CustomerName      string
	CustomerCode      string
	Address           *string
	CityOrDistrict    *string
	SalesRep          string
	Country           *string
	RegionOrState     *string
	TelephoneNumber   *string
	Email             *string
	ContactPerson     *string
	PaymentTermsLimit *decimal.Decimal
	BalanceRiskLimit  *decimal.Decimal
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	auditor  audit.Recorder
}

// NewService constructs a customer service instance.
func NewService(repo *Repository, dbClient *db.Client, auditor audit.Recorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if auditor == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, dbClient: dbClient, auditor: auditor}, nil
}

// Create inserts the customer and its audit entry in one transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CustomerInput) (*CustomerDTO, error) {
	if exists, err := s.repo.CodeExists(ctx, input.CustomerCode, nil); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check customer code")
	} else if exists {
		return nil, duplicateCodeError(input.CustomerCode)
	}

	customer := &models.Customer{}
	applyInput(customer, input)
	customer.CreatedBy = &userID

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		created, err := txRepo.Create(ctx, customer)
		if err != nil {
			if db.IsUniqueViolation(err, customerCodeConstraint) {
				return duplicateCodeError(input.CustomerCode)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert customer")
		}

		id := created.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionCreate,
			EntityType: enums.EntityTypeCustomer,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}

	return NewCustomerDTO(customer), nil
}

// Update replaces the customer fields and records the change atomically.
func (s *service) Update(ctx context.Context, userID, customerID uuid.UUID, input CustomerInput) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	if exists, err := s.repo.CodeExists(ctx, input.CustomerCode, &customerID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check customer code")
	} else if exists {
		return nil, duplicateCodeError(input.CustomerCode)
	}

	applyInput(customer, input)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.Update(ctx, customer); err != nil {
			if db.IsUniqueViolation(err, customerCodeConstraint) {
				return duplicateCodeError(input.CustomerCode)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update customer")
		}

		id := customer.ID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionUpdate,
			EntityType: enums.EntityTypeCustomer,
			EntityID:   &id,
			Changes:    input,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}

	return NewCustomerDTO(customer), nil
}

// Delete removes the customer and records the deletion atomically.
func (s *service) Delete(ctx context.Context, userID, customerID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, customerID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete customer")
		}

		id := customerID
		return s.auditor.Record(ctx, tx, audit.Entry{
			UserID:     userID,
			Action:     enums.AuditActionDelete,
			EntityType: enums.EntityTypeCustomer,
			EntityID:   &id,
		})
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}

// Get loads one customer by ID.
func (s *service) Get(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return NewCustomerDTO(customer), nil
}

// List returns customers newest-first with optional filters.
func (s *service) List(ctx context.Context, filters ListFilters) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list customers")
	}
	return toDTOs(rows), nil
}

// RiskAnalysis returns the customers whose balance exceeds their risk limit,
// highest exposure first.
func (s *service) RiskAnalysis(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.ListOverLimit(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: customer risk analysis")
	}
	return toDTOs(rows), nil
}

func toDTOs(rows []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCustomerDTO(&rows[i]))
	}
	return out
}

func applyInput(customer *models.Customer, input CustomerInput) {
	customer.CustomerName = strings.TrimSpace(input.CustomerName)
	customer.CustomerCode = strings.TrimSpace(input.CustomerCode)
	customer.Address = trimPtr(input.Address)
	customer.CityOrDistrict = trimPtr(input.CityOrDistrict)
	customer.SalesRep = strings.TrimSpace(input.SalesRep)
	customer.Country = trimPtr(input.Country)
	customer.RegionOrState = trimPtr(input.RegionOrState)
	customer.TelephoneNumber = trimPtr(input.TelephoneNumber)
	customer.Email = trimPtr(input.Email)
	customer.ContactPerson = trimPtr(input.ContactPerson)
	customer.PaymentTermsLimit = input.PaymentTermsLimit
	customer.BalanceRiskLimit = input.BalanceRiskLimit
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
	return pkgerrors.New(pkgerrors.CodeConflict, "customer code already exists").
		WithDetails(map[string]string{"customer_code": code})
}
