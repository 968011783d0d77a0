package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/stockcalc"
)

// CustomerDTO represents the customer payload returned to clients, including
// the derived risk fields.
type CustomerDTO struct {
	ID                uuid.UUID        `json:"id"`
	CustomerName      string           `json:"customer_name"`
	CustomerCode      string           `json:"customer_code"`
	Address           *string          `json:"address,omitempty"`
	CityOrDistrict    *string          `json:"city_or_district,omitempty"`
	SalesRep          string           `json:"sales_rep"`
	Country           *string          `json:"country,omitempty"`
	RegionOrState     *string          `json:"region_or_state,omitempty"`
	TelephoneNumber   *string          `json:"telephone_number,omitempty"`
	Email             *string          `json:"email,omitempty"`
	ContactPerson     *string          `json:"contact_person,omitempty"`
	PaymentTermsLimit *decimal.Decimal `json:"payment_terms_limit,omitempty"`
	BalanceRiskLimit  *decimal.Decimal `json:"balance_risk_limit,omitempty"`
	RiskLevel         string           `json:"risk_level"`
	RiskPercentage    *float64         `json:"risk_percentage,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NewCustomerDTO builds a DTO from the persisted model, deriving the risk
// bucket from the stored balance and limit.
func NewCustomerDTO(customer *models.Customer) *CustomerDTO {
	balance := decimalValue(customer.PaymentTermsLimit)
	limit := decimalValue(customer.BalanceRiskLimit)

	dto := &CustomerDTO{
		ID:                customer.ID,
		CustomerName:      customer.CustomerName,
		CustomerCode:      customer.CustomerCode,
		Address:           customer.Address,
		CityOrDistrict:    customer.CityOrDistrict,
		SalesRep:          customer.SalesRep,
		Country:           customer.Country,
		RegionOrState:     customer.RegionOrState,
		TelephoneNumber:   customer.TelephoneNumber,
		Email:             customer.Email,
		ContactPerson:     customer.ContactPerson,
		PaymentTermsLimit: customer.PaymentTermsLimit,
		BalanceRiskLimit:  customer.BalanceRiskLimit,
		RiskLevel:         string(stockcalc.CustomerRiskLevel(balance, limit)),
		CreatedAt:         customer.CreatedAt,
		UpdatedAt:         customer.UpdatedAt,
	}
	if limit != 0 {
		pct := stockcalc.RiskPercentage(balance, limit)
		dto.RiskPercentage = &pct
	}
	return dto
}

func decimalValue(value *decimal.Decimal) float64 {
	if value == nil {
		return 0
	}
	return value.InexactFloat64()
}
