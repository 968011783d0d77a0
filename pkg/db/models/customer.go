package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a buyer account. PaymentTermsLimit is the outstanding
// balance under payment terms; BalanceRiskLimit is the ceiling it is scored
// against.
type Customer struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName      string           `gorm:"column:customer_name;not null"`
	CustomerCode      string           `gorm:"column:customer_code;not null;uniqueIndex:uq_customers_customer_code"`
	Address           *string          `gorm:"column:address"`
	CityOrDistrict    *string          `gorm:"column:city_or_district"`
	SalesRep          string           `gorm:"column:sales_rep;not null"`
	Country           *string          `gorm:"column:country"`
	RegionOrState     *string          `gorm:"column:region_or_state"`
	TelephoneNumber   *string          `gorm:"column:telephone_number"`
	Email             *string          `gorm:"column:email"`
	ContactPerson     *string          `gorm:"column:contact_person"`
	PaymentTermsLimit *decimal.Decimal `gorm:"column:payment_terms_limit;type:numeric(14,2)"`
	BalanceRiskLimit  *decimal.Decimal `gorm:"column:balance_risk_limit;type:numeric(14,2)"`
	CreatedBy         *uuid.UUID       `gorm:"column:created_by;type:uuid"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
