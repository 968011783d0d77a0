package enums

import "fmt"

// EntityType names the audited record kinds.
type EntityType string

const (
	EntityTypeUser        EntityType = "user"
	EntityTypeProduct     EntityType = "product"
	EntityTypeCustomer    EntityType = "customer"
	EntityTypeStockRecord EntityType = "stock_record"
	EntityTypeSalesRecord EntityType = "sales_record"
	EntityTypeSalesTarget EntityType = "sales_target"
	EntityTypeActualSales EntityType = "actual_sales"
	EntityTypeProductCost EntityType = "product_cost"
	EntityTypeFixedCost   EntityType = "fixed_cost"
	EntityTypeSalesPrice  EntityType = "sales_price"
)

var validEntityTypes = []EntityType{
	EntityTypeUser,
	EntityTypeProduct,
	EntityTypeCustomer,
	EntityTypeStockRecord,
	EntityTypeSalesRecord,
	EntityTypeSalesTarget,
	EntityTypeActualSales,
	EntityTypeProductCost,
	EntityTypeFixedCost,
	EntityTypeSalesPrice,
}

// String implements fmt.Stringer.
func (e EntityType) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EntityType.
func (e EntityType) IsValid() bool {
	for _, candidate := range validEntityTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEntityType converts raw input into an EntityType.
func ParseEntityType(value string) (EntityType, error) {
	for _, candidate := range validEntityTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid entity type %q", value)
}
