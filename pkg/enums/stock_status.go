package enums

// StockStatus is the four-way on-hand classification for a product.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusCritical   StockStatus = "critical"
	StockStatusLow        StockStatus = "low"
	StockStatusAdequate   StockStatus = "adequate"
)

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// RiskLevel classifies a customer's balance against their risk limit.
type RiskLevel string

const (
	RiskLevelUnknown RiskLevel = "unknown"
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
)

// String implements fmt.Stringer.
func (r RiskLevel) String() string {
	return string(r)
}
