// Package stockcalc holds the pure arithmetic behind stock alerting and
// customer risk scoring. Nothing here touches the database or the clock;
// callers pass "now" explicitly.
package stockcalc

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocksight/stocksight-backend/pkg/enums"
)

const hoursPerDay = 24

// EstimatedStockDays returns how many days the current on-hand amount lasts
// at the given daily consumption rate. A zero or negative rate means there is
// no consumption data, which degrades to 0 rather than failing: missing data
// must not break stock display.
func EstimatedStockDays(currentAmount, consumptionRate float64) float64 {
	if consumptionRate <= 0 {
		return 0
	}
	return currentAmount / consumptionRate
}

// ConsumptionRate is the inverse of EstimatedStockDays with the same
// zero-degradation policy for non-positive day counts.
func ConsumptionRate(currentAmount, estimatedStockDays float64) float64 {
	if estimatedStockDays <= 0 {
		return 0
	}
	return currentAmount / estimatedStockDays
}

// IsStockCritical reports whether the estimated stock days have fallen to or
// below the configured critical-level threshold. Either value being absent
// yields false: a record cannot be critical without data.
func IsStockCritical(estimatedStockDays, criticalLevelDays *float64) bool {
	if estimatedStockDays == nil || criticalLevelDays == nil {
		return false
	}
	if *estimatedStockDays == 0 || *criticalLevelDays == 0 {
		return false
	}
	return *estimatedStockDays <= *criticalLevelDays
}

// StockStatus classifies the on-hand amount against the critical stock level.
// Checks run in severity order so ties always land in the harsher bucket.
func StockStatus(currentAmount, criticalStockLevel float64) enums.StockStatus {
	switch {
	case currentAmount <= 0:
		return enums.StockStatusOutOfStock
	case currentAmount <= criticalStockLevel:
		return enums.StockStatusCritical
	case currentAmount <= criticalStockLevel*1.5:
		return enums.StockStatusLow
	default:
		return enums.StockStatusAdequate
	}
}

// DaysUntilExpiry returns the whole days from now until the expiry date,
// rounded up, or nil when no date is set. Negative values mean the record is
// already expired.
func DaysUntilExpiry(expiry *time.Time, now time.Time) *int {
	if expiry == nil {
		return nil
	}
	diff := expiry.Sub(now).Hours() / hoursPerDay
	days := int(math.Ceil(diff))
	return &days
}

// DefaultExpiryWarningDays is the window used when callers do not override it.
const DefaultExpiryWarningDays = 30

// IsExpiryWarning reports whether the expiry date falls inside the warning
// window. Zero or negative day counts are excluded; those belong to IsExpired.
func IsExpiryWarning(expiry *time.Time, now time.Time, warningDays int) bool {
	days := DaysUntilExpiry(expiry, now)
	if days == nil {
		return false
	}
	return *days > 0 && *days <= warningDays
}

// IsExpired reports whether the expiry date lies in the past.
func IsExpired(expiry *time.Time, now time.Time) bool {
	days := DaysUntilExpiry(expiry, now)
	return days != nil && *days < 0
}

// RiskPercentage returns the customer balance as a percentage of their risk
// limit, or 0 when the limit is unset.
func RiskPercentage(balance, balanceRiskLimit float64) float64 {
	if balanceRiskLimit == 0 {
		return 0
	}
	return balance / balanceRiskLimit * 100
}

// CustomerRiskLevel buckets the risk percentage: high at >=100, medium at
// >=80, low below that. A missing limit yields unknown.
func CustomerRiskLevel(balance, balanceRiskLimit float64) enums.RiskLevel {
	if balanceRiskLimit == 0 {
		return enums.RiskLevelUnknown
	}

	percentage := RiskPercentage(balance, balanceRiskLimit)
	switch {
	case percentage >= 100:
		return enums.RiskLevelHigh
	case percentage >= 80:
		return enums.RiskLevelMedium
	default:
		return enums.RiskLevelLow
	}
}

// StockValue multiplies quantity by unit price without float drift.
func StockValue(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}
