// Package facts manages the monthly planning figures: sales targets, actual
// sales, product costs, sales prices (one row per product per month) and
// fixed costs (one row per cost name per month).
package facts

import (
	"strings"
	"time"

	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
)

const monthLayout = "2006-01"

// NormalizeMonth trims and validates a YYYY-MM month key.
func NormalizeMonth(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if _, err := time.Parse(monthLayout, trimmed); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "month must be in YYYY-MM format").
			WithDetails(map[string]string{"month": trimmed})
	}
	return trimmed, nil
}

func duplicateMonthError(month string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "an entry already exists for this month").
		WithDetails(map[string]string{"month": month})
}

const (
	salesTargetConstraint = "uq_sales_targets_product_month"
	actualSalesConstraint = "uq_actual_sales_product_month"
	productCostConstraint = "uq_product_costs_product_month"
	salesPriceConstraint  = "uq_sales_prices_product_month"
	fixedCostConstraint   = "uq_fixed_costs_name_month"
)
