package salesorder

import (
	"github.com/shopspring/decimal"

	"agroconsult/internal/domain"
)

// Totals are derived from the items on every read and never stored.
type Totals struct {
	Total      float64 `json:"total"`
	ItemsCount int     `json:"itemsCount"`
}

// LineTotal is quantity × unit price.
func LineTotal(quantity, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
}

// ComputeTotals sums the items in decimal. The total is not rounded; sub-cent
// prices are kept.
func ComputeTotals(items []domain.SalesOrderItem) Totals {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	return Totals{
		Total:      sum.InexactFloat64(),
		ItemsCount: len(items),
	}
}
