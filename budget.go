package finbook

import "github.com/shopspring/decimal"

// Budget tracks a spending limit for a category. The category label is its
// identity for lookups; uniqueness is not enforced.
type Budget struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// NewBudget creates a budget with zero accumulated spending.
func NewBudget(category string, limit decimal.Decimal) *Budget {
	return &Budget{Category: category, Limit: limit}
}

// Accumulate adds amount to the accumulated spending unconditionally. It does
// not check that the caller matched the category, and does not clamp at the
// limit.
func (b *Budget) Accumulate(amount decimal.Decimal) {
	b.Spent = b.Spent.Add(amount)
}

// Remaining returns limit minus accumulated spending. It may be negative;
// the value is informational, nothing is enforced.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}
