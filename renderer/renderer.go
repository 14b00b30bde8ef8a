// Package renderer turns ledger reports into markdown strings ready for
// terminal display.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a decimal amount in the given display currency, e.g.
// "$12.50" for USD. The core ledger is currency-agnostic; the currency only
// affects presentation.
func Amount(d decimal.Decimal, currency string) string {
	// The Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, currency).Currency()
	shifted := d.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// SignedAmount is like Amount but keeps an explicit sign, and renders zero
// as "-".
func SignedAmount(d decimal.Decimal, currency string) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + Amount(d, currency)
	}
	return Amount(d, currency)
}
