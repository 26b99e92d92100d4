// Package present turns schedule results into the strings shown to users.
// The calculation packages never format numbers themselves.
package present

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gb = message.NewPrinter(language.BritishEnglish)

// Money formats v as pounds with two decimal places and thousands
// separators, e.g. £1,234,567.89. Halves round away from zero.
func Money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "£" + gb.Sprintf("%.2f", d.InexactFloat64())
}

// Percent formats a fraction as a percentage with two decimal places.
func Percent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// WholePercent formats a fraction as a percentage with no decimals.
func WholePercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
