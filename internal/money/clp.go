// Package money formats monetary amounts for display. All amounts in the
// system are Chilean pesos; no currency conversion is performed.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders an amount as Chilean pesos with locale grouping and no
// fraction digits, e.g. $1.450.000.
func FormatCLP(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
