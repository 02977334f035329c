package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatARS formats a peso amount with es-AR digit grouping for display in
// documents, e.g. 1234567.5 -> "1.234.567,50". Whole amounts drop the
// fractional part.
func FormatARS(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsInteger() {
		return arPrinter.Sprintf("%v", number.Decimal(rounded.IntPart()))
	}
	return arPrinter.Sprintf("%v", number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatARSWithSymbol renders the amount the way contracts quote it,
// e.g. "$ 1.234.567".
func FormatARSWithSymbol(amount decimal.Decimal) string {
	return "$ " + FormatARS(amount)
}
