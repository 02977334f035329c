// Package numerals converts non-negative integers to Spanish words for use
// in legal amounts ("PESOS UN MILLÓN DOSCIENTOS MIL").
package numerals

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var unidades = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho",
	"nueve", "diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var decenas = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta",
	"ochenta", "noventa",
}

var centenas = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// ToWords converts n to Spanish words by recursive decomposition: millions,
// thousands, hundreds, tens, units. Supported range is 0 <= n < 10^12;
// values outside it are returned as digits so a bad input never blocks a
// document from rendering.
func ToWords(n int64) string {
	switch {
	case n < 0 || n >= 1_000_000_000_000:
		return strconv.FormatInt(n, 10)
	case n < 30:
		return unidades[n]
	case n < 100:
		d, u := n/10, n%10
		if u == 0 {
			return decenas[d]
		}
		return decenas[d] + " y " + unidades[u]
	case n == 100:
		return "cien"
	case n < 1000:
		c, r := n/100, n%100
		if r == 0 {
			return centenas[c]
		}
		return centenas[c] + " " + ToWords(r)
	case n < 1_000_000:
		m, r := n/1000, n%1000
		head := "mil"
		if m > 1 {
			head = apocope(ToWords(m)) + " mil"
		}
		if r == 0 {
			return head
		}
		return head + " " + ToWords(r)
	default:
		m, r := n/1_000_000, n%1_000_000
		head := "un millón"
		if m > 1 {
			head = apocope(ToWords(m)) + " millones"
		}
		if r == 0 {
			return head
		}
		return head + " " + ToWords(r)
	}
}

// apocope shortens a multiplier ending in "uno" before "mil" or "millones"
// ("veintiuno" -> "veintiún", "ciento uno" -> "ciento un"). "veintiuno"
// needs its own case for the accent; every other ending collapses to "un".
func apocope(s string) string {
	switch {
	case s == "uno":
		return "un"
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}

// AmountInWords words the integer part of a currency amount, upper-cased as
// contracts print it. Fractional cents are not worded.
func AmountInWords(amount decimal.Decimal) string {
	return strings.ToUpper(ToWords(amount.Abs().IntPart()))
}
