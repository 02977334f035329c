package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/utils"
	"github.com/fbenitez/concesionaria_app/internal/utils/numerals"
	"github.com/fbenitez/concesionaria_app/internal/utils/settlement"
	"github.com/shopspring/decimal"
)

// Sentence builders for the settlement text-block tokens. Each returns a
// fully worded sentence when the matching component is present on the deal,
// or the empty string when it is not, so the token disappears from the
// rendered clause without template branching.

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
	"agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// legalAmount words an amount the way contracts quote it:
// "PESOS UN MILLÓN ($ 1.000.000)".
func legalAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("PESOS %s (%s)", numerals.AmountInWords(amount), utils.FormatARSWithSymbol(amount))
}

// longDate words a date for the intro paragraph:
// "a los cinco días del mes de marzo del año dos mil veintiséis". Day one
// takes the ordinal form, "al primer día del mes de...".
func longDate(t time.Time) string {
	if t.Day() == 1 {
		return fmt.Sprintf("al primer día del mes de %s del año %s",
			monthNames[t.Month()-1],
			numerals.ToWords(int64(t.Year())))
	}
	return fmt.Sprintf("a los %s días del mes de %s del año %s",
		numerals.ToWords(int64(t.Day())),
		monthNames[t.Month()-1],
		numerals.ToWords(int64(t.Year())))
}

// sumOfKind converts and sums every component of the given kind.
func sumOfKind(deal domain.Deal, kind domain.ComponentKind, fallbackRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range deal.ComponentsOfKind(kind) {
		total = total.Add(settlement.Convert(c.Money, fallbackRate))
	}
	return total
}

func depositSentence(deal domain.Deal, fallbackRate decimal.Decimal) string {
	total := sumOfKind(deal, domain.Deposit, fallbackRate)
	if total.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	return fmt.Sprintf("LA PARTE COMPRADORA ha entregado con anterioridad, en concepto de seña y a cuenta de precio, la suma de %s. ", legalAmount(total))
}

func cashSentence(deal domain.Deal, fallbackRate decimal.Decimal) string {
	total := sumOfKind(deal, domain.Cash, fallbackRate)
	if total.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	return fmt.Sprintf("LA PARTE COMPRADORA abona en este acto, al contado, la suma de %s. ", legalAmount(total))
}

func tradeInSentences(deal domain.Deal, fallbackRate decimal.Decimal) string {
	var b strings.Builder
	for _, c := range deal.ComponentsOfKind(domain.TradeIn) {
		value := settlement.Convert(c.Money, fallbackRate)
		if value.LessThanOrEqual(decimal.Zero) {
			continue
		}
		desc := strings.TrimSpace(c.TradeInVehicle)
		if desc == "" {
			desc = "un vehículo usado"
		}
		b.WriteString(fmt.Sprintf("LA PARTE COMPRADORA entrega como parte de pago %s, que las partes valúan en la suma de %s", desc, legalAmount(value)))
		if !c.Appraised {
			b.WriteString(", sujeto a tasación definitiva")
		}
		b.WriteString(". ")
	}
	return b.String()
}

func financingSentence(deal domain.Deal, fallbackRate decimal.Decimal) string {
	components := deal.ComponentsOfKind(domain.Financing)
	var b strings.Builder
	for _, c := range components {
		amount := settlement.Convert(c.Money, fallbackRate)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		bank := strings.TrimSpace(c.Bank)
		if bank == "" {
			bank = "la entidad financiera"
		}
		b.WriteString(fmt.Sprintf("La suma de %s será abonada mediante financiación otorgada por %s", legalAmount(amount), bank))
		if c.InstallmentCount > 0 {
			b.WriteString(fmt.Sprintf(", en %s (%d) cuotas mensuales y consecutivas", numerals.ToWords(int64(c.InstallmentCount)), c.InstallmentCount))
			if c.InstallmentValue.GreaterThan(decimal.Zero) {
				b.WriteString(fmt.Sprintf(" de %s cada una", legalAmount(c.InstallmentValue)))
			}
		}
		b.WriteString(". ")
	}
	return b.String()
}

func balanceSentence(deal domain.Deal, result domain.Settlement) string {
	if result.Framing == domain.CashInFull {
		return "LA PARTE COMPRADORA abona la totalidad del precio en este acto, sirviendo el presente de suficiente recibo y carta de pago. "
	}
	if result.BalanceARS.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	s := fmt.Sprintf("El saldo restante de %s será abonado por LA PARTE COMPRADORA", legalAmount(result.BalanceARS))
	if deal.BalanceDueDate != nil {
		s += fmt.Sprintf(" antes del día %02d de %s de %d", deal.BalanceDueDate.Day(), monthNames[deal.BalanceDueDate.Month()-1], deal.BalanceDueDate.Year())
	}
	return s + ". "
}

func transferExpensesSentence(deal domain.Deal) string {
	if !deal.TransferExpensesClause {
		return ""
	}
	return "Los gastos de transferencia, sellados, aranceles e impuestos que origine la presente operación serán a cargo exclusivo de LA PARTE COMPRADORA. "
}
