package settlement

import (
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Convert normalises a monetary value to pesos.
// ARS amounts pass through untouched regardless of the rate snapshot. USD
// amounts are multiplied by their snapshot rate; a missing or non-positive
// snapshot falls back to fallbackRate (a policy value supplied by the
// caller, typically the configured daily rate). Zero or absent amounts
// contribute zero and never fail.
func Convert(m domain.Money, fallbackRate decimal.Decimal) decimal.Decimal {
	if m.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if m.Currency != domain.USD {
		return m.Amount
	}
	rate := m.ExchangeRate
	if rate.LessThanOrEqual(decimal.Zero) {
		rate = fallbackRate
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		// No usable rate at all; contribute nothing rather than fail.
		return decimal.Zero
	}
	return m.Amount.Mul(rate)
}

// Compute aggregates a deal's price and payment components into a settlement.
// Deposits, cash and trade-ins count as money received; financing is a
// liability the buyer owes a bank and is tracked separately, but it still
// reduces the outstanding balance. The sum is commutative over component
// order. A negative balance is surfaced as-is, never clamped.
func Compute(deal domain.Deal, fallbackRate decimal.Decimal) domain.Settlement {
	totalPrice := Convert(deal.Price, fallbackRate)

	totalPaid := decimal.Zero
	financing := decimal.Zero
	for _, c := range deal.Components {
		amount := Convert(c.Money, fallbackRate)
		if c.Kind == domain.Financing {
			financing = financing.Add(amount)
		} else if c.ReducesPrice() {
			totalPaid = totalPaid.Add(amount)
		}
	}

	framing := domain.BalanceDue
	if totalPaid.IsZero() && financing.IsZero() {
		framing = domain.CashInFull
	}

	return domain.Settlement{
		TotalPriceARS: totalPrice,
		TotalPaidARS:  totalPaid,
		FinancingARS:  financing,
		BalanceARS:    totalPrice.Sub(totalPaid).Sub(financing),
		Framing:       framing,
	}
}
