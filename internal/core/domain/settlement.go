package domain

import "github.com/shopspring/decimal"

// Framing describes how the price-and-payment clause of a contract is
// worded: paid in full at signing, or with an outstanding balance.
type Framing string

const (
	CashInFull Framing = "CASH_IN_FULL"
	BalanceDue Framing = "BALANCE_DUE"
)

// Settlement is the computed breakdown of a deal's price. All figures are in
// pesos. BalanceARS may be negative (overpayment or data-entry error); it is
// surfaced as-is so the operator can see the mistake.
type Settlement struct {
	TotalPriceARS decimal.Decimal `json:"totalPriceARS"`
	TotalPaidARS  decimal.Decimal `json:"totalPaidARS"`  // deposits + cash + trade-ins
	FinancingARS  decimal.Decimal `json:"financingARS"`  // owed to banks, excluded from TotalPaidARS
	BalanceARS    decimal.Decimal `json:"balanceARS"`    // price - paid - financing
	Framing       Framing         `json:"framing"`
}
