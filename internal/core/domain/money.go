package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the currencies the dealership operates in.
type Currency string

const (
	ARS Currency = "ARS" // canonical currency; all totals are expressed in pesos
	USD Currency = "USD"
)

// Money is an amount tagged with its currency and the exchange-rate snapshot
// used to normalise it to pesos. For ARS values the snapshot is carried but
// never applied.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`       // Always >= 0
	Currency     Currency        `json:"currency"`     // ARS or USD
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Pesos per dollar as of AsOfDate
	AsOfDate     time.Time       `json:"asOfDate"`     // Date the rate snapshot was taken
}

// IsZero reports whether the money contributes nothing to a settlement.
func (m Money) IsZero() bool {
	return m.Amount.LessThanOrEqual(decimal.Zero)
}
