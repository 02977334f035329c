package domain

import "github.com/shopspring/decimal"

// ComponentKind tags the variant of a payment component within a deal.
type ComponentKind string

const (
	Deposit   ComponentKind = "DEPOSIT"   // seña / down payment received up front
	Cash      ComponentKind = "CASH"      // cash handed over at signing
	TradeIn   ComponentKind = "TRADE_IN"  // used vehicle taken as part of the price
	Financing ComponentKind = "FINANCING" // bank loan; owed to the bank, not received by the dealer
)

// PaymentComponent is one element of how a deal's price is covered. The
// kind-specific fields are only meaningful for the matching kind and are
// left at their zero value otherwise.
type PaymentComponent struct {
	ComponentID string        `json:"componentID"`
	Kind        ComponentKind `json:"kind"`
	Money       Money         `json:"money"`

	// TradeIn fields
	TradeInVehicle string `json:"tradeInVehicle,omitempty"` // free-text descriptor of the vehicle received
	Appraised      bool   `json:"appraised,omitempty"`      // true once the trade-in value is final

	// Financing fields
	Bank             string          `json:"bank,omitempty"`
	InstallmentCount int             `json:"installmentCount,omitempty"`
	InstallmentValue decimal.Decimal `json:"installmentValue,omitempty"`
}

// ReducesPrice reports whether the component counts toward the money the
// dealer has received (deposits, cash and trade-ins). Financing reduces the
// balance but is tracked as a separate liability.
func (c PaymentComponent) ReducesPrice() bool {
	switch c.Kind {
	case Deposit, Cash, TradeIn:
		return true
	}
	return false
}
