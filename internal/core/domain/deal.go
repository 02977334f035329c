package domain

import "time"

// DealKind distinguishes the three workflows that share the settlement and
// document engine.
type DealKind string

const (
	Sale        DealKind = "SALE"
	Quote       DealKind = "QUOTE"
	Reservation DealKind = "RESERVATION"
)

// DealStatus indicates the state of a deal as managed by the surrounding
// application; the engine only reads it.
type DealStatus string

const (
	DealPending   DealStatus = "PENDING"
	DealConfirmed DealStatus = "CONFIRMED"
	DealCancelled DealStatus = "CANCELLED"
)

// Deal is an immutable snapshot of a sale, quote or reservation as handed in
// by the application layer. The engine computes derived values from it and
// never mutates or persists it.
type Deal struct {
	DealID     string             `json:"dealID"`
	Kind       DealKind           `json:"kind"`
	Status     DealStatus         `json:"status"`
	Price      Money              `json:"price"`
	Components []PaymentComponent `json:"components"`

	// BalanceDueDate, when set, is quoted in the outstanding-balance clause.
	BalanceDueDate *time.Time `json:"balanceDueDate,omitempty"`

	// TransferExpensesClause controls whether the transfer-expense
	// disclaimer is included in the rendered contract.
	TransferExpensesClause bool `json:"transferExpensesClause"`
}

// ComponentsOfKind returns the components matching the given kind, in the
// order they appear in the deal.
func (d Deal) ComponentsOfKind(kind ComponentKind) []PaymentComponent {
	var out []PaymentComponent
	for _, c := range d.Components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
