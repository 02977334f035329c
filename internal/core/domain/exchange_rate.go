package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one row of the pesos-per-dollar rate table maintained by
// an external import job. The engine only ever reads it.
type ExchangeRate struct {
	RateID        string          `json:"rateID"`
	Rate          decimal.Decimal `json:"rate"` // pesos per dollar, > 0
	DateEffective time.Time       `json:"dateEffective"`
	Source        string          `json:"source"` // e.g. "BNA", "manual"
	AuditFields
}
