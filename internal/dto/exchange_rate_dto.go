package dto

import (
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	RateID        string    `json:"rateID"`
	Rate          string    `json:"rate"`
	DateEffective time.Time `json:"dateEffective"`
	Source        string    `json:"source"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		RateID:        r.RateID,
		Rate:          r.Rate.String(),
		DateEffective: r.DateEffective,
		Source:        r.Source,
	}
}
