package services

import (
	"context"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data.
type ExchangeRateReaderSvc interface {
	// GetCurrentRate retrieves the most recent effective rate.
	GetCurrentRate(ctx context.Context) (*domain.ExchangeRate, error)

	// GetRateByDate retrieves the rate effective at or before the given date.
	GetRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error)
}

// RateResolverSvc is the non-blocking resolution surface the settlement and
// document services consume. Neither method ever returns an error: a failed
// lookup degrades to the supplied previous value or the configured default,
// so a slow or broken rate source can never block a computation.
type RateResolverSvc interface {
	// CurrentRate returns today's rate, or the configured default rate when
	// no lookup succeeds.
	CurrentRate(ctx context.Context) decimal.Decimal

	// ResolveForDate returns the historical rate for the given date, or
	// previous when the lookup fails.
	ResolveForDate(ctx context.Context, date time.Time, previous decimal.Decimal) decimal.Decimal
}

// ExchangeRateSvcFacade combines all exchange rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	RateResolverSvc
}
