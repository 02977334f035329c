package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// ExchangeRateService reads the externally maintained rate table and exposes
// the non-blocking resolution surface the rest of the engine consumes. A
// failed or slow lookup always degrades to a safe value and is never
// propagated to a computation.
type ExchangeRateService struct {
	rateRepo       portsrepo.ExchangeRateReader
	defaultRate    decimal.Decimal // configured policy fallback, not a system constant
	resolveTimeout time.Duration
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader, defaultRate decimal.Decimal, resolveTimeout time.Duration) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:       rateRepo,
		defaultRate:    defaultRate,
		resolveTimeout: resolveTimeout,
	}
}

// GetCurrentRate retrieves the most recent effective rate.
func (s *ExchangeRateService) GetCurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindCurrentRate(ctx)
}

// GetRateByDate retrieves the rate effective at or before the given date.
func (s *ExchangeRateService) GetRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindRateByDate(ctx, date)
}

// CurrentRate returns today's rate for use as the conversion fallback,
// degrading to the configured default rate when the lookup fails or returns
// a non-positive value.
func (s *ExchangeRateService) CurrentRate(ctx context.Context) decimal.Decimal {
	lookupCtx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	rate, err := s.rateRepo.FindCurrentRate(lookupCtx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Current rate lookup failed, using default rate",
			slog.String("error", err.Error()),
			slog.String("default_rate", s.defaultRate.String()))
		return s.defaultRate
	}
	if rate.Rate.LessThanOrEqual(decimal.Zero) {
		return s.defaultRate
	}
	return rate.Rate
}

// ResolveForDate returns the historical rate effective at the given date.
// On any failure the previous snapshot is kept, so a late or broken lookup
// can never block rendering; the failure is only logged.
func (s *ExchangeRateService) ResolveForDate(ctx context.Context, date time.Time, previous decimal.Decimal) decimal.Decimal {
	lookupCtx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	rate, err := s.rateRepo.FindRateByDate(lookupCtx, date)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Historical rate lookup failed, keeping previous snapshot",
			slog.String("date", date.Format("2006-01-02")),
			slog.String("error", err.Error()))
		return previous
	}
	if rate.Rate.LessThanOrEqual(decimal.Zero) {
		return previous
	}
	return rate.Rate
}
