package repositories

import (
	"context"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// ExchangeRateReader defines read operations over the pesos-per-dollar rate
// table. The table itself is maintained by an external import job; the
// engine never writes to it.
type ExchangeRateReader interface {
	// FindCurrentRate retrieves the most recent effective rate.
	FindCurrentRate(ctx context.Context) (*domain.ExchangeRate, error)

	// FindRateByDate retrieves the rate effective at or immediately before
	// the given date.
	FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error)
}
