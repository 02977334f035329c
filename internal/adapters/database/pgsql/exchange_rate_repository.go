package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository reads the pesos-per-dollar rate table. The table
// is populated by an external import job; this adapter never writes to it.
type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExchangeRateRepository creates a new read-only repository over the
// exchange rate table.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateReader {
	return &PgxExchangeRateRepository{pool: pool}
}

const exchangeRateColumns = `rate_id, rate, date_effective, source, created_at, created_by, last_updated_at, last_updated_by`

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	err := row.Scan(
		&rate.RateID,
		&rate.Rate,
		&rate.DateEffective,
		&rate.Source,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindCurrentRate retrieves the most recent effective rate.
func (r *PgxExchangeRateRepository) FindCurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	rate, err := scanExchangeRate(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find current exchange rate: %w", err)
	}
	return rate, nil
}

// FindRateByDate retrieves the rate effective at or immediately before the
// given date.
func (r *PgxExchangeRateRepository) FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE date_effective <= $1
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	rate, err := scanExchangeRate(r.pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", date.Format("2006-01-02"), err)
	}
	return rate, nil
}
