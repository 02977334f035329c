package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/fbenitez/concesionaria_app/internal/utils/settlement"
)

// SettlementService aggregates a deal's price and payment components into a
// balance. The calculation itself is a pure function over the immutable deal
// snapshot; this service only resolves the fallback rate once at the call
// boundary and passes it in explicitly.
type SettlementService struct {
	rates portssvc.RateResolverSvc
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(rates portssvc.RateResolverSvc) *SettlementService {
	return &SettlementService{rates: rates}
}

// ComputeSettlement normalises and aggregates the deal into a settlement.
func (s *SettlementService) ComputeSettlement(ctx context.Context, deal domain.Deal) domain.Settlement {
	fallbackRate := s.rates.CurrentRate(ctx)
	result := settlement.Compute(deal, fallbackRate)

	middleware.GetLoggerFromCtx(ctx).Debug("Settlement computed",
		slog.String("deal_id", deal.DealID),
		slog.String("total_price_ars", result.TotalPriceARS.String()),
		slog.String("balance_ars", result.BalanceARS.String()),
		slog.String("framing", string(result.Framing)))

	return result
}

// RepriceMoney substitutes the historical rate for the given date into the
// money's snapshot, as happens when the operator edits a payment date. On
// lookup failure the previous snapshot is kept unchanged.
func (s *SettlementService) RepriceMoney(ctx context.Context, m domain.Money, date time.Time) domain.Money {
	if m.Currency != domain.USD {
		m.AsOfDate = date
		return m
	}
	m.ExchangeRate = s.rates.ResolveForDate(ctx, date, m.ExchangeRate)
	m.AsOfDate = date
	return m
}
